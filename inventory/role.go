package inventory

import "regexp"

// Host-name conventions that classify a VM's role. Prefix matches, as with
// the provisioning tool's own naming scheme: control-01, worker-001.
var (
	controlPattern = regexp.MustCompile(`^control-\d\d`)
	workerPattern  = regexp.MustCompile(`^worker-\d\d\d`)
)

// Role names derived from host-name conventions.
const (
	RoleControl = "control"
	RoleWorker  = "worker"
)

// Well-known group names always present in the inventory.
const (
	GroupControl = "role=" + RoleControl
	GroupWorker  = "role=" + RoleWorker
	GroupDC      = "dc=vagrantdc"
)

// Role classifies a host name as "control", "worker", or "" when it matches
// neither convention.
func Role(host string) string {
	switch {
	case controlPattern.MatchString(host):
		return RoleControl
	case workerPattern.MatchString(host):
		return RoleWorker
	default:
		return ""
	}
}
