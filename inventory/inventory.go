package inventory

import (
	"context"
	"log/slog"

	"github.com/ardnew/vinv/log"
	"github.com/ardnew/vinv/sshcfg"
)

// Predefined errors (sentinel values).
var (
	ErrRuleCompile = sshcfg.NewError("group rule compilation failed")
	ErrRuleEval    = sshcfg.NewError("group rule evaluation failed")
	ErrRulesFile   = sshcfg.NewError("failed to load rules file")
)

// DefaultSSHUser is the login user configured by the provisioning tool.
const DefaultSSHUser = "vagrant"

// Group is one inventory group: the list of member host names.
type Group struct {
	Hosts []string `json:"hosts" yaml:"hosts"`
}

// Inventory is a JSON-serializable Ansible dynamic inventory: named groups
// plus per-host variables under _meta.hostvars.
type Inventory struct {
	groups   map[string]*Group
	hostvars map[string]map[string]any
	hosts    []string
	meta     bool
}

// config holds inventory construction parameters.
type config struct {
	logger  log.Logger
	sshUser string
	rules   []Rule
	mantl   bool
	meta    bool
}

// Option configures inventory construction.
type Option func(config) config

// WithMantl controls whether mantl-specific host variables (public_ipv4,
// role, consul settings) are merged into each host's variables.
// They are included by default; WithMantl(false) opts out.
func WithMantl(enable bool) Option {
	return func(c config) config {
		c.mantl = enable

		return c
	}
}

// WithMeta controls whether the _meta.hostvars section is emitted.
func WithMeta(enable bool) Option {
	return func(c config) config {
		c.meta = enable

		return c
	}
}

// WithSSHUser overrides the ansible_ssh_user value for all hosts.
func WithSSHUser(user string) Option {
	return func(c config) config {
		c.sshUser = user

		return c
	}
}

// WithRules adds user-defined group rules evaluated against each host.
func WithRules(rules []Rule) Option {
	return func(c config) config {
		c.rules = append(c.rules, rules...)

		return c
	}
}

// WithLogger sets the structured logger for trace-level debugging.
func WithLogger(logger log.Logger) Option {
	return func(c config) config {
		c.logger = logger

		return c
	}
}

// Build constructs an inventory from a parsed document.
//
// Every host joins the dc=vagrantdc group; hosts matching a role convention
// join role=control or role=worker; hosts satisfying a user rule join that
// rule's group. Per-host variables always include the SSH connection
// settings, with mantl and group variables merged in when enabled.
func Build(
	ctx context.Context,
	doc sshcfg.Document,
	opts ...Option,
) (*Inventory, error) {
	cfg := config{
		sshUser: DefaultSSHUser,
		mantl:   true,
		meta:    true,
	}
	for _, opt := range opts {
		cfg = opt(cfg)
	}

	rules, err := compileRules(cfg.rules)
	if err != nil {
		return nil, err
	}

	inv := &Inventory{
		groups: map[string]*Group{
			GroupControl: {Hosts: []string{}},
			GroupWorker:  {Hosts: []string{}},
			GroupDC:      {Hosts: []string{}},
		},
		hostvars: make(map[string]map[string]any, len(doc)),
		hosts:    doc.Hosts(),
		meta:     cfg.meta,
	}

	for _, rec := range doc {
		host := rec.Host()

		inv.join(GroupDC, host)

		switch Role(host) {
		case RoleControl:
			inv.join(GroupControl, host)
		case RoleWorker:
			inv.join(GroupWorker, host)
		}

		for _, rule := range rules {
			matched, err := rule.matches(rec)
			if err != nil {
				return nil, err
			}

			if matched {
				inv.join(rule.group, host)
			}
		}

		inv.hostvars[host] = hostvars(rec, cfg)
	}

	cfg.logger.DebugContext(ctx, "inventory built",
		slog.Int("hosts", len(inv.hosts)),
		slog.Int("groups", len(inv.groups)),
	)

	return inv, nil
}

// join adds a host to a group, creating the group on first use.
func (inv *Inventory) join(group, host string) {
	g, ok := inv.groups[group]
	if !ok {
		g = &Group{Hosts: []string{}}
		inv.groups[group] = g
	}

	g.Hosts = append(g.Hosts, host)
}

// Hosts returns all host names in document order.
func (inv *Inventory) Hosts() []string { return inv.hosts }

// Group returns the named group, or nil if it does not exist.
func (inv *Inventory) Group(name string) *Group { return inv.groups[name] }

// HostVars returns the variables of one host and whether the host exists.
func (inv *Inventory) HostVars(host string) (map[string]any, bool) {
	vars, ok := inv.hostvars[host]

	return vars, ok
}

// hostvars assembles the per-host variable map: generic SSH connection
// settings, then mantl and group variables when enabled.
func hostvars(rec *sshcfg.Record, cfg config) map[string]any {
	vars := map[string]any{
		"ansible_ssh_user": cfg.sshUser,
	}

	if port, ok := rec.Get(sshcfg.FieldPort); ok {
		vars["ansible_ssh_port"] = port.Native()
	}

	if addr, ok := rec.Get(sshcfg.FieldHostName); ok {
		vars["ansible_ssh_host"] = addr.Native()
	}

	if !cfg.mantl {
		return vars
	}

	role := Role(rec.Host())
	addr, _ := rec.Get(sshcfg.FieldHostName)

	// Mantl-specific variables.
	vars["public_ipv4"] = addr.Text()
	vars["private_ipv4"] = addr.Text()
	vars["role"] = role
	vars["consul_is_server"] = role == RoleControl

	// Variables deduced from dc=vagrantdc membership (all hosts).
	vars["consul_dc"] = "vagrantdc"
	vars["publicly_routable"] = true
	vars["provider"] = "virtualbox"

	return vars
}
