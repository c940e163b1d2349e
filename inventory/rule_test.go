package inventory

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestBuild_Rules(t *testing.T) {
	tests := []struct {
		name  string
		rule  Rule
		hosts []string
	}{
		{
			name:  "numeric comparison",
			rule:  Rule{Group: "ssh=highport", Match: "Port >= 2250"},
			hosts: []string{"edge-1"},
		},
		{
			name:  "host name regexp",
			rule:  Rule{Group: "name=edge", Match: `Host matches "^edge-"`},
			hosts: []string{"edge-1"},
		},
		{
			name:  "derived role variable",
			rule:  Rule{Group: "workers", Match: `role == "worker"`},
			hosts: []string{"worker-001", "worker-002"},
		},
		{
			name:  "generic field text",
			rule:  Rule{Group: "user=vagrant", Match: `User == "vagrant"`},
			hosts: []string{"control-01", "worker-001", "worker-002", "edge-1"},
		},
		{
			name:  "undefined variable is falsy",
			rule:  Rule{Group: "never", Match: `ProxyJump == "bastion"`},
			hosts: nil,
		},
		{
			name:  "mung helper available",
			rule:  Rule{Group: "munged", Match: `mung.prefix(Host, "vm") != ""`},
			hosts: []string{"control-01", "worker-001", "worker-002", "edge-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, err := Build(context.Background(), parseFixture(t),
				WithRules([]Rule{tt.rule}),
			)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			g := inv.Group(tt.rule.Group)

			if len(tt.hosts) == 0 {
				if g != nil {
					t.Errorf("group %q should not exist, has hosts %v",
						tt.rule.Group, g.Hosts)
				}

				return
			}

			if g == nil {
				t.Fatalf("group %q missing", tt.rule.Group)
			}

			if !reflect.DeepEqual(g.Hosts, tt.hosts) {
				t.Errorf("group %q hosts = %v, want %v",
					tt.rule.Group, g.Hosts, tt.hosts)
			}
		})
	}
}

func TestBuild_RuleCompileError(t *testing.T) {
	_, err := Build(context.Background(), parseFixture(t),
		WithRules([]Rule{{Group: "broken", Match: "Port >="}}),
	)
	if !errors.Is(err, ErrRuleCompile) {
		t.Errorf("expected ErrRuleCompile, got %v", err)
	}
}

func TestLoadRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")

	content := `groups:
  - group: role=edge
    match: Host matches "^edge-"
  - group: ssh=highport
    match: Port >= 2200
`

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	rules, err := LoadRules(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Rule{
		{Group: "role=edge", Match: `Host matches "^edge-"`},
		{Group: "ssh=highport", Match: "Port >= 2200"},
	}

	if !reflect.DeepEqual(rules, want) {
		t.Errorf("rules = %#v, want %#v", rules, want)
	}
}

func TestLoadRules_Errors(t *testing.T) {
	if _, err := LoadRules(filepath.Join(t.TempDir(), "absent.yaml")); !errors.Is(err, ErrRulesFile) {
		t.Errorf("expected ErrRulesFile for missing file, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(path, []byte("groups: {not: a list}\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadRules(path); !errors.Is(err, ErrRulesFile) {
		t.Errorf("expected ErrRulesFile for malformed file, got %v", err)
	}
}
