package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/vinv/inventory"
	"github.com/ardnew/vinv/log"
)

// List prints the full inventory document: every group with its member
// hosts, plus per-host variables under _meta.hostvars.
type List struct {
	Pretty  bool   `default:"false" help:"Pretty-print output JSON."                 negatable:""`
	NoMeta  bool   `default:"false" help:"Exclude the _meta.hostvars section."       name:"nometa"`
	Mantl   bool   `default:"true"  help:"Include mantl-specific host variables."    negatable:""`
	Format  string `default:"json"  enum:"json,yaml" help:"Output format."`
	SSHUser string `help:"Override the ansible_ssh_user value."          optional:""`
	Rules   string `help:"YAML file defining custom group rules."        optional:"" type:"existingfile"`
}

// Run executes the list command.
func (l *List) Run(ctx context.Context) error {
	doc, err := document(ctx)
	if err != nil {
		return err
	}

	opts, err := l.options()
	if err != nil {
		return err
	}

	inv, err := inventory.Build(ctx, doc, opts...)
	if err != nil {
		return err
	}

	out, err := l.marshal(inv)
	if err != nil {
		return err
	}

	fmt.Println(string(out))

	return nil
}

// options translates command-line flags into inventory options.
func (l *List) options() ([]inventory.Option, error) {
	opts := []inventory.Option{
		inventory.WithMantl(l.Mantl),
		inventory.WithMeta(!l.NoMeta),
		inventory.WithLogger(log.Default()),
	}

	if l.SSHUser != "" {
		opts = append(opts, inventory.WithSSHUser(l.SSHUser))
	}

	if l.Rules != "" {
		rules, err := inventory.LoadRules(l.Rules)
		if err != nil {
			return nil, err
		}

		opts = append(opts, inventory.WithRules(rules))
	}

	return opts, nil
}

// marshal encodes the inventory in the selected output format.
func (l *List) marshal(inv *inventory.Inventory) ([]byte, error) {
	if l.Format == "yaml" {
		out, err := yaml.Marshal(inv)
		if err != nil {
			return nil, ErrYAMLMarshal.Wrap(err)
		}

		return out, nil
	}

	var (
		out []byte
		err error
	)

	if l.Pretty {
		out, err = json.MarshalIndent(inv, "", "    ")
	} else {
		out, err = json.Marshal(inv)
	}

	if err != nil {
		return nil, ErrJSONMarshal.Wrap(err)
	}

	return out, nil
}
