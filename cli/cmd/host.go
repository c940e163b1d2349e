package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/sahilm/fuzzy"

	"github.com/ardnew/vinv/inventory"
	"github.com/ardnew/vinv/log"
)

// suggestLimit caps the number of fuzzy-matched host names offered when the
// requested host does not exist.
const suggestLimit = 3

// Host prints the variables of a single host.
type Host struct {
	Name   string `arg:""           help:"Host name as reported by vagrant"`
	Pretty bool   `default:"false"  help:"Pretty-print output JSON." negatable:""`
}

// Run executes the host command.
func (h *Host) Run(ctx context.Context) error {
	doc, err := document(ctx)
	if err != nil {
		return err
	}

	inv, err := inventory.Build(ctx, doc,
		inventory.WithMantl(true),
		inventory.WithLogger(log.Default()),
	)
	if err != nil {
		return err
	}

	vars, ok := inv.HostVars(h.Name)
	if !ok {
		return h.notFound(ctx, inv.Hosts())
	}

	var out []byte

	if h.Pretty {
		out, err = json.MarshalIndent(vars, "", "    ")
	} else {
		out, err = json.Marshal(vars)
	}

	if err != nil {
		return ErrJSONMarshal.Wrap(err)
	}

	fmt.Println(string(out))

	return nil
}

// notFound reports the missing host, suggesting close matches among the
// known host names.
func (h *Host) notFound(ctx context.Context, hosts []string) error {
	matches := fuzzy.Find(h.Name, hosts)

	suggest := make([]string, 0, suggestLimit)
	for i, m := range matches {
		if i == suggestLimit {
			break
		}

		suggest = append(suggest, m.Str)
	}

	if len(suggest) > 0 {
		log.WarnContext(ctx, "host not found, did you mean",
			slog.Any("candidates", suggest),
		)
	}

	return ErrHostNotFound.With(slog.String("host", h.Name))
}
