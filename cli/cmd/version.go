package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ardnew/vinv/pkg"
)

// Version prints the program name and version.
type Version struct{}

// Run executes the version command.
func (Version) Run(ctx context.Context) error {
	out := io.Writer(os.Stdout)
	if ktx := kongContextFrom(ctx); ktx != nil {
		out = ktx.Stdout
	}

	_, err := fmt.Fprintln(out, pkg.Name, strings.TrimSpace(pkg.Version))

	return err
}
