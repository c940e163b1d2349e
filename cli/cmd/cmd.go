package cmd

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/ardnew/vinv/log"
	"github.com/ardnew/vinv/sshcfg"
	"github.com/ardnew/vinv/vagrant"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// rootKey is used to store the Vagrantfile directory in [context.Context].
type rootKey struct{}

// WithRoot returns a new context.Context carrying the directory that
// `vagrant ssh-config` runs in.
func WithRoot(ctx context.Context, dir string) context.Context {
	return context.WithValue(ctx, rootKey{}, dir)
}

// RootFrom retrieves the Vagrantfile directory stored in ctx by [WithRoot].
// Returns "." if no directory was stored.
func RootFrom(ctx context.Context) string {
	dir, ok := ctx.Value(rootKey{}).(string)
	if !ok || dir == "" {
		return "."
	}

	return dir
}

// document queries `vagrant ssh-config` in the configured root directory and
// parses its output into host records.
func document(ctx context.Context) (sshcfg.Document, error) {
	text, err := vagrant.SSHConfig(ctx, RootFrom(ctx),
		vagrant.WithLogger(log.Default()),
	)
	if err != nil {
		return nil, err
	}

	return sshcfg.Parse(ctx, text,
		sshcfg.WithLogger(log.Default()),
	)
}
