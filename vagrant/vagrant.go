// Package vagrant invokes the vagrant CLI and captures its output.
package vagrant

import (
	"bytes"
	"context"
	"log/slog"
	"os/exec"

	"github.com/ardnew/vinv/log"
	"github.com/ardnew/vinv/sshcfg"
)

// ErrSSHConfig is returned when the `vagrant ssh-config` subprocess fails.
var ErrSSHConfig = sshcfg.NewError("vagrant ssh-config failed")

// config holds the subprocess invocation parameters.
type config struct {
	command string
	args    []string
	logger  log.Logger
}

// Option configures the subprocess invocation.
type Option func(config) config

// WithCommand overrides the executable and arguments to run. The default is
// `vagrant ssh-config`. Used by tests to substitute a stub.
func WithCommand(name string, args ...string) Option {
	return func(c config) config {
		c.command = name
		c.args = args

		return c
	}
}

// WithLogger sets the structured logger used to report subprocess failures.
func WithLogger(logger log.Logger) Option {
	return func(c config) config {
		c.logger = logger

		return c
	}
}

// SSHConfig runs `vagrant ssh-config` in dir and returns its standard
// output as text.
//
// On non-zero exit it logs both captured streams and returns an error
// wrapping [ErrSSHConfig]. The failure is terminal: there is no meaningful
// inventory to build from a failed provisioning query, so callers are
// expected to abort rather than retry.
func SSHConfig(ctx context.Context, dir string, opts ...Option) (string, error) {
	cfg := config{
		command: "vagrant",
		args:    []string{"ssh-config"},
		logger:  log.Default(),
	}
	for _, opt := range opts {
		cfg = opt(cfg)
	}

	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, cfg.command, cfg.args...)
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		cfg.logger.ErrorContext(ctx, "vagrant ssh-config failed",
			slog.String("dir", dir),
			slog.String("command", cfg.command),
			slog.String("stdout", stdout.String()),
			slog.String("stderr", stderr.String()),
			slog.Any("error", err),
		)

		return "", ErrSSHConfig.Wrap(err).
			With(slog.String("dir", dir))
	}

	return stdout.String(), nil
}
