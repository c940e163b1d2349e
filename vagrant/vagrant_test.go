package vagrant

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestSSHConfig_CapturesStdout(t *testing.T) {
	out, err := SSHConfig(context.Background(), t.TempDir(),
		WithCommand("echo", "Host worker-001"),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.TrimSpace(out) != "Host worker-001" {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestSSHConfig_CommandFailure(t *testing.T) {
	_, err := SSHConfig(context.Background(), t.TempDir(),
		WithCommand("false"),
	)
	if !errors.Is(err, ErrSSHConfig) {
		t.Errorf("expected ErrSSHConfig, got %v", err)
	}
}

func TestSSHConfig_MissingExecutable(t *testing.T) {
	_, err := SSHConfig(context.Background(), t.TempDir(),
		WithCommand("vinv-test-no-such-command"),
	)
	if !errors.Is(err, ErrSSHConfig) {
		t.Errorf("expected ErrSSHConfig, got %v", err)
	}
}

func TestSSHConfig_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := SSHConfig(ctx, t.TempDir(),
		WithCommand("sleep", "10"),
	)
	if err == nil {
		t.Error("expected error from cancelled context")
	}
}
