package awscli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	kerrors "github.com/ryansonshine/aws-cli-util-logger/internal/errors"
)

// Runner executes an external command and returns its standard output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// ExecRunner runs commands as child processes.
type ExecRunner struct{}

// Run executes name with args and returns stdout untouched.
// Returns an error wrapping ErrCLINotFound when the binary can't be started
// and ErrCommandFailed when it exits nonzero.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return "", fmt.Errorf("%s: %w", name, kerrors.ErrCLINotFound)
		}

		// Include stderr so the wrapped error says why.
		errMsg := strings.TrimSpace(stderr.String())
		if errMsg == "" {
			errMsg = err.Error()
		}
		return "", fmt.Errorf("%s %s: %s: %w", name, strings.Join(args, " "), errMsg, kerrors.ErrCommandFailed)
	}

	return stdout.String(), nil
}
