package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/ryansonshine/aws-cli-util-logger/internal/configs"
	kerrors "github.com/ryansonshine/aws-cli-util-logger/internal/errors"
)

// runCLI executes the root command with args. The settings file defaults to
// a path in a fresh temp directory; pass --config to use another one.
// setup runs after global state has been reset, before the command.
func runCLI(t *testing.T, setup func(), args ...string) (string, string, int) {
	t.Helper()
	ResetState()
	t.Setenv("NO_COLOR", "1")
	t.Setenv(configs.EnvConfigPath, filepath.Join(t.TempDir(), "config.toml"))

	if setup != nil {
		setup()
	}

	var stdout, stderr bytes.Buffer
	RootCmd.SetOut(&stdout)
	RootCmd.SetErr(&stderr)
	RootCmd.SetArgs(args)
	t.Cleanup(func() {
		RootCmd.SetOut(nil)
		RootCmd.SetErr(nil)
		RootCmd.SetArgs(nil)
		ResetState()
	})

	code := Execute()
	return stdout.String(), stderr.String(), code
}

// countLines returns how many lines of out contain substr.
func countLines(out, substr string) int {
	n := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, substr) {
			n++
		}
	}
	return n
}

// fakeRunner stands in for the AWS CLI.
type fakeRunner struct {
	mu      sync.Mutex
	outputs map[string]string
	fail    bool
	calls   []string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) (string, error) {
	key := strings.Join(append([]string{name}, args...), " ")

	f.mu.Lock()
	f.calls = append(f.calls, key)
	f.mu.Unlock()

	if f.fail {
		return "", kerrors.ErrCLINotFound
	}
	return f.outputs[key], nil
}
