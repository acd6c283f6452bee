package awscli

import (
	"context"
	"strings"
)

const (
	// DefaultBinary is the AWS CLI executable looked up on PATH.
	DefaultBinary = "aws"

	// DefaultProfile is used when no profile name is supplied.
	DefaultProfile = "default"

	// NotFound replaces the output of any lookup that failed.
	NotFound = "NOT FOUND"
)

// Client invokes a single AWS CLI binary through a Runner.
type Client struct {
	Binary string
	Runner Runner
}

// New returns a Client for binary. An empty binary means DefaultBinary and a
// nil runner means ExecRunner.
func New(binary string, runner Runner) *Client {
	if binary == "" {
		binary = DefaultBinary
	}
	if runner == nil {
		runner = ExecRunner{}
	}
	return &Client{Binary: binary, Runner: runner}
}

// Run invokes the binary with args.
func (c *Client) Run(ctx context.Context, args ...string) (string, error) {
	return c.Runner.Run(ctx, c.Binary, args...)
}

// Version runs `aws --version`. The first newline is removed.
func (c *Client) Version(ctx context.Context) (string, error) {
	out, err := c.Run(ctx, "--version")
	if err != nil {
		return "", err
	}
	return strings.Replace(out, "\n", "", 1), nil
}

// ConfigList runs `aws configure list --profile <profile>`.
func (c *Client) ConfigList(ctx context.Context, profile string) (string, error) {
	if profile == "" {
		profile = DefaultProfile
	}
	return c.Run(ctx, "configure", "list", "--profile", profile)
}

// Fallback returns out, or NotFound when err is non-nil.
func Fallback(out string, err error) string {
	if err != nil {
		return NotFound
	}
	return out
}
