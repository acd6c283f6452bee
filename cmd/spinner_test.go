package cmd

import (
	"bytes"
	"os"
	"testing"

	"github.com/ryansonshine/aws-cli-util-logger/logger"
)

func TestStartSpinnerUsesGivenWriter(t *testing.T) {
	ResetState()
	t.Cleanup(ResetState)
	t.Setenv("NO_COLOR", "1")

	var logOut, spinOut bytes.Buffer
	Logger = logger.New(logger.Options{Name: "awslogger", Stdout: &logOut, Stderr: &logOut})

	cleanup := startSpinner(&spinOut, "Collecting diagnostics...")
	cleanup()

	// A buffer is not a terminal, so the spinner never starts.
	if spinOut.Len() != 0 {
		t.Errorf("expected no spinner output on a non-terminal writer, got %q", spinOut.String())
	}
}

func TestIsTerminalWriter(t *testing.T) {
	if isTerminalWriter(&bytes.Buffer{}) {
		t.Error("a buffer should not be a terminal")
	}

	f, err := os.CreateTemp(t.TempDir(), "spinner")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer f.Close()

	if isTerminalWriter(f) {
		t.Error("a regular file should not be a terminal")
	}
}
