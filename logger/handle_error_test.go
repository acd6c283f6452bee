package logger

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	pkgerrors "github.com/pkg/errors"
)

type tracedError struct {
	msg   string
	stack string
}

func (e tracedError) Error() string { return e.msg }
func (e tracedError) Stack() string { return e.stack }

func TestHandleErrorEnablesLogger(t *testing.T) {
	log, _, stderr := newTestLogger(t, Options{})
	log.Disable()

	log.HandleError(errors.New("test error"), false)

	if log.IsDisabled() {
		t.Error("logger should be enabled after HandleError")
	}
	if !strings.Contains(stderr.String(), "test error") {
		t.Errorf("expected error message on stderr, got %q", stderr.String())
	}
}

func TestHandleErrorWithoutDebug(t *testing.T) {
	log, stdout, stderr := newTestLogger(t, Options{Name: "tool"})
	err := pkgerrors.New("test error")

	log.HandleError(err, false)

	if got := stderr.String(); got != "[tool]: test error\n" {
		t.Errorf("stderr = %q, expected %q", got, "[tool]: test error\n")
	}

	got := lines(stdout)
	if len(got) != 1 {
		t.Fatalf("expected only the hint line on stdout, got %q", got)
	}
	if !strings.Contains(got[0], DefaultDebugFlag) {
		t.Errorf("hint %q should contain %q", got[0], DefaultDebugFlag)
	}
	if !strings.Contains(got[0], "Run the command again with") {
		t.Errorf("hint %q should fall back to %q", got[0], DefaultCommandHint)
	}
	if strings.Contains(stdout.String(), ".go:") {
		t.Errorf("stack should not be printed without debug, got %q", stdout.String())
	}
}

func TestHandleErrorHintUsesConfiguredValues(t *testing.T) {
	log, stdout, _ := newTestLogger(t, Options{Name: "tool", CommandHint: "ssocreds", DebugFlagHint: "--verbose"})

	log.HandleError(errors.New("boom"), false)

	want := "[tool]: Run ssocreds with --verbose flag for more details.\n"
	if got := stdout.String(); got != want {
		t.Errorf("stdout = %q, expected %q", got, want)
	}
}

func TestHandleErrorWithDebugPrintsStack(t *testing.T) {
	log, stdout, stderr := newTestLogger(t, Options{Name: "tool"})
	err := pkgerrors.New("test error")
	stack := fmt.Sprintf("%+v", err)

	log.HandleError(err, true)

	if got := stderr.String(); got != "[tool]: test error\n" {
		t.Errorf("stderr = %q, expected %q", got, "[tool]: test error\n")
	}
	if got := stdout.String(); got != "[tool]: "+stack+"\n" {
		t.Errorf("stdout = %q, expected the stack line only", got)
	}
	if strings.Contains(stdout.String(), DefaultDebugFlag) {
		t.Error("debug hint should not be printed in debug mode")
	}
}

func TestHandleErrorFindsStackInChain(t *testing.T) {
	log, stdout, stderr := newTestLogger(t, Options{Name: "tool"})
	inner := pkgerrors.New("inner")
	err := fmt.Errorf("outer: %w", inner)

	log.HandleError(err, true)

	if got := stderr.String(); got != "[tool]: outer: inner\n" {
		t.Errorf("stderr = %q, expected the wrapped message", got)
	}
	if got := stdout.String(); got != "[tool]: "+fmt.Sprintf("%+v", inner)+"\n" {
		t.Errorf("stdout = %q, expected the inner stack", got)
	}
}

func TestHandleErrorStackerCapability(t *testing.T) {
	log, stdout, _ := newTestLogger(t, Options{Name: "tool"})

	log.HandleError(tracedError{msg: "traced", stack: "frame 1\nframe 2"}, true)

	if got := stdout.String(); got != "[tool]: frame 1\nframe 2\n" {
		t.Errorf("stdout = %q, expected the raw stack", got)
	}
}

func TestHandleErrorWithDebugAndNoStack(t *testing.T) {
	log, stdout, stderr := newTestLogger(t, Options{})

	log.HandleError(errors.New("plain"), true)

	if stdout.Len() != 0 {
		t.Errorf("expected no stdout for an error without a stack, got %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "plain") {
		t.Errorf("expected error message on stderr, got %q", stderr.String())
	}
}

func TestHandleErrorUnknownValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"EmptyStruct", struct{}{}},
		{"Map", map[string]string{}},
		{"String", "not an error"},
		{"Nil", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, stdout, stderr := newTestLogger(t, Options{Name: "tool"})

			log.HandleError(tt.value, false)

			if got := stderr.String(); got != "[tool]: "+UnknownErrorMessage+"\n" {
				t.Errorf("stderr = %q, expected the unknown error message", got)
			}
			got := lines(stdout)
			if len(got) != 1 || !strings.Contains(got[0], DefaultDebugFlag) {
				t.Errorf("expected the hint line on stdout, got %q", got)
			}
		})
	}
}

func TestHandleErrorUnknownValueWithDebug(t *testing.T) {
	log, stdout, stderr := newTestLogger(t, Options{})

	log.HandleError(42, true)

	if !strings.Contains(stderr.String(), UnknownErrorMessage) {
		t.Errorf("expected %q on stderr, got %q", UnknownErrorMessage, stderr.String())
	}
	if stdout.Len() != 0 {
		t.Errorf("expected no stdout in debug mode, got %q", stdout.String())
	}
}
