package logger

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"

	"github.com/ryansonshine/aws-cli-util-logger/internal/ui"
)

// UnknownErrorMessage is printed for values that are not errors.
const UnknownErrorMessage = "An unknown error has occured"

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

type stacker interface {
	Stack() string
}

// HandleError reports v at the top of a CLI and never propagates it.
//
// The logger is enabled first, so the report is visible even after Disable.
// With debug set, the stack trace is printed when v carries one. Without it,
// a hint suggests re-running with the debug flag.
func (l *Logger) HandleError(v any, debug bool) {
	l.Enable()

	err, ok := v.(error)
	if ok && err != nil {
		l.Error(err.Error())
		if stack, found := stackOf(err); found && debug {
			l.Log(stack)
		}
	} else {
		l.Error(UnknownErrorMessage)
	}

	if !debug {
		l.Info(l.debugHint())
	}
}

func (l *Logger) debugHint() string {
	command := l.commandHint
	if command == "" {
		command = DefaultCommandHint
	}
	return ui.Muted.Sprintf("Run %s with %s flag for more details.", command, ui.Muted.Sprint(l.debugFlagHint))
}

// stackOf returns the stack trace text of the first error in the chain that
// carries one.
func stackOf(err error) (string, bool) {
	var st stackTracer
	if errors.As(err, &st) {
		// %+v renders the message followed by one frame per line.
		return fmt.Sprintf("%+v", st), true
	}
	var s stacker
	if errors.As(err, &s) {
		if stack := s.Stack(); stack != "" {
			return stack, true
		}
	}
	return "", false
}
