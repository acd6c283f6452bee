package cmd

import (
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"

	"github.com/ryansonshine/aws-cli-util-logger/internal/system"
)

// startSpinner creates and starts a spinner on w with the given message.
// The spinner only runs when w is a terminal and debug output is off,
// so it never interleaves with logger lines.
// Returns a function that stops the spinner.
func startSpinner(w io.Writer, message string) func() {
	Logger.Debug("Starting spinner with message: " + message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		// If we can't set spinner color, just continue without it.
		Logger.Warn("Failed to set spinner color: " + err.Error())
	}

	active := !debug && !quiet && isTerminalWriter(w)
	if active {
		s.Start()
	} else {
		Logger.Debug("Spinner disabled: " + message)
	}

	return func() {
		if active {
			s.Stop()
		}
	}
}

// isTerminalWriter returns true if w is a file attached to a terminal.
func isTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && system.IsTerminal(f)
}
