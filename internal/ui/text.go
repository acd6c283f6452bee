package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Formatter applies semantic formatting to text.
type Formatter struct {
	color  *color.Color
	prefix string
	suffix string
}

// Sprint formats the arguments and returns the resulting string.
func (f Formatter) Sprint(a ...interface{}) string {
	text := fmt.Sprint(a...)
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

// Sprintf formats according to a format specifier and returns the resulting string.
func (f Formatter) Sprintf(format string, a ...interface{}) string {
	text := fmt.Sprintf(format, a...)
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

// noColor returns true if color output should be disabled.
func noColor() bool {
	// Check NO_COLOR environment variable (https://no-color.org/).
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}
	// Also respect fatih/color's detection (terminal capability, TERM=dumb, etc.).
	return color.NoColor
}

// Level formatters. Every logger line is rendered bold in its level color.
var (
	Success = Formatter{color.New(color.FgGreen, color.Bold), "", ""}
	Info    = Formatter{color.New(color.FgCyan, color.Bold), "", ""}
	Warning = Formatter{color.New(color.FgYellow, color.Bold), "", ""}
	Error   = Formatter{color.New(color.FgRed, color.Bold), "", ""}
	Debug   = Formatter{color.New(color.FgHiBlack, color.Bold), "", ""}
	Plain   = Formatter{color.New(color.FgWhite, color.Bold), "", ""}
)

// Supporting formatters for text embedded inside a logger line.
var (
	// Muted formats de-emphasized hint text.
	// Dimmed with color, unchanged without.
	Muted = Formatter{color.New(color.Faint), "", ""}

	// Code formats runnable commands.
	// Yellow with color, `backticks` without.
	Code = Formatter{color.New(color.FgYellow), "`", "`"}

	// Path formats file or directory paths.
	Path = Formatter{color.New(color.FgYellow), "", ""}

	// Highlight formats emphasized user values like profile names.
	// Cyan with color, 'single quotes' without.
	Highlight = Formatter{color.New(color.FgCyan), "'", "'"}
)
