package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ryansonshine/aws-cli-util-logger/internal/awscli"
	"github.com/ryansonshine/aws-cli-util-logger/internal/ui"
)

const (
	// Separator joins multiple messages on one line.
	Separator = ", "

	// DefaultDebugFlag is suggested by HandleError when Options.DebugFlagHint is empty.
	DefaultDebugFlag = "--debug"

	// DefaultCommandHint is suggested by HandleError when Options.CommandHint is empty.
	DefaultCommandHint = "the command again"
)

// Options configures a Logger. Zero values fall back to the documented defaults.
type Options struct {
	// Name is shown in the "[name]:" prefix of every line.
	Name string

	// CommandHint is the command name suggested when an error is handled,
	// e.g. "ssocreds". Defaults to DefaultCommandHint.
	CommandHint string

	// DebugFlagHint is the flag suggested when an error is handled.
	// Defaults to DefaultDebugFlag.
	DebugFlagHint string

	// Verbose enables the debug level.
	Verbose bool

	// Disabled suppresses all output.
	Disabled bool

	// Stdout and Stderr default to os.Stdout and os.Stderr.
	Stdout io.Writer
	Stderr io.Writer

	// CLI is the AWS CLI binary used by diagnostics. Defaults to "aws".
	CLI string

	// Runner executes the CLI. nil starts real processes.
	Runner awscli.Runner
}

// Logger prints leveled status lines for a single CLI invocation.
// It is not safe for concurrent use.
type Logger struct {
	name          string
	prefix        string
	commandHint   string
	debugFlagHint string
	verbose       bool
	disabled      bool
	stdout        io.Writer
	stderr        io.Writer
	cli           *awscli.Client
}

// New returns a Logger with defaults applied to opts.
func New(opts Options) *Logger {
	debugFlag := opts.DebugFlagHint
	if debugFlag == "" {
		debugFlag = DefaultDebugFlag
	}
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Logger{
		name:          opts.Name,
		prefix:        fmt.Sprintf("[%s]:", opts.Name),
		commandHint:   opts.CommandHint,
		debugFlagHint: debugFlag,
		verbose:       opts.Verbose,
		disabled:      opts.Disabled,
		stdout:        stdout,
		stderr:        stderr,
		cli:           awscli.New(opts.CLI, opts.Runner),
	}
}

// Name returns the label used in the prefix.
func (l *Logger) Name() string { return l.name }

// Prefix returns the "[name]:" string prepended to every line.
func (l *Logger) Prefix() string { return l.prefix }

func (l *Logger) Success(messages ...string) {
	l.print(ui.Success, false, messages)
}

func (l *Logger) Info(messages ...string) {
	l.print(ui.Info, false, messages)
}

func (l *Logger) Warn(messages ...string) {
	l.print(ui.Warning, false, messages)
}

// Error writes to stderr.
func (l *Logger) Error(messages ...string) {
	l.print(ui.Error, true, messages)
}

// Debug prints only when the logger is verbose.
func (l *Logger) Debug(messages ...string) {
	if l.verbose {
		l.print(ui.Debug, false, messages)
	}
}

func (l *Logger) Log(messages ...string) {
	l.print(ui.Plain, false, messages)
}

func (l *Logger) SetVerbose(verbose bool) {
	l.verbose = verbose
}

func (l *Logger) IsVerbose() bool {
	return l.verbose
}

// Disable suppresses all output until Enable is called.
func (l *Logger) Disable() {
	l.disabled = true
}

func (l *Logger) Enable() {
	l.disabled = false
}

func (l *Logger) IsDisabled() bool {
	return l.disabled
}

func (l *Logger) print(f ui.Formatter, toStderr bool, messages []string) {
	if l.disabled {
		return
	}
	w := l.stdout
	if toStderr {
		w = l.stderr
	}
	fmt.Fprintln(w, f.Sprint(l.prefix+" "+strings.Join(messages, Separator)))
}
