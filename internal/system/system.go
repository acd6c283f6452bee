package system

import (
	"os"
	"runtime"

	"golang.org/x/term"
)

// Platform returns the operating system name, e.g. "linux" or "darwin".
func Platform() string {
	return runtime.GOOS
}

// Release returns the operating system release string, e.g. the kernel
// release on unix. It returns "unknown" when the host refuses to say.
func Release() string {
	release, err := release()
	if err != nil || release == "" {
		return "unknown"
	}
	return release
}

// RuntimeVersion returns the Go runtime version the binary was built with.
func RuntimeVersion() string {
	return runtime.Version()
}

// IsTerminal returns true if f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
