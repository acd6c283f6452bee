package errors

import "errors"

// CLI errors indicate the external command-line tool could not be used.
var (
	// ErrCLINotFound indicates the binary is not installed or not on PATH.
	ErrCLINotFound = errors.New("cli binary not found")

	// ErrCommandFailed indicates the binary ran but exited with a nonzero status.
	ErrCommandFailed = errors.New("cli command failed")
)

// Config errors indicate issues with the settings file.
var (
	// ErrConfigNotFound indicates the settings file does not exist.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrInvalidConfig indicates the settings file is malformed.
	ErrInvalidConfig = errors.New("config file is invalid")
)
