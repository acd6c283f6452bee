// Package errors provides typed error values for aws-cli-util-logger.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
//   - CLI errors: the external tool is missing or exited nonzero
//     (ErrCLINotFound, ErrCommandFailed)
//   - Config errors: the settings file is absent or malformed
//     (ErrConfigNotFound, ErrInvalidConfig)
//
// # Usage
//
// Wrap errors with additional context:
//
//	return "", fmt.Errorf("running %s: %w", name, errors.ErrCLINotFound)
//
// Diagnostics never surface these to the user. They are collapsed to the
// "NOT FOUND" fallback at the process boundary.
package errors
