// Package ui provides semantic text formatting for logger output.
//
// Each log level has a bold formatter in a fixed color. When colors are
// available, content is colorized. When NO_COLOR is set or the terminal
// doesn't support colors, the text is returned undecorated, except for the
// formatters that carry a plain-text decoration (Code, Highlight).
//
// # Level Formatters
//
//	ui.Success.Sprint("[tool]: done")    // green, bold
//	ui.Info.Sprint("[tool]: note")       // cyan, bold
//	ui.Warning.Sprint("[tool]: careful") // yellow, bold
//	ui.Error.Sprint("[tool]: failed")    // red, bold
//	ui.Debug.Sprint("[tool]: details")   // gray, bold
//	ui.Plain.Sprint("[tool]: text")      // white, bold
//
// # Supporting Formatters
//
//	ui.Muted.Sprint("Run tool with --debug") // dimmed hint text
//	ui.Code.Sprint("awslogger diagnostics")  // commands
//	ui.Highlight.Sprint("default")           // user values
//	ui.Path.Sprint("~/.awslogger/config.toml")
//
// # Color Behavior
//
// Colors are disabled when:
//   - NO_COLOR environment variable is set (any value)
//   - Terminal doesn't support colors (TERM=dumb, not a TTY)
package ui
