// Package configs manages the settings file of the awslogger CLI.
//
// Settings are stored in TOML format at:
//
//	$XDG_CONFIG_HOME/awslogger/config.toml (or the OS equivalent)
//
// The AWSLOGGER_CONFIG environment variable, or the --config flag, points at
// a different file. A missing file is not an error: defaults are used.
//
// # File Layout
//
//	[logger]
//	name = "awslogger"
//	command_hint = "awslogger"
//	debug_flag = "--debug"
//
//	[aws]
//	cli = "aws"
//	profile = "default"
//
// Values set on the command line take precedence over the file.
package configs
