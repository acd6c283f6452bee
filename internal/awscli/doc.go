// Package awscli wraps invocations of the AWS command-line tool.
//
// Only standard output is treated as meaningful. A missing binary is
// reported as errors.ErrCLINotFound and a nonzero exit as
// errors.ErrCommandFailed. Callers that must never fail, such as
// diagnostics, use Fallback to collapse any error into the NotFound string.
//
// # Usage
//
//	cli := awscli.New("aws", nil)
//	version := awscli.Fallback(cli.Version(ctx))
//	config := awscli.Fallback(cli.ConfigList(ctx, "default"))
package awscli
