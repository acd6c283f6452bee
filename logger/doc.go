// Package logger provides colored, prefixed console output for CLIs that
// wrap the AWS command-line tool.
//
// Every line is prefixed with "[name]:" and rendered bold in the color of
// its level. Error lines go to stderr, every other level goes to stdout.
//
// # Levels
//
//	Logger.Success() // green
//	Logger.Info()    // cyan
//	Logger.Warn()    // yellow
//	Logger.Error()   // red, written to stderr
//	Logger.Debug()   // gray, only when verbose
//	Logger.Log()     // white
//
// Multiple messages are joined with ", ". A disabled logger prints nothing
// at any level until Enable is called.
//
// # Error Reporting
//
// HandleError is meant for the top of a CLI. It re-enables the logger,
// prints the error message (or a generic message for values that are not
// errors), prints the stack trace in debug mode and otherwise hints at the
// debug flag:
//
//	if err := rootCmd.Execute(); err != nil {
//	    log.HandleError(err, debug)
//	    os.Exit(1)
//	}
//
// Stack traces are recognized on any error in the chain created by
// github.com/pkg/errors, or implementing Stack() string.
//
// # Diagnostics
//
// ReportDiagnostics runs `aws --version` and `aws configure list --profile
// <profile>` concurrently and prints the results together with the OS and Go
// runtime versions at debug level. A failed lookup prints "NOT FOUND" in its
// place. Both lookups run even when the logger isn't verbose.
//
// # Usage
//
//	log := logger.New(logger.Options{
//	    Name:        "aws-sso-creds-helper",
//	    CommandHint: "ssocreds",
//	})
//	log.Info("Fetching credentials for", profile)
//	log.SetVerbose(debug)
//	log.ReportDiagnostics(ctx, profile)
package logger
