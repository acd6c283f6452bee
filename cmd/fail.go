package cmd

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var failUnknown bool

func init() {
	failCmd.Flags().BoolVar(&failUnknown, "unknown", false, "fail with a value that is not an error")
	RootCmd.AddCommand(failCmd)
}

func resetFailState() {
	failUnknown = false
	exitFunc = os.Exit
}

var failCmd = &cobra.Command{
	Use:   "fail [message]",
	Short: "Report a simulated error",
	Long: `Fails on purpose to show how errors are reported.

The error message is printed on stderr. With --debug the stack trace follows,
otherwise a hint suggests re-running with the debug flag. The report is shown
even with --quiet.

Examples:
  awslogger fail "token expired"
  awslogger fail --debug
  awslogger fail --unknown`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFail,
}

func runFail(cmd *cobra.Command, args []string) error {
	if failUnknown {
		// Values that aren't errors can't travel through RunE.
		Logger.HandleError(struct{}{}, debug)
		exitFunc(1)
		return nil
	}

	message := "simulated failure"
	if len(args) == 1 {
		message = args[0]
	}
	return errors.New(message)
}
