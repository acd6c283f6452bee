package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var demoLevel string

func init() {
	demoCmd.Flags().StringVarP(&demoLevel, "level", "l", "", "print only at this level (success, info, warn, error, debug, log)")
	RootCmd.AddCommand(demoCmd)
}

func resetDemoState() {
	demoLevel = ""
}

var demoCmd = &cobra.Command{
	Use:   "demo [messages...]",
	Short: "Print a message at every level",
	Long: `Prints the given messages at every log level, joined with ", ".

Debug lines only appear with --verbose or --debug. Nothing appears with
--quiet.

Examples:
  awslogger demo "Fetching credentials" dev
  awslogger demo --level warn "Token expires soon"`,
	RunE: runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{"hello from " + Logger.Name()}
	}

	levels := map[string]func(...string){
		"success": Logger.Success,
		"info":    Logger.Info,
		"warn":    Logger.Warn,
		"error":   Logger.Error,
		"debug":   Logger.Debug,
		"log":     Logger.Log,
	}

	if demoLevel != "" {
		printFn, ok := levels[demoLevel]
		if !ok {
			return fmt.Errorf("unknown level %q", demoLevel)
		}
		printFn(args...)
		return nil
	}

	for _, level := range []string{"success", "info", "warn", "error", "debug", "log"} {
		levels[level](args...)
	}
	return nil
}
