package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ryansonshine/aws-cli-util-logger/internal/ui"
)

var diagnosticsProfile string

func init() {
	diagnosticsCmd.Flags().StringVarP(&diagnosticsProfile, "profile", "p", "", "AWS profile to inspect (default from settings)")
	RootCmd.AddCommand(diagnosticsCmd)
}

func resetDiagnosticsState() {
	diagnosticsProfile = ""
}

var diagnosticsCmd = &cobra.Command{
	Use:     "diagnostics",
	Aliases: []string{"doctor", "sysinfo"},
	Short:   "Show AWS CLI version, OS and profile configuration",
	Long: `Collects environment diagnostics for support requests.

Runs 'aws --version' and 'aws configure list --profile <profile>' concurrently
and prints the results with the OS and Go runtime versions. A lookup that
fails is shown as NOT FOUND.

Examples:
  # Inspect the profile from the settings file
  awslogger diagnostics

  # Inspect a specific profile
  awslogger diagnostics --profile dev`,
	Args: cobra.NoArgs,
	RunE: runDiagnostics,
}

func runDiagnostics(cmd *cobra.Command, args []string) error {
	profile := diagnosticsProfile
	if profile == "" {
		profile = Config.AWS.Profile
	}
	Logger.Debug("Collecting diagnostics for profile " + ui.Highlight.Sprint(profile))

	cleanup := startSpinner(cmd.ErrOrStderr(), "Collecting diagnostics...")
	d := Logger.SystemInfo(cmd.Context(), profile)
	cleanup()

	// Diagnostics are printed at debug level, which this command always shows.
	Logger.SetVerbose(true)
	Logger.PrintDiagnostics(d)
	return nil
}
