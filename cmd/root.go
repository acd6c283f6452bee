package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ryansonshine/aws-cli-util-logger/internal/awscli"
	"github.com/ryansonshine/aws-cli-util-logger/internal/configs"
	"github.com/ryansonshine/aws-cli-util-logger/internal/ui"
	"github.com/ryansonshine/aws-cli-util-logger/logger"
)

var (
	verbose    bool
	debug      bool
	quiet      bool
	configPath string

	// Logger is the logger of the current invocation, set in PersistentPreRunE.
	Logger *logger.Logger

	// Config holds the resolved settings of the current invocation.
	Config *configs.Config

	// cliRunner executes the AWS CLI. nil starts real processes.
	cliRunner awscli.Runner

	RootCmd = &cobra.Command{
		Use:   "awslogger",
		Short: "awslogger - colored status output and diagnostics for AWS CLI tools.",
		Long: `awslogger prints the colored, prefixed status lines used by CLIs that wrap
the AWS CLI, reports errors uniformly and dumps environment diagnostics.

Usage:
  awslogger <command> [flags]

Available Commands:
  demo         Print a message at every level
  diagnostics  Show AWS CLI version, OS and profile configuration
  fail         Report a simulated error
  config       Manage awslogger settings

Run 'awslogger help <command>' for more details on a specific command.
`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setupLogger,
		Run: func(cmd *cobra.Command, args []string) {
			if Logger.IsDisabled() {
				return
			}
			banner := figure.NewFigure("awslogger", "", true)
			fmt.Fprintln(cmd.OutOrStdout(), ui.Info.Sprint(banner.String()))
			Logger.Info("Run " + ui.Code.Sprint("awslogger --help") + " to see available commands.")
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output and stack traces")
	RootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress all output; handled errors are still reported")
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "settings file (default $XDG_CONFIG_HOME/awslogger/config.toml)")
}

// setupLogger resolves settings and builds the invocation's logger.
func setupLogger(cmd *cobra.Command, args []string) error {
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}

	Config, err = configs.LoadConfig(path)
	if err != nil {
		return err
	}

	opts := Config.LoggerOptions()
	opts.Verbose = verbose || debug
	opts.Disabled = quiet
	opts.Stdout = cmd.OutOrStdout()
	opts.Stderr = cmd.ErrOrStderr()
	opts.Runner = cliRunner
	Logger = logger.New(opts)

	Logger.Debug(fmt.Sprintf("Initialized %s with verbose=%t, debug=%t, quiet=%t", cmd.CommandPath(), verbose, debug, quiet))
	Logger.Debug("Using settings from " + path)
	return nil
}

func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return configs.ConfigPath()
}

// Execute runs the root command and reports any error through the logger.
// It returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := RootCmd.ExecuteContext(ctx); err != nil {
		if Logger == nil {
			// Settings failed to load, fall back to defaults.
			opts := configs.DefaultConfig().LoggerOptions()
			opts.Stdout = RootCmd.OutOrStdout()
			opts.Stderr = RootCmd.ErrOrStderr()
			Logger = logger.New(opts)
		}
		Logger.HandleError(err, debug)
		return 1
	}
	return 0
}

// ResetState resets all global command state to default values for testing.
func ResetState() {
	verbose = false
	debug = false
	quiet = false
	configPath = ""
	Logger = nil
	Config = nil
	cliRunner = nil
	resetDiagnosticsState()
	resetDemoState()
	resetFailState()
	resetConfigState()
	resetCobraFlagState(RootCmd)
}

// resetCobraFlagState clears the Changed mark of every flag to prevent test pollution.
func resetCobraFlagState(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(flag *pflag.Flag) {
		flag.Changed = false
	})
	cmd.PersistentFlags().VisitAll(func(flag *pflag.Flag) {
		flag.Changed = false
	})
	for _, sub := range cmd.Commands() {
		resetCobraFlagState(sub)
	}
}

// exitFunc is called by commands that must exit without returning an error.
// Can be overridden for testing.
var exitFunc = os.Exit

// SetExitFunc sets the exit function for testing purposes.
func SetExitFunc(f func(int)) {
	exitFunc = f
}
