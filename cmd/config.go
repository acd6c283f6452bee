package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/ryansonshine/aws-cli-util-logger/internal/configs"
	kerrors "github.com/ryansonshine/aws-cli-util-logger/internal/errors"
	"github.com/ryansonshine/aws-cli-util-logger/internal/ui"
)

var configInitForce bool

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing settings file")
	ConfigCmd.AddCommand(configInitCmd)
	ConfigCmd.AddCommand(configShowCmd)
	RootCmd.AddCommand(ConfigCmd)
}

func resetConfigState() {
	configInitForce = false
}

// ConfigCmd is the top-level config command.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage awslogger settings",
	Long: `Provides commands for managing the awslogger settings file.

Examples:
  # Write the default settings file
  awslogger config init

  # Show the resolved settings
  awslogger config show`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default settings file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}

		Logger.Debug("Writing default settings to " + path)
		if err := configs.SaveConfig(path, configs.DefaultConfig(), configInitForce); err != nil {
			return err
		}

		Logger.Success("Settings written to " + ui.Path.Sprint(path))
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the resolved settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}

		if _, err := configs.RequireConfig(path); errors.Is(err, kerrors.ErrConfigNotFound) {
			Logger.Warn("No settings file at " + ui.Path.Sprint(path) + ", showing defaults")
		}

		Logger.Info("name", ui.Highlight.Sprint(Config.Logger.Name))
		Logger.Info("command_hint", ui.Highlight.Sprint(Config.Logger.CommandHint))
		Logger.Info("debug_flag", ui.Highlight.Sprint(Config.Logger.DebugFlag))
		Logger.Info("cli", ui.Highlight.Sprint(Config.AWS.CLI))
		Logger.Info("profile", ui.Highlight.Sprint(Config.AWS.Profile))
		return nil
	},
}
