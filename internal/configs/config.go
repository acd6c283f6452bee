package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	kerrors "github.com/ryansonshine/aws-cli-util-logger/internal/errors"
	"github.com/ryansonshine/aws-cli-util-logger/logger"
)

// EnvConfigPath overrides the settings file location.
const EnvConfigPath = "AWSLOGGER_CONFIG"

type Config struct {
	Logger LoggerConfig `toml:"logger"`
	AWS    AWSConfig    `toml:"aws"`
}

type LoggerConfig struct {
	Name        string `toml:"name"`
	CommandHint string `toml:"command_hint"`
	DebugFlag   string `toml:"debug_flag"`
}

type AWSConfig struct {
	CLI     string `toml:"cli"`
	Profile string `toml:"profile"`
}

// DefaultConfig returns the settings used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Logger: LoggerConfig{
			Name:        "awslogger",
			CommandHint: "awslogger",
			DebugFlag:   logger.DefaultDebugFlag,
		},
		AWS: AWSConfig{
			CLI:     "aws",
			Profile: logger.DefaultProfile,
		},
	}
}

// ConfigPath returns the settings file location, honoring EnvConfigPath.
func ConfigPath() (string, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path, nil
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("error getting config directory: %w", err)
	}
	return filepath.Join(configDir, "awslogger", "config.toml"), nil
}

// LoadConfig loads the settings file at path on top of DefaultConfig.
// A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}

	if err := LoadTOML(path, config); err != nil {
		return nil, fmt.Errorf("failed to load %s: %v: %w", path, err, kerrors.ErrInvalidConfig)
	}

	return config, nil
}

// SaveConfig writes config to path, creating parent directories.
// It refuses to overwrite an existing file unless force is set.
func SaveConfig(path string, config *Config, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists: %w", path, fs.ErrExist)
		}
	}

	if err := SaveTOML(path, config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	return nil
}

// RequireConfig loads the settings file at path and fails if it is absent.
func RequireConfig(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", path, kerrors.ErrConfigNotFound)
	}
	return LoadConfig(path)
}

// LoggerOptions converts the settings into logger options.
func (c *Config) LoggerOptions() logger.Options {
	return logger.Options{
		Name:          c.Logger.Name,
		CommandHint:   c.Logger.CommandHint,
		DebugFlagHint: c.Logger.DebugFlag,
		CLI:           c.AWS.CLI,
	}
}
