// Package cli builds the cobra commands behind the bundlemodel, fetchmodels
// and servemodels binaries.
package cli

import (
	"github.com/spf13/cobra"

	"modelkit/internal/config"
)

// addCommonFlags registers --config and --log-level.
func addCommonFlags(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "Config file (.yaml, .yml, .json or .toml)")
	cmd.Flags().String("log-level", "", "Log level: debug|info|warn|error|off (defaults MODELKIT_LOG_LEVEL or info)")
}

// loadConfig reads --config and applies --log-level on top.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
	}
	return cfg, nil
}

// stringFlag returns the flag value when it was set explicitly, else fallback.
func stringFlag(cmd *cobra.Command, name, fallback string) string {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetString(name)
		return v
	}
	return fallback
}

func intFlag(cmd *cobra.Command, name string, fallback int) int {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetInt(name)
		return v
	}
	return fallback
}

// stringArrayFlag keeps each flag occurrence as one value; commas are not
// separators.
func stringArrayFlag(cmd *cobra.Command, name string, fallback []string) []string {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetStringArray(name)
		return v
	}
	return fallback
}
