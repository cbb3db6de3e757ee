package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gjslink/cli/internal/cmdtypes"
	"github.com/gjslink/cli/internal/config"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the gjslink configuration file",
		Long: `Validate the gjslink configuration file.

The command validates the configuration file at ~/.gjslink/config.yaml by
default. Use the --config flag to specify a different location.`,
		RunE: func(c *cobra.Command, _ []string) error {
			return runVet(c, cfg)
		},
	}
}

func runVet(command *cobra.Command, cfg *cmdtypes.GlobalConfig) error {
	configFile := cfg.ConfigPath
	if configFile == "" {
		var err error
		configFile, err = config.GetConfigFile()
		if err != nil {
			return fmt.Errorf("getting config file path: %w", err)
		}
	}

	expandedPath, err := config.ExpandPath(configFile)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	exists, err := config.ConfigFileExists(expandedPath)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}
	if !exists {
		return cmdtypes.NewExitError(
			fmt.Errorf("config file not found: %s", expandedPath),
			cmdtypes.ExitNotFound,
		)
	}

	if _, err := config.NewLoader().LoadWithDefaults(expandedPath); err != nil {
		return cmdtypes.NewExitError(
			fmt.Errorf("config validation failed: %w", err),
			cmdtypes.ExitValidationError,
		)
	}

	fmt.Fprintf(command.OutOrStdout(), "Config file is valid: %s\n", expandedPath)
	return nil
}
