package main

import (
	"fmt"

	"github.com/spf13/cobra"

	bundlecmd "github.com/gjslink/cli/internal/cmd/bundle"
	configcmd "github.com/gjslink/cli/internal/cmd/config"
	"github.com/gjslink/cli/internal/cmdtypes"
	"github.com/gjslink/cli/internal/config"
	"github.com/gjslink/cli/internal/output"
	"github.com/gjslink/cli/internal/version"
)

// NewRootCmd creates the base command for the gjslink CLI.
func NewRootCmd() *cobra.Command {
	var (
		flagConfig  string
		flagVerbose bool
	)

	// populated in PersistentPreRunE, read by sub-commands
	globals := &cmdtypes.GlobalConfig{}

	rootCmd := &cobra.Command{
		Use:   "gjslink",
		Short: "Single-scope bundler for the GJS runtime",
		Long: `gjslink flattens compiled modules into one global-scope script for a
runtime without a module system.

It provides commands to:
  - Scaffold, validate, and build bundle projects
  - Translate native-binding imports into the runtime's binding table form
  - Validate the hand-authored concatenation order against declared dependencies`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.NewLoader().LoadWithDefaults(flagConfig)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			output.SetupLogging(output.LogOptions{
				Verbose:    flagVerbose,
				Timestamps: cfg.Log.Timestamps,
			})

			globals.Config = cfg
			globals.ConfigPath = flagConfig
			globals.Verbose = flagVerbose

			info := version.GetInfo()
			output.Debug("gjslink started", "version", info.Version)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "path to config file (env: GJSLINK_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "increase output verbosity")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(configcmd.NewConfigCmd(globals))
	rootCmd.AddCommand(bundlecmd.NewBundleCmd(globals))

	return rootCmd
}
