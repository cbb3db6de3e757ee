// Package bundle provides the `gjslink bundle` command group.
package bundle

import (
	"github.com/spf13/cobra"

	"github.com/gjslink/cli/internal/cmdtypes"
)

// NewBundleCmd creates the bundle command group.
func NewBundleCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bundle",
		Short: "Bundle operations",
		Long:  `Commands for scaffolding, validating, and building gjslink bundles.`,
	}

	cmd.AddCommand(
		NewInitCmd(cfg),
		NewVetCmd(cfg),
		NewBuildCmd(cfg),
	)

	return cmd
}
