package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gjslink/cli/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show CLI version information",
		Long: `Display version information for the gjslink CLI.

Shows the CLI version, build information, and the detected GJS runtime.`,
		RunE: runVersion,
	}
}

func runVersion(cmd *cobra.Command, _ []string) error {
	info := version.GetInfo()
	rt := version.DetectRuntime()

	fmt.Fprintln(cmd.OutOrStdout(), version.FullVersionString(info, rt))
	return nil
}
