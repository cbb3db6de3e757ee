package bundle

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gjslink/cli/internal/cmdtypes"
	"github.com/gjslink/cli/internal/templates"
)

// NewInitCmd creates the bundle init command.
func NewInitCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	var (
		nameFlag  string
		forceFlag bool
	)

	c := &cobra.Command{
		Use:   "init [dir]",
		Short: "Scaffold a new bundle project",
		Long: `Create a new bundle project: a manifest, a sample compiled unit, and a
resource directory.

Arguments:
  dir    Target directory (default: current directory)`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			created, err := templates.Generate(templates.GenerateOptions{
				TargetDir:  dir,
				BundleName: nameFlag,
				Force:      forceFlag,
			})
			if err != nil {
				return cmdtypes.NewExitError(err, cmdtypes.ExitGeneralError)
			}

			for _, f := range created {
				fmt.Fprintf(c.OutOrStdout(), "created %s\n", f)
			}
			return nil
		},
	}

	c.Flags().StringVar(&nameFlag, "name", "", "Bundle name (default: directory name)")
	c.Flags().BoolVarP(&forceFlag, "force", "f", false, "Scaffold even if bundle.yaml exists")
	return c
}
