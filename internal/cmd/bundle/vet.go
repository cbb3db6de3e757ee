package bundle

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gjslink/cli/internal/bundle"
	"github.com/gjslink/cli/internal/cmdtypes"
	"github.com/gjslink/cli/internal/cmdutil"
	"github.com/gjslink/cli/internal/output"
)

// NewVetCmd creates the bundle vet command.
func NewVetCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet [path]",
		Short: "Validate a bundle without emitting",
		Long: `Validate a bundle: manifest schema, ordering policy against declared
dependencies, import translation, cross-unit references, and export name
collisions. Runs every build stage except emission.

Arguments:
  path    Path to the bundle project or manifest (default: current directory)`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runVet(c, args, cfg)
		},
	}
}

func runVet(c *cobra.Command, args []string, cfg *cmdtypes.GlobalConfig) error {
	m, err := cmdutil.LoadManifest(args, cfg)
	if err != nil {
		return asExitError(err)
	}

	report, err := bundle.Vet(context.Background(), m)
	if err != nil {
		return asExitError(err)
	}

	deps := make(map[string][]string, len(m.Units))
	for _, u := range m.Units {
		deps[u.Name] = u.Deps
	}
	fmt.Fprintln(c.OutOrStdout(), cmdutil.UnitTable(report, deps))

	ok := output.StyleOK.Render("✔")
	fmt.Fprintf(c.OutOrStdout(), "%s bundle %s is valid (%d units)\n",
		ok, output.StyleNoun.Render(m.Name), len(report.Units))
	return nil
}
