package bundle

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gjslink/cli/internal/bundle"
	"github.com/gjslink/cli/internal/cmdtypes"
	"github.com/gjslink/cli/internal/cmdutil"
	gerrors "github.com/gjslink/cli/internal/errors"
	"github.com/gjslink/cli/internal/output"
)

// NewBuildCmd creates the bundle build command.
func NewBuildCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var (
		outputFlag string
		outDirFlag string
		dryRunFlag bool
	)

	c := &cobra.Command{
		Use:   "build [path]",
		Short: "Flatten the bundle into a single runtime script",
		Long: `Build a bundle: read every unit's compiled artifact, strip module
scaffolding, translate native-binding imports, rewrite cross-unit references,
and emit one flattened script plus the mirrored resource tree.

The build is atomic. Output is assembled in a staging directory and published
as the last step; on any error the previous artifact is left untouched.

Arguments:
  path    Path to the bundle project or manifest (default: current directory)

Examples:
  # Build the bundle in the current directory
  gjslink bundle build

  # Build a specific project with a JSON report
  gjslink bundle build ./my-app -o json

  # Build into an alternate output directory
  gjslink bundle build --out-dir ./out`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runBuild(c, args, cfg, outputFlag, outDirFlag, dryRunFlag)
		},
	}

	c.Flags().StringVarP(&outputFlag, "output", "o", "text",
		"Report format: text, yaml, json")
	c.Flags().StringVar(&outDirFlag, "out-dir", "",
		"Override the manifest's output directory")
	c.Flags().BoolVar(&dryRunFlag, "dry-run", false,
		"Run all stages but do not emit the artifact")
	return c
}

func runBuild(c *cobra.Command, args []string, cfg *cmdtypes.GlobalConfig, outputFmt, outDir string, dryRun bool) error {
	ctx := context.Background()

	format, valid := output.ParseFormat(outputFmt)
	if !valid {
		return cmdtypes.NewExitError(
			fmt.Errorf("invalid report format %q (valid: text, yaml, json)", outputFmt),
			cmdtypes.ExitGeneralError)
	}

	m, err := cmdutil.LoadManifest(args, cfg)
	if err != nil {
		return asExitError(err)
	}

	if outDir == "" && cfg.Config != nil {
		outDir = cfg.Config.OutDir
	}

	var report *bundle.Report
	buildErr := output.RunWithSpinner(ctx, func() error {
		var err error
		report, err = bundle.Build(ctx, m, bundle.Options{OutDir: outDir, DryRun: dryRun})
		return err
	}, output.WithTitle(fmt.Sprintf("Building %s...", m.Name)))
	if buildErr != nil {
		return asExitError(buildErr)
	}

	if err := cmdutil.WriteBuildReport(c.OutOrStdout(), report, format); err != nil {
		return cmdtypes.NewExitError(fmt.Errorf("writing report: %w", err), cmdtypes.ExitGeneralError)
	}

	if format == output.FormatText && !dryRun {
		log := output.BundleLogger(m.Name)
		log.Info(fmt.Sprintf("wrote %d units to %s", len(report.Units), m.Output.Script))
	}

	return nil
}

// asExitError attaches the sentinel-derived exit code to a pipeline error
// and prints the diagnostic once, at the command layer.
func asExitError(err error) error {
	if err == nil {
		return nil
	}
	fmt.Fprintln(os.Stderr, output.StyleError.Render("build failed:"), err)
	return &cmdtypes.ExitError{
		Err:     err,
		Code:    gerrors.ExitCodeFromError(err),
		Printed: true,
	}
}
