package cmdutil

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gjslink/cli/internal/bundle"
	"github.com/gjslink/cli/internal/output"
)

// WriteBuildReport writes a build report to w in the requested format.
func WriteBuildReport(w io.Writer, report *bundle.Report, format output.Format) error {
	if format != output.FormatText {
		return output.WriteReport(w, report, format)
	}

	var b strings.Builder
	b.WriteString(output.StyleSummary.Render(fmt.Sprintf("bundle %s", report.Name)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  script:    %s\n", output.StyleNoun.Render(report.Script))
	fmt.Fprintf(&b, "  digest:    %s\n", output.StyleDim.Render(report.Digest))
	fmt.Fprintf(&b, "  units:     %d\n", len(report.Units))
	fmt.Fprintf(&b, "  resources: %d\n", report.Resources)
	if len(report.Pins) > 0 {
		pins := make([]string, len(report.Pins))
		for i, p := range report.Pins {
			pins[i] = p.Namespace + "=" + p.Version
		}
		fmt.Fprintf(&b, "  pins:      %s\n", strings.Join(pins, ", "))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// UnitTable renders the per-unit table shown by vet.
func UnitTable(report *bundle.Report, deps map[string][]string) string {
	rows := make([]output.UnitRow, 0, len(report.Units))
	for _, u := range report.Units {
		rows = append(rows, output.UnitRow{
			Name:    u.Name,
			Bytes:   strconv.Itoa(u.Bytes),
			Exports: strings.Join(u.Exports, ", "),
			Deps:    strings.Join(deps[u.Name], ", "),
		})
	}
	return output.RenderUnitTable(rows)
}
