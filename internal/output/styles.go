package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette — named constants for all ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: bundle names, unit names, paths.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for successful build results.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for advisory warnings (entry unit not last).
	ColorYellow = lipgloss.Color("220")

	// ColorRed is used for fatal build errors.
	ColorRed = lipgloss.Color("196")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles — map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (bundle names, unit names, paths).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleAction styles action verbs (building, vetting, publishing).
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (separators, timestamps, digests).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)

	// StyleOK styles success markers.
	StyleOK = lipgloss.NewStyle().Foreground(ColorGreenCheck)

	// StyleError styles fatal error markers.
	StyleError = lipgloss.NewStyle().Foreground(ColorRed)
)
