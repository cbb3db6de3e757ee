// Package output provides terminal output utilities for the gjslink CLI.
package output

import "strings"

// Format specifies the report output format.
type Format string

const (
	// FormatText outputs a human-readable summary.
	FormatText Format = "text"

	// FormatYAML outputs in YAML format.
	FormatYAML Format = "yaml"

	// FormatJSON outputs in JSON format.
	FormatJSON Format = "json"
)

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// ParseFormat parses a string into a Format. ok is false for unknown names.
func ParseFormat(s string) (Format, bool) {
	switch strings.ToLower(s) {
	case "", "text":
		return FormatText, true
	case "yaml", "yml":
		return FormatYAML, true
	case "json":
		return FormatJSON, true
	default:
		return FormatText, false
	}
}
