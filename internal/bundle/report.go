package bundle

// Report summarizes one pipeline run. Serialized by the CLI as YAML or JSON
// via the JSON field tags.
type Report struct {
	// BuildID uniquely identifies this run.
	BuildID string `json:"buildId"`

	// Name is the bundle name from the manifest.
	Name string `json:"name"`

	// Script is the emitted script file name.
	Script string `json:"script"`

	// Digest is the sha256 content digest of the emitted script.
	Digest string `json:"digest"`

	// Duration is the wall-clock build time.
	Duration string `json:"duration"`

	// Pins lists the version pins emitted in the prologue, in order.
	Pins []PinReport `json:"pins,omitempty"`

	// Units lists per-unit results in concatenation order.
	Units []UnitReport `json:"units"`

	// Resources is the number of mirrored resource files.
	Resources int `json:"resources"`
}

// PinReport is one emitted version pin.
type PinReport struct {
	Namespace string `json:"namespace"`
	Version   string `json:"version"`
}

// UnitReport is one unit's contribution to the bundle.
type UnitReport struct {
	Name    string   `json:"name"`
	Bytes   int      `json:"bytes"`
	Exports []string `json:"exports,omitempty"`
}
