// Package config provides configuration loading and management.
package config

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: false. The --verbose flag also enables them.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Config represents the gjslink CLI configuration.
// Loaded from ~/.gjslink/config.yaml; environment variables take precedence.
type Config struct {
	// Manifest is the manifest file name looked up in a bundle project.
	// Env: GJSLINK_MANIFEST, Default: "bundle.yaml"
	Manifest string `mapstructure:"manifest" yaml:"manifest,omitempty"`

	// OutDir overrides every bundle's output directory when set.
	// Env: GJSLINK_OUT_DIR
	OutDir string `mapstructure:"outDir" yaml:"outDir,omitempty"`

	// Namespaces adds global version pins applied beneath each manifest's
	// namespaces section (the manifest wins on conflict).
	Namespaces map[string]string `mapstructure:"namespaces" yaml:"namespaces,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `gjslink config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Manifest: "bundle.yaml",
	}
}

// WithDefaults fills unset fields with their defaults.
func (c *Config) WithDefaults() *Config {
	if c.Manifest == "" {
		c.Manifest = "bundle.yaml"
	}
	return c
}
