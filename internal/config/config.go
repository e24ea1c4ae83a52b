// Package config locates the package root and loads the genry run configuration.
package config

// DefaultInclude matches every template file under the package root.
// The ".genry." marker segment is the discovery convention: any source file
// named <something>.genry.<ext> is a candidate, dotfiles included.
const DefaultInclude = "**/*.genry.*"

// Config is the run configuration, sourced once per run from the rc file
// (.genryrc.yaml and friends) with GENRY_* environment overrides.
// Immutable for the run's duration.
type Config struct {
	// Include is the glob pattern for template discovery, relative to the
	// package root. Default: DefaultInclude.
	Include string `mapstructure:"include" json:"include,omitempty" yaml:"include,omitempty"`

	// Exclude is an optional glob pattern; matching paths are dropped.
	Exclude string `mapstructure:"exclude" json:"exclude,omitempty" yaml:"exclude,omitempty"`

	// Loader maps a file extension (".ts", ".py", ...) to the interpreter
	// command used to run template files with that extension. Files with the
	// executable bit set run directly and never consult this map.
	Loader map[string]string `mapstructure:"loader" json:"loader,omitempty" yaml:"loader,omitempty"`
}

// WithDefaults returns a copy of the config with defaults applied.
func (c *Config) WithDefaults() *Config {
	out := *c
	if out.Include == "" {
		out.Include = DefaultInclude
	}
	return &out
}
