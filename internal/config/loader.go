package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Environment variable prefix for genry configuration.
const envPrefix = "GENRY"

// rcName is the rc file base name searched for in the package root.
const rcName = ".genryrc"

// Loader handles loading and merging configuration from multiple sources.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader. The loader map keys are file
// extensions with a leading dot, so the key delimiter must not be ".".
func NewLoader() *Loader {
	v := viper.NewWithOptions(viper.KeyDelimiter("::"))

	// Set up environment variable bindings
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("::", "_"))
	v.AutomaticEnv()

	// Bind specific environment variables
	_ = v.BindEnv("include", "GENRY_INCLUDE")
	_ = v.BindEnv("exclude", "GENRY_EXCLUDE")

	return &Loader{v: v}
}

// Load loads configuration for the given package root.
// If configFile is non-empty it is read directly; otherwise the package root
// is searched for .genryrc.{yaml,yml,json}. A missing rc file is not an
// error: defaults plus environment variables apply.
// Environment variables take precedence over file values.
func (l *Loader) Load(packageRoot, configFile string) (*Config, error) {
	if configFile != "" {
		l.v.SetConfigFile(configFile)
	} else {
		l.v.SetConfigName(rcName)
		l.v.AddConfigPath(packageRoot)
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults + env vars
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return cfg.WithDefaults(), nil
}
