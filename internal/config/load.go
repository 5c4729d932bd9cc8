package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load, e.g.
// PARTICLES_ENGINE_PRECISION.
const EnvPrefix = "PARTICLES"

// Defaults.
const (
	DefaultPort      = 8080
	DefaultLogLevel  = "info"
	DefaultPrecision = 30
	DefaultWorkers   = 4
)

// DefaultSigFigs are the rendering levels used when none are configured:
// unrounded and three significant figures.
var DefaultSigFigs = []int{0, 3}

// Load reads configuration from an optional config.yaml in the working
// directory and from environment variables. Environment variables take
// precedence over values from the file.
func Load() (*Config, error) {
	v := newViper()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return decode(v)
}

// LoadFromFile is like Load but reads the given file instead of searching
// the working directory. An empty path skips the file.
func LoadFromFile(path string) (*Config, error) {
	if path == "" {
		return Load()
	}

	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", DefaultLogLevel)
	v.SetDefault("engine.precision", DefaultPrecision)
	v.SetDefault("engine.sig_figs", DefaultSigFigs)
	v.SetDefault("catalog.workers", DefaultWorkers)
	v.SetDefault("catalog.path", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks struct tags plus the cross-field rule that no rendering
// level exceeds the working precision.
func Validate(cfg *Config) error {
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	for _, n := range cfg.Engine.SigFigs {
		if n > int(cfg.Engine.Precision) {
			return fmt.Errorf("configuration validation failed: sig_figs level %d exceeds precision %d",
				n, cfg.Engine.Precision)
		}
	}

	return nil
}
