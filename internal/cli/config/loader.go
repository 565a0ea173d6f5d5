// Package config provides CLI configuration for otpowner.
package config

import (
	"os"
	"path/filepath"

	"github.com/yndnr/otpowner/internal/infra/confloader"
)

// DefaultEnvFile is loaded when present and no other dotenv file is named.
const DefaultEnvFile = ".env"

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".otpowner", "config.yaml")
	}
	return filepath.Join(homeDir, ".otpowner", "config.yaml")
}

// LoadOptions selects the configuration sources.
type LoadOptions struct {
	// ConfigFile is a file that must exist. Empty means the default path,
	// which may be absent.
	ConfigFile string

	// EnvFile is a dotenv file applied before environment lookup.
	EnvFile string

	// Flags holds explicitly set command-line values keyed by dotted path.
	Flags map[string]any
}

// Load builds the configuration with priority flag > env > file > default.
func Load(opts LoadOptions) (*Config, error) {
	loaderOpts := []confloader.Option{
		confloader.WithDefaults(defaultsMap()),
		confloader.WithDotEnv(opts.EnvFile),
	}
	if opts.ConfigFile != "" {
		loaderOpts = append(loaderOpts, confloader.WithConfigFile(opts.ConfigFile))
	} else {
		loaderOpts = append(loaderOpts, confloader.WithOptionalConfigFile(DefaultConfigPath()))
	}

	l := confloader.NewLoader(loaderOpts...)

	cfg := &Config{}
	if err := l.Load(cfg); err != nil {
		return nil, err
	}

	if len(opts.Flags) > 0 {
		if err := l.LoadMap(opts.Flags); err != nil {
			return nil, err
		}
		if err := l.Unmarshal(cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultsMap() map[string]any {
	d := Default()
	return map[string]any{
		"table.default":   d.Table.Default,
		"table.delimiter": d.Table.Delimiter,
		"table.watch":     d.Table.Watch,
		"output.format":   d.Output.Format,
		"output.color":    d.Output.Color,
		"log.level":       d.Log.Level,
		"log.format":      d.Log.Format,
	}
}
