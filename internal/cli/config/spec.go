// Package config provides CLI configuration for otpowner.
package config

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yndnr/otpowner/internal/cli/output"
	"github.com/yndnr/otpowner/internal/core/domain"
	"github.com/yndnr/otpowner/internal/storage/source"
	"github.com/yndnr/otpowner/internal/telemetry/logger"
)

// DefaultTable is the table used when no path is given and the prompt
// answer is empty.
const DefaultTable = "log.csv"

// Config is the configuration for otpowner.
type Config struct {
	Table   TableConfig   `koanf:"table" yaml:"table"`
	Mode    string        `koanf:"mode" yaml:"mode"` // forward, reverse, or empty to prompt
	Output  OutputConfig  `koanf:"output" yaml:"output"`
	Log     LogConfig     `koanf:"log" yaml:"log"`
	Metrics MetricsConfig `koanf:"metrics" yaml:"metrics"`
	S3      S3Config      `koanf:"s3" yaml:"s3"`
}

// TableConfig locates and parses the token table.
type TableConfig struct {
	Path      string `koanf:"path" yaml:"path"`
	Default   string `koanf:"default" yaml:"default"`
	Delimiter string `koanf:"delimiter" yaml:"delimiter"`
	Watch     bool   `koanf:"watch" yaml:"watch"`
}

// OutputConfig controls one-shot output and interactive colors.
type OutputConfig struct {
	Format string `koanf:"format" yaml:"format"`
	Color  string `koanf:"color" yaml:"color"`
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	Level  string `koanf:"level" yaml:"level"`
	Format string `koanf:"format" yaml:"format"`
}

// MetricsConfig enables the Prometheus endpoint when Address is set.
type MetricsConfig struct {
	Address string `koanf:"address" yaml:"address"`
}

// S3Config configures s3:// table locations.
type S3Config struct {
	Region    string `koanf:"region" yaml:"region"`
	Endpoint  string `koanf:"endpoint" yaml:"endpoint"`
	AccessKey string `koanf:"accesskey" yaml:"accesskey"`
	SecretKey string `koanf:"secretkey" yaml:"secretkey"`
	PathStyle bool   `koanf:"pathstyle" yaml:"pathstyle"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Table: TableConfig{
			Default:   DefaultTable,
			Delimiter: ",",
			Watch:     true,
		},
		Output: OutputConfig{
			Format: string(output.FormatTable),
			Color:  output.ColorAuto,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Validate checks every enumerated value.
func (c *Config) Validate() error {
	if _, err := c.DelimiterRune(); err != nil {
		return err
	}
	if _, _, err := c.Direction(); err != nil {
		return err
	}
	if _, err := output.ParseFormat(c.Output.Format); err != nil {
		return err
	}
	if !output.ValidColorMode(c.Output.Color) {
		return domain.ErrInvalidArgument.WithDetails("unknown color mode " + c.Output.Color)
	}
	if c.Log.Level != "" && !logger.ValidLevel(c.Log.Level) {
		return domain.ErrInvalidArgument.WithDetails("unknown log level " + c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return domain.ErrInvalidArgument.WithDetails("unknown log format " + c.Log.Format)
	}
	return nil
}

// DelimiterRune returns the field delimiter as a single rune.
func (c *Config) DelimiterRune() (rune, error) {
	d := c.Table.Delimiter
	if d == "" {
		return ',', nil
	}
	if d == `\t` || strings.EqualFold(d, "tab") {
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(d)
	if size != len(d) || r == utf8.RuneError || r == '"' || r == '\r' || r == '\n' {
		return 0, domain.ErrInvalidArgument.WithDetails(fmt.Sprintf("invalid delimiter %q", d))
	}
	return r, nil
}

// Direction returns the configured lookup direction. ok is false when no
// mode is set and the session should prompt for one.
func (c *Config) Direction() (dir domain.Direction, ok bool, err error) {
	if strings.TrimSpace(c.Mode) == "" {
		return "", false, nil
	}
	dir, err = domain.ParseDirection(c.Mode)
	if err != nil {
		return "", false, err
	}
	return dir, true, nil
}

// DefaultTablePath returns the table used for an empty prompt answer.
func (c *Config) DefaultTablePath() string {
	if c.Table.Default == "" {
		return DefaultTable
	}
	return c.Table.Default
}

// SourceS3Config converts the S3 settings for the table source.
func (c *Config) SourceS3Config() source.S3Config {
	return source.S3Config{
		Region:          c.S3.Region,
		Endpoint:        c.S3.Endpoint,
		AccessKeyID:     c.S3.AccessKey,
		SecretAccessKey: c.S3.SecretKey,
		PathStyle:       c.S3.PathStyle,
	}
}

// LoggerConfig converts the log settings for the logger.
func (c *Config) LoggerConfig() logger.Config {
	cfg := logger.DefaultConfig()
	if c.Log.Level != "" {
		cfg.Level = c.Log.Level
	}
	if c.Log.Format != "" {
		cfg.Format = c.Log.Format
	}
	return cfg
}
