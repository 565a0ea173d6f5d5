// Package command provides CLI command definitions for otpowner.
package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/otpowner/internal/cli/config"
	"github.com/yndnr/otpowner/internal/cli/output"
	"github.com/yndnr/otpowner/internal/infra/buildinfo"
	"github.com/yndnr/otpowner/internal/infra/shutdown"
	"github.com/yndnr/otpowner/internal/storage/registry"
	"github.com/yndnr/otpowner/internal/storage/source"
	"github.com/yndnr/otpowner/internal/telemetry/logger"
	"github.com/yndnr/otpowner/internal/telemetry/metric"
)

const envKey = "otpowner.env"

// shutdownTimeout bounds cleanup hooks such as stopping the metrics server.
const shutdownTimeout = 5 * time.Second

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:      "otpowner",
		Usage:     "Identify the owner of a hardware OTP token",
		ArgsUsage: "[TABLE]",
		Version:   buildinfo.String(),
		Flags:     globalFlags(),
		Commands: []*cli.Command{
			LookupCommand(),
			OwnerCommand(),
			EncodeCommand(),
			VersionCommand(),
		},
		Before: setup,
		After:  teardown,
		Action: interactive,
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Config file (default ~/.otpowner/config.yaml when present)",
			EnvVars: []string{"OTPOWNER_CONFIG"},
		},
		&cli.StringFlag{
			Name:  "env-file",
			Usage: "Dotenv file applied before reading OTPOWNER_* variables",
			Value: config.DefaultEnvFile,
		},
		&cli.StringFlag{
			Name:    "table",
			Aliases: []string{"t"},
			Usage:   "Token table: local path or s3://bucket/key",
		},
		&cli.StringFlag{
			Name:    "mode",
			Aliases: []string{"m"},
			Usage:   "Interactive lookup mode: forward (1) or reverse (2)",
		},
		&cli.StringFlag{
			Name:  "delimiter",
			Usage: "Table field delimiter",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json, yaml",
		},
		&cli.StringFlag{
			Name:  "color",
			Usage: "Interactive colors: auto, always, never",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warn, error",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "Log format: text, json",
		},
		&cli.StringFlag{
			Name:  "metrics-addr",
			Usage: "Serve Prometheus metrics on this address (e.g. :9108)",
		},
		&cli.BoolFlag{
			Name:  "no-watch",
			Usage: "Do not watch the table file for changes",
		},
	}
}

// flagKeys maps global flags to configuration keys.
var flagKeys = map[string]string{
	"table":        "table.path",
	"mode":         "mode",
	"delimiter":    "table.delimiter",
	"output":       "output.format",
	"color":        "output.color",
	"log-level":    "log.level",
	"log-format":   "log.format",
	"metrics-addr": "metrics.address",
}

// flagOverrides collects the explicitly set flags as configuration values.
func flagOverrides(c *cli.Context) map[string]any {
	overrides := make(map[string]any)
	for name, key := range flagKeys {
		if c.IsSet(name) {
			overrides[key] = c.String(name)
		}
	}
	if c.Bool("no-watch") {
		overrides["table.watch"] = false
	}
	return overrides
}

// Env holds the runtime dependencies shared by all commands.
type Env struct {
	Config   *config.Config
	Logger   logger.Logger
	Metrics  *metric.Registry
	Opener   source.Opener
	Shutdown *shutdown.Handler

	Stdin  io.Reader
	Stdout io.Writer
}

// RegistryOptions returns the table parsing options from configuration.
func (e *Env) RegistryOptions() []registry.Option {
	delim, _ := e.Config.DelimiterRune()
	return []registry.Option{
		registry.WithDelimiter(delim),
		registry.WithLogger(e.Logger),
	}
}

// Formatter returns the configured one-shot output formatter.
func (e *Env) Formatter() output.Formatter {
	format, _ := output.ParseFormat(e.Config.Output.Format)
	return output.NewFormatter(format)
}

func setup(c *cli.Context) error {
	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: c.String("config"),
		EnvFile:    c.String("env-file"),
		Flags:      flagOverrides(c),
	})
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logCfg := cfg.LoggerConfig()
	logCfg.Output = c.App.ErrWriter
	if logCfg.Output == nil {
		logCfg.Output = os.Stderr
	}
	log, err := logger.New(logCfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logger.SetDefault(log)

	env := &Env{
		Config:   cfg,
		Logger:   log,
		Metrics:  metric.NewRegistry(),
		Shutdown: shutdown.NewHandler(shutdownTimeout),
		Stdin:    c.App.Reader,
		Stdout:   c.App.Writer,
	}
	if env.Stdin == nil {
		env.Stdin = os.Stdin
	}
	if env.Stdout == nil {
		env.Stdout = os.Stdout
	}

	s3cfg := cfg.SourceS3Config()
	env.Opener = source.NewMux(source.WithS3Factory(func(ctx context.Context) (source.Opener, error) {
		return source.NewS3FromConfig(ctx, s3cfg)
	}))

	if addr := cfg.Metrics.Address; addr != "" {
		srv, err := metric.Serve(addr, env.Metrics)
		if err != nil {
			return fmt.Errorf("start metrics server: %w", err)
		}
		env.Shutdown.OnShutdown(srv.Shutdown)
	}

	if c.App.Metadata == nil {
		c.App.Metadata = make(map[string]any)
	}
	c.App.Metadata[envKey] = env

	log.Debug("configuration loaded",
		"table", cfg.Table.Path,
		"mode", cfg.Mode,
		"output", cfg.Output.Format,
		"s3_access_key", cfg.S3.AccessKey,
	)
	return nil
}

func teardown(c *cli.Context) error {
	env, ok := c.App.Metadata[envKey].(*Env)
	if !ok {
		return nil
	}
	return env.Shutdown.Shutdown()
}

// EnvFrom returns the runtime environment prepared by the Before hook.
func EnvFrom(c *cli.Context) (*Env, error) {
	if env, ok := c.App.Metadata[envKey].(*Env); ok {
		return env, nil
	}
	return nil, fmt.Errorf("command environment not initialized")
}
