package command

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/otpowner/internal/cli/output"
	"github.com/yndnr/otpowner/internal/cli/repl"
	"github.com/yndnr/otpowner/internal/telemetry/logger"
)

// interactive runs the lookup session. An optional positional argument
// overrides the configured table path.
func interactive(c *cli.Context) error {
	env, err := EnvFrom(c)
	if err != nil {
		return err
	}
	cfg := env.Config

	dir, _, err := cfg.Direction()
	if err != nil {
		return err
	}

	out, _ := env.Stdout.(*os.File)
	palette, err := output.PaletteFor(cfg.Output.Color, out)
	if err != nil {
		return err
	}

	tablePath := cfg.Table.Path
	if c.Args().Present() {
		tablePath = c.Args().First()
	}

	ctx, stop := env.Shutdown.NotifyContext(c.Context)
	defer stop()
	ctx = logger.WithLogger(ctx, env.Logger)

	session := repl.New(repl.Options{
		TablePath:       tablePath,
		DefaultTable:    cfg.DefaultTablePath(),
		Direction:       dir,
		In:              env.Stdin,
		Out:             env.Stdout,
		Palette:         palette,
		Opener:          env.Opener,
		RegistryOptions: env.RegistryOptions(),
		Metrics:         env.Metrics,
		Logger:          env.Logger,
		Watch:           cfg.Table.Watch,
	})
	logger.L(ctx).Debug("starting interactive session", "session_id", session.ID())
	return session.Run(ctx)
}
