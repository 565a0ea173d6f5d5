package command

import (
	"github.com/urfave/cli/v2"

	"github.com/yndnr/otpowner/internal/cli/output"
	"github.com/yndnr/otpowner/internal/infra/buildinfo"
)

// VersionCommand returns the build information command.
func VersionCommand() *cli.Command {
	return &cli.Command{
		Name:   "version",
		Usage:  "Show build information",
		Action: versionAction,
	}
}

type versionInfo buildinfo.Info

func (v versionInfo) Table() *output.Table {
	t := output.NewTable("FIELD", "VALUE")
	t.AddRow("version", v.Version)
	t.AddRow("commit", v.Commit)
	t.AddRow("build_time", v.BuildTime)
	t.AddRow("go_version", v.GoVersion)
	t.AddRow("platform", v.Platform)
	return t
}

func versionAction(c *cli.Context) error {
	env, err := EnvFrom(c)
	if err != nil {
		return err
	}
	return env.Formatter().Format(env.Stdout, versionInfo(buildinfo.Get()))
}
