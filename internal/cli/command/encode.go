package command

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/otpowner/internal/cli/output"
	"github.com/yndnr/otpowner/internal/core/domain"
	"github.com/yndnr/otpowner/pkg/modhex"
)

// EncodeCommand returns the table-free token conversion command.
func EncodeCommand() *cli.Command {
	return &cli.Command{
		Name:      "encode",
		Aliases:   []string{"e"},
		Usage:     "Convert raw OTPs to encoded tokens",
		ArgsUsage: "OTP...",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "reverse",
				Aliases: []string{"r"},
				Usage:   "Decode encoded tokens back to raw form",
			},
		},
		Action: encodeAction,
	}
}

type conversion struct {
	Input  string `json:"input" yaml:"input"`
	Output string `json:"output" yaml:"output"`
}

type conversions []conversion

func (cs conversions) Table() *output.Table {
	t := output.NewTable("INPUT", "OUTPUT")
	for _, c := range cs {
		t.AddRow(c.Input, c.Output)
	}
	return t
}

func encodeAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return domain.ErrInvalidArgument.WithDetails("at least one token is required")
	}
	env, err := EnvFrom(c)
	if err != nil {
		return err
	}

	convert := encodeOne
	if c.Bool("reverse") {
		convert = modhex.Decode
	}

	results := make(conversions, 0, c.NArg())
	for _, arg := range c.Args().Slice() {
		arg = strings.TrimSpace(arg)
		out, err := convert(arg)
		if err != nil {
			return fmt.Errorf("%s: %w", arg, domain.ErrInvalidOTPShape.WithCause(err))
		}
		results = append(results, conversion{Input: arg, Output: out})
	}

	return env.Formatter().Format(env.Stdout, results)
}

func encodeOne(line string) (string, error) {
	raw, err := modhex.ParseRaw(line)
	if err != nil {
		return "", err
	}
	return modhex.Encode(raw)
}
