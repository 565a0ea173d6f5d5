package command

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/otpowner/internal/cli/output"
	"github.com/yndnr/otpowner/internal/core/domain"
	"github.com/yndnr/otpowner/internal/core/service"
)

// LookupCommand returns the forward one-shot query.
func LookupCommand() *cli.Command {
	return &cli.Command{
		Name:      "lookup",
		Aliases:   []string{"l"},
		Usage:     "Find the owners of raw OTPs",
		ArgsUsage: "OTP...",
		Action:    lookupAction,
	}
}

// OwnerCommand returns the reverse one-shot query.
func OwnerCommand() *cli.Command {
	return &cli.Command{
		Name:      "owner",
		Aliases:   []string{"o"},
		Usage:     "List the tokens registered to an owner",
		ArgsUsage: "USER",
		Action:    ownerAction,
	}
}

type forwardResults []service.ForwardResult

func (r forwardResults) Table() *output.Table {
	t := output.NewTable("OTP", "TOKEN", "OWNER")
	for _, res := range r {
		owner := res.Owner
		if !res.Found {
			owner = "(no match)"
		}
		t.AddRow(res.Raw, res.Encoded, owner)
	}
	return t
}

type reverseResult service.ReverseResult

func (r reverseResult) Table() *output.Table {
	t := output.NewTable("OWNER", "TOKEN")
	for _, token := range r.Tokens {
		t.AddRow(r.Owner, token)
	}
	return t
}

// openLookup loads the configured table. One-shot commands never prompt,
// so a missing table is an error.
func openLookup(c *cli.Context, env *Env) (*service.Lookup, error) {
	location := env.Config.Table.Path
	if location == "" {
		location = env.Config.DefaultTablePath()
	}

	reg, err := service.LoadTable(c.Context, env.Opener, location, env.Metrics, env.RegistryOptions()...)
	if err != nil {
		return nil, err
	}
	return service.NewLookup(reg,
		service.WithRecorder(env.Metrics),
		service.WithLogger(env.Logger),
	), nil
}

func lookupAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return domain.ErrInvalidArgument.WithDetails("at least one OTP is required")
	}
	env, err := EnvFrom(c)
	if err != nil {
		return err
	}

	lookup, err := openLookup(c, env)
	if err != nil {
		return err
	}

	results := make(forwardResults, 0, c.NArg())
	found := false
	for _, arg := range c.Args().Slice() {
		res, err := lookup.Forward(c.Context, strings.TrimSpace(arg))
		if err != nil {
			return fmt.Errorf("%s: %w", arg, err)
		}
		found = found || res.Found
		results = append(results, res)
	}

	if err := env.Formatter().Format(env.Stdout, results); err != nil {
		return err
	}
	if !found {
		return domain.ErrNoMatch
	}
	return nil
}

func ownerAction(c *cli.Context) error {
	owner := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if owner == "" {
		return domain.ErrInvalidArgument.WithDetails("an owner is required")
	}
	env, err := EnvFrom(c)
	if err != nil {
		return err
	}

	lookup, err := openLookup(c, env)
	if err != nil {
		return err
	}

	res := lookup.Reverse(c.Context, owner)
	if err := env.Formatter().Format(env.Stdout, reverseResult(res)); err != nil {
		return err
	}
	if !res.Found {
		return domain.ErrNoMatch.WithDetails(owner)
	}
	return nil
}
