// Package command provides CLI command definitions for otpowner.
//
// It uses urfave/cli/v2 for command parsing. Without a subcommand the
// application starts an interactive lookup session; the subcommands run a
// single query and exit:
//
//   - lookup: owners of raw OTPs
//   - owner: tokens registered to an owner
//   - encode: raw/encoded token conversion without a table
//   - version: build information
//
// Global flags must precede the subcommand name.
package command
