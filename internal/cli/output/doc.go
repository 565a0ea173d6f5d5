// Package output provides output formatting for otpowner.
//
// This package handles all CLI output formatting:
//
//   - formatter.go: Formatter interface and format parsing
//   - table.go: aligned table rendering
//   - json.go, yaml.go: machine-readable output
//   - palette.go: optional coloring of interactive messages
//
// Colors are an injected capability. The zero value everywhere is Plain,
// which writes text unchanged.
package output
