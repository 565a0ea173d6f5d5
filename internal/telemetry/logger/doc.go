// Package logger provides structured logging for otpowner.
//
// This package wraps log/slog:
//
//   - logger.go: Logger interface, configuration and the default logger
//   - context.go: session and query IDs carried through context
//   - redact.go: masking of credentials before they reach the output
//
// Logs go to stderr so they never mix with the interactive transcript on
// stdout. The CLI defaults to the text format at warn level.
package logger
