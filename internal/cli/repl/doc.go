// Package repl provides the interactive lookup session for otpowner.
//
// A Session resolves and loads the token table once, optionally asks for
// the lookup direction, then reads one query per line until the user
// enters an exit word, input ends, or the process is interrupted:
//
//   - session.go: Session, Options and the read-eval-print loop
//   - messages.go: prompts and user-facing messages
//   - watch.go: warning when the loaded table changes on disk
//
// Input is read on a separate goroutine so that an interrupt can end a
// blocked read.
package repl
