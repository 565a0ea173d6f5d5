package command

import (
	"github.com/yndnr/otpowner/internal/core/domain"
)

// Process exit codes.
const (
	ExitOK          = 0
	ExitNoMatch     = 1
	ExitUsage       = 2
	ExitUnavailable = 3
)

// ExitCode maps a command error to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch domain.GetErrorCode(err) {
	case domain.ErrNoMatch.Code:
		return ExitNoMatch
	case domain.ErrInvalidArgument.Code, domain.ErrInvalidOTPShape.Code:
		return ExitUsage
	case domain.ErrSourceUnavailable.Code:
		return ExitUnavailable
	}
	return 1
}
