package domain

import (
	"fmt"
	"strings"

	"github.com/yndnr/otpowner/pkg/modhex"
)

const (
	// TokenField is the 0-based column holding the encoded token.
	TokenField = 3

	// OwnerField is the 0-based column holding the owner identifier.
	OwnerField = 4

	// MinRowFields is the minimum number of fields of a usable row.
	MinRowFields = OwnerField + 1
)

// Row is one data record of the registry table.
//
// Columns other than TokenField and OwnerField are opaque and kept as read.
type Row struct {
	Fields []string
	Line   int // 1-based line of the record in the source
}

// NewRow validates the field count and returns a Row.
func NewRow(fields []string, line int) (Row, error) {
	if len(fields) < MinRowFields {
		return Row{}, ErrMalformedRow.WithDetails(
			fmt.Sprintf("line %d has %d fields, need %d", line, len(fields), MinRowFields))
	}
	return Row{Fields: fields, Line: line}, nil
}

// Token returns the encoded token column with surrounding blanks removed.
func (r Row) Token() string {
	return strings.TrimSpace(r.Fields[TokenField])
}

// Owner returns the owner column as stored.
func (r Row) Owner() string {
	return r.Fields[OwnerField]
}

// MatchesToken reports whether the row's token equals encoded, ignoring case.
// Both sides are compared in their prefixed form, so a token stored as the
// bare eight symbols matches the full encoded query.
func (r Row) MatchesToken(encoded string) bool {
	return modhex.Equal(modhex.Canonical(r.Token()), modhex.Canonical(encoded))
}

// MatchesOwner reports whether the row's owner equals owner, ignoring case
// and surrounding blanks.
func (r Row) MatchesOwner(owner string) bool {
	return strings.EqualFold(strings.TrimSpace(r.Owner()), strings.TrimSpace(owner))
}

// Clone returns a deep copy of the row.
func (r Row) Clone() Row {
	fields := make([]string, len(r.Fields))
	copy(fields, r.Fields)
	return Row{Fields: fields, Line: r.Line}
}

// Direction selects the lookup direction of a session.
type Direction string

const (
	// Forward looks up the owner of a token.
	Forward Direction = "forward"

	// Reverse lists the tokens of an owner.
	Reverse Direction = "reverse"
)

// ParseDirection accepts "forward"/"1" and "reverse"/"2", case-insensitively.
// The empty string yields Forward.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "1", "forward", "fwd", "token":
		return Forward, nil
	case "2", "reverse", "rev", "owner", "user":
		return Reverse, nil
	default:
		return "", ErrInvalidArgument.WithDetails(fmt.Sprintf("unknown lookup mode %q", s))
	}
}
