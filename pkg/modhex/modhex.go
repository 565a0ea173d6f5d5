// Package modhex converts raw hardware OTP identifiers into their canonical encoded form.
package modhex

import (
	"errors"
	"strings"
)

const (
	// Prefix is the literal identifier prefix kept by the conversion.
	Prefix = "ubnu"

	// DigitsLength is the number of digits following the prefix.
	DigitsLength = 8

	// TokenLength is the total length of a raw or encoded token.
	TokenLength = len(Prefix) + DigitsLength // ubnu + 8 = 12
)

// ErrInvalidFormat is returned for input that does not have the raw
// (or, for Decode, the encoded) token shape.
var ErrInvalidFormat = errors.New("modhex: token must be 'ubnu' followed by eight digits")

// alphabet maps decimal digit d to alphabet[d]. Keep it a literal.
var alphabet = [10]byte{'c', 'b', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k'}

// IsRaw reports whether s is exactly a raw token: prefix plus 8 ASCII digits.
func IsRaw(s string) bool {
	if len(s) != TokenLength || !strings.HasPrefix(s, Prefix) {
		return false
	}
	for i := len(Prefix); i < TokenLength; i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// IsEncoded reports whether s is an encoded token. The symbols are
// compared case-insensitively; the prefix must match exactly.
func IsEncoded(s string) bool {
	if len(s) != TokenLength || !strings.HasPrefix(s, Prefix) {
		return false
	}
	for i := len(Prefix); i < TokenLength; i++ {
		if symbolIndex(s[i]) < 0 {
			return false
		}
	}
	return true
}

// ParseRaw extracts a raw token from a line of device input.
//
// The first 12 characters must have the raw shape; anything after them
// (the rest of a full OTP) is ignored. Shorter lines are rejected.
func ParseRaw(line string) (string, error) {
	if len(line) < TokenLength {
		return "", ErrInvalidFormat
	}
	raw := line[:TokenLength]
	if !IsRaw(raw) {
		return "", ErrInvalidFormat
	}
	return raw, nil
}

// Encode converts a raw token into its encoded form.
//
// The prefix is kept and each digit is substituted through the fixed
// table, in order. Input that is not exactly a raw token is rejected with
// ErrInvalidFormat.
func Encode(raw string) (string, error) {
	if !IsRaw(raw) {
		return "", ErrInvalidFormat
	}

	buf := make([]byte, TokenLength)
	copy(buf, Prefix)
	for i := len(Prefix); i < TokenLength; i++ {
		buf[i] = alphabet[raw[i]-'0']
	}
	return string(buf), nil
}

// Decode is the inverse of Encode. Symbols are accepted in either case.
func Decode(encoded string) (string, error) {
	if !IsEncoded(encoded) {
		return "", ErrInvalidFormat
	}

	buf := make([]byte, TokenLength)
	copy(buf, Prefix)
	for i := len(Prefix); i < TokenLength; i++ {
		buf[i] = byte('0' + symbolIndex(encoded[i]))
	}
	return string(buf), nil
}

// Equal compares two encoded tokens case-insensitively.
func Equal(a, b string) bool {
	return strings.EqualFold(a, b)
}

// Canonical returns the full encoded form of a stored token. A bare
// eight-symbol value gets the Prefix; anything else is returned trimmed.
func Canonical(stored string) string {
	s := strings.TrimSpace(stored)
	if len(s) != DigitsLength {
		return s
	}
	for i := 0; i < len(s); i++ {
		if symbolIndex(s[i]) < 0 {
			return s
		}
	}
	return Prefix + s
}

// symbolIndex returns the digit for an alphabet symbol, or -1.
func symbolIndex(c byte) int {
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	for d, s := range alphabet {
		if s == c {
			return d
		}
	}
	return -1
}
