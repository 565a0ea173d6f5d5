// Package logger provides structured logging for otpowner.
package logger

import (
	"log/slog"
	"strings"
)

// AWS access key ID prefixes (long-term and temporary credentials).
var sensitiveValuePrefixes = []string{
	"AKIA",
	"ASIA",
}

// Key name fragments whose values are always redacted.
var sensitiveKeyPatterns = []string{
	"password",
	"secret",
	"credential",
	"access_key",
	"accesskey",
	"session_token",
}

const redactedValue = "***REDACTED***"

// redactSensitive masks credential values in a log attribute.
// Encoded and raw OTP identifiers are not secrets and pass through.
func redactSensitive(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindString {
		strVal := a.Value.String()
		if strVal != "" && IsSensitiveKey(a.Key) {
			return slog.String(a.Key, redactedValue)
		}
		if IsSensitiveValue(strVal) {
			return slog.String(a.Key, maskValue(strVal))
		}
	}

	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		newAttrs := make([]slog.Attr, len(attrs))
		for i, attr := range attrs {
			newAttrs[i] = redactSensitive(attr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(newAttrs...)}
	}

	return a
}

// maskValue keeps the first and last 4 characters.
func maskValue(value string) string {
	if len(value) <= 12 {
		return value[:min(4, len(value))] + "***"
	}
	return value[:4] + "..." + value[len(value)-4:]
}

// RedactString masks value if it looks like a credential.
func RedactString(value string) string {
	if IsSensitiveValue(value) {
		return maskValue(value)
	}
	return value
}

// IsSensitiveKey checks if a key name suggests sensitive content.
func IsSensitiveKey(key string) bool {
	keyLower := strings.ToLower(key)
	for _, pattern := range sensitiveKeyPatterns {
		if strings.Contains(keyLower, pattern) {
			return true
		}
	}
	return false
}

// IsSensitiveValue checks if a value looks like an AWS access key ID.
func IsSensitiveValue(value string) bool {
	if len(value) != 20 {
		return false
	}
	for _, prefix := range sensitiveValuePrefixes {
		if strings.HasPrefix(value, prefix) {
			return true
		}
	}
	return false
}
