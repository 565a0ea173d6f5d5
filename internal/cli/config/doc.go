// Package config provides CLI configuration for otpowner.
//
// This package defines the configuration tree and its loading:
//
//   - spec.go: Config struct (~/.otpowner/config.yaml)
//   - loader.go: layering of defaults, file, dotenv, environment and flags
//
// Environment variables use the OTPOWNER_ prefix with underscores for
// nesting: OTPOWNER_TABLE_PATH sets table.path.
package config
