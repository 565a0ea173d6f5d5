// Package service provides the lookup service for otpowner.
//
// The service composes the token codec and the loaded registry and
// classifies every query as a hit, a miss or an invalid input. It owns no
// state beyond the registry snapshot and is safe for concurrent use.
//
// Storage and metrics dependencies are expressed as small interfaces so
// tests can substitute them.
package service
