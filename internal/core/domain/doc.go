// Package domain defines the core domain types for otpowner.
//
// Domain types are plain values without IO dependencies:
//
//   - Row: one record of the token registry table
//   - Direction: forward (token to owner) or reverse (owner to tokens)
//   - Errors: coded domain errors shared by the storage, service and CLI layers
//   - IDs: ULID-based session and query identifiers used in logs
package domain
