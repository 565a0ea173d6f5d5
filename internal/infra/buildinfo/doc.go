// Package buildinfo provides build information for otpowner.
//
// Values can be injected at build time via ldflags:
//
//	go build -ldflags "-X github.com/yndnr/otpowner/internal/infra/buildinfo.Version=v1.0.0"
//
// Fields left unset fall back to the module build information embedded by
// the Go toolchain (VCS revision and time, Go version).
package buildinfo
