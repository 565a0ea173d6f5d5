// Package source opens registry tables by location.
package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// S3Scheme is the URL scheme of object-storage locations.
const S3Scheme = "s3://"

// Opener opens a table location for reading. Callers must close the reader.
type Opener interface {
	Open(ctx context.Context, location string) (io.ReadCloser, error)
}

// OpenerFunc adapts a function to the Opener interface.
type OpenerFunc func(ctx context.Context, location string) (io.ReadCloser, error)

// Open calls f(ctx, location).
func (f OpenerFunc) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	return f(ctx, location)
}

// File opens local files.
type File struct{}

// Open opens the file at location.
func (File) Open(_ context.Context, location string) (io.ReadCloser, error) {
	return os.Open(location)
}

// IsS3 reports whether location uses the s3:// scheme.
func IsS3(location string) bool {
	return strings.HasPrefix(location, S3Scheme)
}

// ParseS3URL splits s3://bucket/key into bucket and key.
func ParseS3URL(location string) (bucket, key string, err error) {
	if !IsS3(location) {
		return "", "", fmt.Errorf("not an s3 location: %q", location)
	}
	rest := strings.TrimPrefix(location, S3Scheme)
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("s3 location must be s3://bucket/key: %q", location)
	}
	return bucket, key, nil
}

// Exists reports whether location can be offered to Open without prompting:
// a regular local file, or a well-formed s3:// URL.
func Exists(location string) bool {
	if location == "" {
		return false
	}
	if IsS3(location) {
		_, _, err := ParseS3URL(location)
		return err == nil
	}
	info, err := os.Stat(location)
	return err == nil && info.Mode().IsRegular()
}

// Mux dispatches locations to the local file opener or to an S3 opener.
type Mux struct {
	file  Opener
	newS3 func(ctx context.Context) (Opener, error)

	mu sync.Mutex
	s3 Opener
}

// MuxOption configures a Mux.
type MuxOption func(*Mux)

// WithFileOpener replaces the local file opener.
func WithFileOpener(o Opener) MuxOption {
	return func(m *Mux) {
		m.file = o
	}
}

// WithS3Factory sets the constructor used for the first s3:// location.
func WithS3Factory(f func(ctx context.Context) (Opener, error)) MuxOption {
	return func(m *Mux) {
		m.newS3 = f
	}
}

// NewMux creates a Mux. Without WithS3Factory, s3:// locations fail.
func NewMux(opts ...MuxOption) *Mux {
	m := &Mux{file: File{}}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Open opens location with the opener matching its scheme.
func (m *Mux) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	if !IsS3(location) {
		return m.file.Open(ctx, location)
	}

	o, err := m.s3Opener(ctx)
	if err != nil {
		return nil, err
	}
	return o.Open(ctx, location)
}

func (m *Mux) s3Opener(ctx context.Context) (Opener, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.s3 != nil {
		return m.s3, nil
	}
	if m.newS3 == nil {
		return nil, fmt.Errorf("s3 locations are not configured")
	}
	o, err := m.newS3(ctx)
	if err != nil {
		return nil, fmt.Errorf("create s3 client: %w", err)
	}
	m.s3 = o
	return o, nil
}
