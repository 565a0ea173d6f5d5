package domain

import (
	"crypto/rand"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

const (
	// SessionIDPrefix is the prefix of interactive session IDs.
	SessionIDPrefix = "sess-"

	// QueryIDPrefix is the prefix of query IDs.
	QueryIDPrefix = "qry-"
)

// ulid.Monotonic readers are not safe for concurrent use.
var (
	idMu    sync.Mutex
	entropy = ulid.Monotonic(rand.Reader, 0)
)

// NewSessionID returns a new session ID: sess-{ulid_lowercase}.
func NewSessionID() string {
	return SessionIDPrefix + newULID()
}

// NewQueryID returns a new query ID: qry-{ulid_lowercase}.
func NewQueryID() string {
	return QueryIDPrefix + newULID()
}

func newULID() string {
	idMu.Lock()
	defer idMu.Unlock()
	return strings.ToLower(ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String())
}
