// Package registry holds the in-memory snapshot of the token table.
package registry

import (
	"context"
	"encoding/binary"
	"encoding/csv"
	"errors"
	"io"
	"time"

	"github.com/spaolacci/murmur3"

	"github.com/yndnr/otpowner/internal/core/domain"
	"github.com/yndnr/otpowner/internal/storage/source"
	"github.com/yndnr/otpowner/internal/telemetry/logger"
)

// DefaultDelimiter is the field separator of the table.
const DefaultDelimiter = ','

// Registry is an immutable snapshot of the token table.
type Registry struct {
	rows        []domain.Row
	skipped     int
	location    string
	fingerprint uint64
	loadedAt    time.Time
}

type loadOptions struct {
	delimiter rune
	location  string
	log       logger.Logger
}

// Option configures Load.
type Option func(*loadOptions)

// WithDelimiter sets the field separator.
func WithDelimiter(d rune) Option {
	return func(o *loadOptions) {
		o.delimiter = d
	}
}

// WithLocation records where the table came from.
func WithLocation(location string) Option {
	return func(o *loadOptions) {
		o.location = location
	}
}

// WithLogger sets the logger used for skipped-row diagnostics.
func WithLogger(l logger.Logger) Option {
	return func(o *loadOptions) {
		o.log = l
	}
}

// Load reads the whole table from r.
//
// The first record is the header and is discarded. Records with fewer than
// domain.MinRowFields fields are skipped. Any read or parse failure is
// reported as domain.ErrSourceUnavailable.
func Load(r io.Reader, opts ...Option) (*Registry, error) {
	o := loadOptions{
		delimiter: DefaultDelimiter,
		log:       logger.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	cr := csv.NewReader(r)
	cr.Comma = o.delimiter
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	reg := &Registry{location: o.location}

	header := true
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, domain.ErrSourceUnavailable.
				WithDetails(o.location).
				WithCause(err)
		}
		if header {
			header = false
			continue
		}

		line, _ := cr.FieldPos(0)
		row, err := domain.NewRow(record, line)
		if err != nil {
			reg.skipped++
			o.log.Debug("skipping table row", "location", o.location, "line", line, "fields", len(record))
			continue
		}
		reg.rows = append(reg.rows, row)
	}

	reg.fingerprint = fingerprint(reg.rows)
	reg.loadedAt = time.Now()
	return reg, nil
}

// LoadSource opens location with opener, loads it and closes it.
func LoadSource(ctx context.Context, opener source.Opener, location string, opts ...Option) (*Registry, error) {
	rc, err := opener.Open(ctx, location)
	if err != nil {
		return nil, domain.ErrSourceUnavailable.WithDetails(location).WithCause(err)
	}
	defer rc.Close()

	opts = append([]Option{WithLocation(location)}, opts...)
	return Load(rc, opts...)
}

// FindUserByToken returns the owner of the first row whose token equals
// encoded, ignoring case.
func (r *Registry) FindUserByToken(encoded string) (string, bool) {
	for _, row := range r.rows {
		if row.MatchesToken(encoded) {
			return row.Owner(), true
		}
	}
	return "", false
}

// FindTokensByUser returns the token of every row whose owner equals owner,
// ignoring case, in file order.
func (r *Registry) FindTokensByUser(owner string) []string {
	var tokens []string
	for _, row := range r.rows {
		if row.MatchesOwner(owner) {
			tokens = append(tokens, row.Token())
		}
	}
	return tokens
}

// Len returns the number of usable rows.
func (r *Registry) Len() int {
	return len(r.rows)
}

// Skipped returns the number of rows dropped for having too few fields.
func (r *Registry) Skipped() int {
	return r.skipped
}

// Rows returns a copy of the usable rows in file order.
func (r *Registry) Rows() []domain.Row {
	out := make([]domain.Row, len(r.rows))
	for i, row := range r.rows {
		out[i] = row.Clone()
	}
	return out
}

// Location returns the location the table was loaded from, if known.
func (r *Registry) Location() string {
	return r.location
}

// LoadedAt returns the load time.
func (r *Registry) LoadedAt() time.Time {
	return r.loadedAt
}

// Fingerprint returns a MurmurHash3 digest of the usable rows' content.
// Two loads of an unchanged source have equal fingerprints.
func (r *Registry) Fingerprint() uint64 {
	return r.fingerprint
}

// fingerprint hashes field contents with length prefixes so that
// ["ab","c"] and ["a","bc"] differ.
func fingerprint(rows []domain.Row) uint64 {
	h := murmur3.New64()
	var n [4]byte
	for _, row := range rows {
		binary.BigEndian.PutUint32(n[:], uint32(len(row.Fields)))
		h.Write(n[:])
		for _, f := range row.Fields {
			binary.BigEndian.PutUint32(n[:], uint32(len(f)))
			h.Write(n[:])
			h.Write([]byte(f))
		}
	}
	return h.Sum64()
}
