// Package service provides the lookup service for otpowner.
package service

import (
	"context"

	"github.com/yndnr/otpowner/internal/core/domain"
	"github.com/yndnr/otpowner/internal/telemetry/logger"
	"github.com/yndnr/otpowner/internal/telemetry/metric"
	"github.com/yndnr/otpowner/pkg/modhex"
)

// TokenTable defines the queries the lookup service needs from a registry.
type TokenTable interface {
	// FindUserByToken returns the owner of the first row holding encoded.
	FindUserByToken(encoded string) (string, bool)

	// FindTokensByUser returns every token registered to owner, in file order.
	FindTokensByUser(owner string) []string
}

// Recorder receives one observation per query.
type Recorder interface {
	ObserveLookup(direction, result string)
}

// ForwardResult is the outcome of a raw OTP lookup.
type ForwardResult struct {
	Raw     string `json:"raw" yaml:"raw"`
	Encoded string `json:"encoded" yaml:"encoded"`
	Owner   string `json:"owner,omitempty" yaml:"owner,omitempty"`
	Found   bool   `json:"found" yaml:"found"`
}

// ReverseResult is the outcome of an owner lookup.
type ReverseResult struct {
	Owner  string   `json:"owner" yaml:"owner"`
	Tokens []string `json:"tokens" yaml:"tokens"`
	Found  bool     `json:"found" yaml:"found"`
}

// Lookup answers forward and reverse queries against one table snapshot.
type Lookup struct {
	table    TokenTable
	recorder Recorder
	log      logger.Logger
}

// LookupOption configures a Lookup.
type LookupOption func(*Lookup)

// WithRecorder sets the metrics recorder.
func WithRecorder(r Recorder) LookupOption {
	return func(l *Lookup) {
		if r != nil {
			l.recorder = r
		}
	}
}

// WithLogger sets the logger.
func WithLogger(log logger.Logger) LookupOption {
	return func(l *Lookup) {
		if log != nil {
			l.log = log
		}
	}
}

// NewLookup creates a lookup service over table.
func NewLookup(table TokenTable, opts ...LookupOption) *Lookup {
	l := &Lookup{
		table:    table,
		recorder: nopRecorder{},
		log:      logger.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Forward resolves the owner of a raw OTP line.
//
// Only the leading ubnu+8 digits of line are used. A line of any other
// shape returns domain.ErrInvalidOTPShape. A well-formed token that is not
// registered is not an error: the result has Found == false.
func (l *Lookup) Forward(ctx context.Context, line string) (ForwardResult, error) {
	log := l.queryLogger(ctx, domain.Forward)

	raw, err := modhex.ParseRaw(line)
	if err != nil {
		l.recorder.ObserveLookup(string(domain.Forward), metric.ResultInvalid)
		log.Debug("rejected input", "length", len(line))
		return ForwardResult{}, domain.ErrInvalidOTPShape.WithCause(err)
	}

	encoded, err := modhex.Encode(raw)
	if err != nil {
		l.recorder.ObserveLookup(string(domain.Forward), metric.ResultInvalid)
		return ForwardResult{}, domain.ErrInvalidOTPShape.WithCause(err)
	}

	owner, found := l.table.FindUserByToken(encoded)
	res := ForwardResult{Raw: raw, Encoded: encoded, Owner: owner, Found: found}

	l.recorder.ObserveLookup(string(domain.Forward), resultLabel(found))
	log.Debug("forward lookup", "encoded", encoded, "found", found)
	return res, nil
}

// Reverse lists the tokens registered to owner.
func (l *Lookup) Reverse(ctx context.Context, owner string) ReverseResult {
	log := l.queryLogger(ctx, domain.Reverse)

	tokens := l.table.FindTokensByUser(owner)
	if tokens == nil {
		tokens = []string{}
	}
	res := ReverseResult{Owner: owner, Tokens: tokens, Found: len(tokens) > 0}

	l.recorder.ObserveLookup(string(domain.Reverse), resultLabel(res.Found))
	log.Debug("reverse lookup", "tokens", len(tokens))
	return res
}

func (l *Lookup) queryLogger(ctx context.Context, dir domain.Direction) logger.Logger {
	log := l.log.With("query_id", domain.NewQueryID(), "direction", string(dir))
	if id := logger.SessionIDFromContext(ctx); id != "" {
		log = log.With("session_id", id)
	}
	return log
}

func resultLabel(found bool) string {
	if found {
		return metric.ResultHit
	}
	return metric.ResultMiss
}

type nopRecorder struct{}

func (nopRecorder) ObserveLookup(string, string) {}
