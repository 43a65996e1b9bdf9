// Package hom provides tunable options and error definitions for
// homomorphism counting over graph.Graph.
package hom

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Sentinel errors for counting.
var (
	// ErrGraphNil is returned if a nil graph or decomposition pointer is passed.
	ErrGraphNil = errors.New("hom: graph is nil")

	// ErrInvalidAssignment indicates a candidate of the wrong length or with an
	// image outside the target's vertex range.
	ErrInvalidAssignment = errors.New("hom: invalid assignment")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("hom: invalid option supplied")

	// ErrSpaceTooLarge indicates that m^n, or a count, does not fit in uint64.
	ErrSpaceTooLarge = errors.New("hom: count space exceeds uint64")

	// ErrTableTooLarge indicates a dynamic-programming table above MaxTableEntries.
	ErrTableTooLarge = errors.New("hom: dynamic-programming table too large")

	// ErrDecompositionMismatch indicates a decomposition that does not
	// decompose the pattern graph.
	ErrDecompositionMismatch = errors.New("hom: decomposition does not match graph")

	// ErrUnknownMethod is returned for an unrecognised counting method.
	ErrUnknownMethod = errors.New("hom: unknown counting method")
)

const (
	defaultCheckInterval   = 1 << 16
	defaultMaxTableEntries = 1 << 26
)

// Option configures counting via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation when a
// counting function is invoked.
type Option func(*Options)

// Options holds parameters and hooks for counting.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Workers is the number of goroutines the brute-force enumerator uses.
	Workers int

	// CheckInterval is the number of candidates between cancellation checks.
	CheckInterval uint64

	// OnCandidate, if set, is called for every candidate in enumeration order
	// with the verdict. The slice is reused; copy it to retain it.
	// Only valid with a single worker.
	OnCandidate func(f []int, ok bool)

	// Logger receives debug and trace records; it discards by default.
	Logger logrus.FieldLogger

	// MaxTableEntries bounds the size of any single dynamic-programming table.
	MaxTableEntries uint64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - one worker, cancellation checked every 65536 candidates
//   - no candidate hook, a discarding logger
//   - tables of at most 2^26 entries.
func DefaultOptions() Options {
	return Options{
		Ctx:             context.Background(),
		Workers:         1,
		CheckInterval:   defaultCheckInterval,
		Logger:          discardLogger(),
		MaxTableEntries: defaultMaxTableEntries,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers partitions the candidate space across k goroutines.
//
//	k ≥ 1: use k workers
//	k < 1: invalid option → ErrOptionViolation
func WithWorkers(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: Workers must be ≥ 1 (%d)", ErrOptionViolation, k)
			return
		}
		o.Workers = k
	}
}

// WithCheckInterval sets how many candidates pass between cancellation checks.
// k == 0 is rejected with ErrOptionViolation.
func WithCheckInterval(k uint64) Option {
	return func(o *Options) {
		if k == 0 {
			o.err = fmt.Errorf("%w: CheckInterval must be ≥ 1", ErrOptionViolation)
			return
		}
		o.CheckInterval = k
	}
}

// WithOnCandidate registers a hook observing every candidate and its verdict.
func WithOnCandidate(fn func(f []int, ok bool)) Option {
	return func(o *Options) {
		o.OnCandidate = fn
	}
}

// WithLogger routes debug and trace records to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxTableEntries bounds any dynamic-programming table to k entries.
// k == 0 is rejected with ErrOptionViolation.
func WithMaxTableEntries(k uint64) Option {
	return func(o *Options) {
		if k == 0 {
			o.err = fmt.Errorf("%w: MaxTableEntries must be ≥ 1", ErrOptionViolation)
			return
		}
		o.MaxTableEntries = k
	}
}

// buildOptions applies opts over the defaults and validates combinations.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return o, o.err
	}
	if o.OnCandidate != nil && o.Workers > 1 {
		return o, fmt.Errorf("%w: OnCandidate requires a single worker (got %d)", ErrOptionViolation, o.Workers)
	}

	return o, nil
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
