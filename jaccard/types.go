// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: options, enums and sentinel errors of the Jaccard operator.

package jaccard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

// Sentinel errors for the Jaccard operator.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("jaccard: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("jaccard: invalid option supplied")

	// ErrDegenerateDenominator is returned when a pair's denominator is zero
	// or negative and the OnDegenerate policy is Fail.
	ErrDegenerateDenominator = errors.New("jaccard: degenerate denominator")

	// ErrInconsistentDegree is returned when the two-path records of one
	// vertex pair disagree on an endpoint degree.
	ErrInconsistentDegree = errors.New("jaccard: inconsistent endpoint degree")
)

const (
	// DefaultEdgeLabel labels synthesized similarity edges.
	DefaultEdgeLabel = "jaccardSimilarity"

	// DefaultGroupSize caps the members of one expansion group.
	DefaultGroupSize = 64

	// ValueProperty is the float64 property holding the similarity ratio.
	ValueProperty = "value"
)

// NeighborhoodType selects which adjacency direction defines a neighbor.
type NeighborhoodType int

const (
	// NeighborhoodOut: the neighbors of v are the targets of v's outgoing edges.
	NeighborhoodOut NeighborhoodType = iota
	// NeighborhoodIn: the neighbors of v are the sources of v's incoming edges.
	NeighborhoodIn
)

func (n NeighborhoodType) String() string {
	switch n {
	case NeighborhoodOut:
		return "OUT"
	case NeighborhoodIn:
		return "IN"
	default:
		return fmt.Sprintf("NeighborhoodType(%d)", int(n))
	}
}

// ParseNeighborhood accepts "IN" or "OUT" (case-insensitive).
func ParseNeighborhood(s string) (NeighborhoodType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "OUT":
		return NeighborhoodOut, nil
	case "IN":
		return NeighborhoodIn, nil
	}
	return 0, fmt.Errorf("%w: unknown neighborhood %q", ErrOptionViolation, s)
}

// Denominator selects the normalization of the shared-neighbor count.
type Denominator int

const (
	// DenominatorUnion divides by |N(A) ∪ N(B)| = deg(A) + deg(B) - shared.
	DenominatorUnion Denominator = iota
	// DenominatorMax divides by max(deg(A), deg(B)).
	DenominatorMax
)

func (d Denominator) String() string {
	switch d {
	case DenominatorUnion:
		return "UNION"
	case DenominatorMax:
		return "MAX"
	default:
		return fmt.Sprintf("Denominator(%d)", int(d))
	}
}

// ParseDenominator accepts "UNION" or "MAX" (case-insensitive).
func ParseDenominator(s string) (Denominator, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "UNION":
		return DenominatorUnion, nil
	case "MAX":
		return DenominatorMax, nil
	}
	return 0, fmt.Errorf("%w: unknown denominator %q", ErrOptionViolation, s)
}

// DegeneratePolicy decides what happens to a pair whose denominator is ≤ 0.
type DegeneratePolicy int

const (
	// DegenerateFail aborts the whole computation with ErrDegenerateDenominator.
	DegenerateFail DegeneratePolicy = iota
	// DegenerateSkip drops the pair and logs a warning.
	DegenerateSkip
)

func (p DegeneratePolicy) String() string {
	switch p {
	case DegenerateFail:
		return "fail"
	case DegenerateSkip:
		return "skip"
	default:
		return fmt.Sprintf("DegeneratePolicy(%d)", int(p))
	}
}

// ParseDegeneratePolicy accepts "fail" or "skip" (case-insensitive).
func ParseDegeneratePolicy(s string) (DegeneratePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fail":
		return DegenerateFail, nil
	case "skip":
		return DegenerateSkip, nil
	}
	return 0, fmt.Errorf("%w: unknown degenerate policy %q", ErrOptionViolation, s)
}

// Option configures the operator via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the operator configuration.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// EdgeLabel labels synthesized similarity edges.
	EdgeLabel string

	// Neighborhood selects IN or OUT adjacency.
	Neighborhood NeighborhoodType

	// Denominator selects UNION or MAX normalization.
	Denominator Denominator

	// GroupSize caps the members of one expansion group (≥ 1).
	GroupSize int

	// Parallelism is the partition count of the dataflow environment (≥ 1).
	Parallelism int

	// OnDegenerate handles pairs with a non-positive denominator.
	OnDegenerate DegeneratePolicy

	// Logger receives stage diagnostics.
	Logger logrus.FieldLogger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - EdgeLabel "jaccardSimilarity", OUT neighborhood, UNION denominator
//   - GroupSize 64, Parallelism runtime.GOMAXPROCS(0)
//   - OnDegenerate Fail
//   - a logger that discards everything.
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		EdgeLabel:    DefaultEdgeLabel,
		Neighborhood: NeighborhoodOut,
		Denominator:  DenominatorUnion,
		GroupSize:    DefaultGroupSize,
		Parallelism:  runtime.GOMAXPROCS(0),
		OnDegenerate: DegenerateFail,
		Logger:       discardLogger(),
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithEdgeLabel sets the label of synthesized edges; the empty label is invalid.
func WithEdgeLabel(label string) Option {
	return func(o *Options) {
		if label == "" {
			o.err = fmt.Errorf("%w: edge label cannot be empty", ErrOptionViolation)
			return
		}
		o.EdgeLabel = label
	}
}

// WithNeighborhood selects IN or OUT adjacency.
func WithNeighborhood(n NeighborhoodType) Option {
	return func(o *Options) {
		if n != NeighborhoodOut && n != NeighborhoodIn {
			o.err = fmt.Errorf("%w: unknown neighborhood %d", ErrOptionViolation, int(n))
			return
		}
		o.Neighborhood = n
	}
}

// WithDenominator selects UNION or MAX normalization.
func WithDenominator(d Denominator) Option {
	return func(o *Options) {
		if d != DenominatorUnion && d != DenominatorMax {
			o.err = fmt.Errorf("%w: unknown denominator %d", ErrOptionViolation, int(d))
			return
		}
		o.Denominator = d
	}
}

// WithGroupSize sets the expansion group cap.
//
//	n ≥ 1: cap groups at n members
//	n < 1: invalid option → ErrOptionViolation
func WithGroupSize(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: group size must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.GroupSize = n
	}
}

// WithParallelism sets the number of dataflow partitions (n ≥ 1).
func WithParallelism(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: parallelism must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Parallelism = n
	}
}

// WithOnDegenerate sets the policy for pairs with a non-positive denominator.
func WithOnDegenerate(p DegeneratePolicy) Option {
	return func(o *Options) {
		if p != DegenerateFail && p != DegenerateSkip {
			o.err = fmt.Errorf("%w: unknown degenerate policy %d", ErrOptionViolation, int(p))
			return
		}
		o.OnDegenerate = p
	}
}

// WithLogger injects a logger; nil is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
