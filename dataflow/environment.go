// SPDX-License-Identifier: MIT

package dataflow

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Sentinel errors for dataflow execution.
var (
	// ErrNilFunction is returned when an operator receives a nil user function.
	ErrNilFunction = errors.New("dataflow: nil function")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dataflow: invalid option supplied")
)

// Option configures an Environment.
type Option func(*Environment)

// Environment carries execution settings shared by all datasets built from it.
type Environment struct {
	ctx         context.Context
	parallelism int
	err         error
}

// WithContext sets the cancellation context for every operator.
func WithContext(ctx context.Context) Option {
	return func(e *Environment) {
		if ctx != nil {
			e.ctx = ctx
		}
	}
}

// WithParallelism sets the number of partitions (n ≥ 1).
func WithParallelism(n int) Option {
	return func(e *Environment) {
		if n < 1 {
			e.err = fmt.Errorf("%w: parallelism must be positive (%d)", ErrOptionViolation, n)
			return
		}
		e.parallelism = n
	}
}

// NewEnvironment builds an Environment. Defaults: context.Background and
// runtime.GOMAXPROCS(0) partitions.
func NewEnvironment(opts ...Option) (*Environment, error) {
	e := &Environment{ctx: context.Background(), parallelism: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(e)
	}
	if e.err != nil {
		return nil, e.err
	}
	return e, nil
}

// Parallelism returns the partition count.
func (e *Environment) Parallelism() int { return e.parallelism }

// Context returns the cancellation context.
func (e *Environment) Context() context.Context { return e.ctx }

// run executes fn once per partition index concurrently.
func (e *Environment) run(name string, n int, fn func(ctx context.Context, p int) error) error {
	g, ctx := errgroup.WithContext(e.ctx)
	for p := 0; p < n; p++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return fn(ctx, p)
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("dataflow: %s: %w", name, err)
	}
	return nil
}

// cancelled is the per-record cancellation probe used inside partition loops.
func cancelled(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
