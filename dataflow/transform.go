// SPDX-License-Identifier: MIT

package dataflow

import "context"

// Map applies fn to every record.
func Map[T, U any](name string, in *Dataset[T], fn func(T) (U, error)) (*Dataset[U], error) {
	if fn == nil {
		return nil, ErrNilFunction
	}
	return FlatMap(name, in, func(rec T, emit func(U)) error {
		u, err := fn(rec)
		if err != nil {
			return err
		}
		emit(u)
		return nil
	})
}

// FlatMap applies fn to every record; fn may emit any number of outputs.
func FlatMap[T, U any](name string, in *Dataset[T], fn func(T, func(U)) error) (*Dataset[U], error) {
	if fn == nil {
		return nil, ErrNilFunction
	}
	out := make([][]U, len(in.parts))
	err := in.env.run(name, len(in.parts), func(ctx context.Context, p int) error {
		var buf []U
		emit := func(u U) { buf = append(buf, u) }
		for _, rec := range in.parts[p] {
			if err := cancelled(ctx); err != nil {
				return err
			}
			if err := fn(rec, emit); err != nil {
				return err
			}
		}
		out[p] = buf
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &Dataset[U]{env: in.env, parts: out}, nil
}

// Filter keeps the records for which pred returns true.
func Filter[T any](name string, in *Dataset[T], pred func(T) bool) (*Dataset[T], error) {
	if pred == nil {
		return nil, ErrNilFunction
	}
	return FlatMap(name, in, func(rec T, emit func(T)) error {
		if pred(rec) {
			emit(rec)
		}
		return nil
	})
}
