// SPDX-License-Identifier: MIT

// Package grid: functional configuration for grid construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Notes:
//   - Padding needs a default value for T. Go has zero values, so the default
//     fill is the zero value of T; WithFill overrides it for every growth path
//     (AddRow, AddColumn, Set auto-expand, ToSymmetrical).
//   - Conversions carry the resolved Options over to the target grid.
package grid

// DefaultRowCapacity is the initial capacity of a grid's row slice.
const DefaultRowCapacity = 0

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicRowCapacityInvalid = "grid: WithRowCapacity: capacity must be non-negative"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option[T any] func(*Options[T])

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public constructors accept ...Option[T].
type Options[T any] struct {
	fill        T   // padding value; zero value of T by default
	rowCapacity int // >= 0; DefaultRowCapacity
}

// WithFill sets the value used to pad new cells.
//
// Behavior highlights:
//   - Applies to AddRow/AddColumn, Set auto-expansion and ToSymmetrical.
//   - Existing cells are never rewritten.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithFill[T any](v T) Option[T] {
	return func(o *Options[T]) { o.fill = v }
}

// WithRowCapacity preallocates room for n rows.
// Panics when n < 0 (programmer error).
func WithRowCapacity[T any](n int) Option[T] {
	if n < 0 {
		panic(panicRowCapacityInvalid)
	}

	return func(o *Options[T]) { o.rowCapacity = n }
}

// defaultOptions returns the documented defaults.
func defaultOptions[T any]() Options[T] {
	var zero T

	return Options[T]{
		fill:        zero,
		rowCapacity: DefaultRowCapacity,
	}
}

// gatherOptions folds opts over the defaults; nil setters are skipped.
// Complexity: O(len(opts)).
func gatherOptions[T any](opts ...Option[T]) Options[T] {
	o := defaultOptions[T]()
	for _, set := range opts {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// Fill reports the padding value in effect.
func (o Options[T]) Fill() T { return o.fill }

// RowCapacity reports the row capacity hint in effect.
func (o Options[T]) RowCapacity() int { return o.rowCapacity }
