// SPDX-License-Identifier: MIT

// Package grid - conversions between the two shapes and the read-only Grid
// view shared by both.
//
// Conversions always build a new, independent grid; the source is never
// modified. Options travel with the data: the target starts from the
// source's resolved Options, then any extra setters are applied on top.

package grid

// Grid is the read-only surface common to Symmetrical and Asymmetrical.
// Callers that only index, visit or print can accept a Grid and stay
// shape-agnostic.
type Grid[T any] interface {
	// Shape reports which variant backs the grid.
	Shape() Shape

	// Len returns the number of rows.
	Len() int

	// RowLen returns the length of row x or ErrOutOfBounds.
	RowLen(x int) (int, error)

	// At returns the value at (x, y) or ErrOutOfBounds.
	At(x, y int) (T, error)

	// Rows returns a deep copy of all cells.
	Rows() [][]T

	// Do visits cells in row-major order until f returns false.
	Do(f func(x, y int, v T) bool)

	// String dumps one "[a, b]" line per row.
	String() string
}

// Compile-time assertions for interface conformance.
var (
	_ Grid[int] = (*Symmetrical[int])(nil)
	_ Grid[int] = (*Asymmetrical[int])(nil)
)

// withOptions applies extra setters over an already resolved Options value.
func withOptions[T any](base Options[T], opts ...Option[T]) Options[T] {
	for _, set := range opts {
		if set != nil {
			set(&base)
		}
	}

	return base
}

// IntoSymmetrical widens a to a Symmetrical grid (see ToSymmetrical).
// Extra options override the ones inherited from a, e.g. WithFill to pick the
// padding value for this conversion only.
//
// Errors:
//   - ErrNilGrid when a is nil.
func IntoSymmetrical[T any](a *Asymmetrical[T], opts ...Option[T]) (*Symmetrical[T], error) {
	if a == nil {
		return nil, gridErrorf(kindAsymmetrical, ctxConvert, ErrNilGrid)
	}
	s := &Symmetrical[T]{table: a.cloneAs(kindSymmetrical)}
	s.opts = withOptions(s.opts, opts...)
	s.widen(s.maxLen())

	return s, nil
}

// IntoAsymmetrical copies s into an Asymmetrical grid (see ToAsymmetrical).
//
// Errors:
//   - ErrNilGrid when s is nil.
func IntoAsymmetrical[T any](s *Symmetrical[T], opts ...Option[T]) (*Asymmetrical[T], error) {
	if s == nil {
		return nil, gridErrorf(kindSymmetrical, ctxConvert, ErrNilGrid)
	}
	a := &Asymmetrical[T]{table: s.cloneAs(kindAsymmetrical)}
	a.opts = withOptions(a.opts, opts...)

	return a, nil
}
