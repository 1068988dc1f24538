// SPDX-License-Identifier: MIT

// Package grid - Symmetrical: rectangular grid with a uniform row length.
//
// Invariant (held before and after every public call):
//
//	for every row r: r.Len() == CommonLen()
//
// CommonLen is the length of row 0, or 0 when there are no rows.
//
// Growth policy:
//   - AddRow on an empty grid appends a row of length 0. The common length is
//     not frozen by that: the next AddColumn establishes it.
//   - AddColumn on a grid with zero rows is a no-op.
//   - Set grows the grid (rows first, then columns) before writing.

package grid

import (
	"iter"
	"math"
)

// Symmetrical is a grid whose rows all have the same length.
// The zero value is an empty grid with default options, but its errors carry
// no shape name; prefer NewSymmetrical or one of the bulk constructors.
type Symmetrical[T any] struct {
	table[T]
}

// NewSymmetrical returns an empty Symmetrical grid.
func NewSymmetrical[T any](opts ...Option[T]) *Symmetrical[T] {
	return &Symmetrical[T]{table: newTable(kindSymmetrical, gatherOptions(opts...))}
}

// SymmetricalFrom consumes seq, one row per inner sequence, in order.
// Jagged input is widened to the longest row with the fill value, so the
// result satisfies the invariant from the start.
// Complexity: O(total cells + rows*pad).
func SymmetricalFrom[T any](seq iter.Seq[iter.Seq[T]], opts ...Option[T]) *Symmetrical[T] {
	g := NewSymmetrical(opts...)
	g.appendSeq(seq)
	g.widen(g.maxLen())

	return g
}

// SymmetricalOf deep-copies values, one row per slice, widening jagged input
// like SymmetricalFrom.
func SymmetricalOf[T any](values [][]T, opts ...Option[T]) *Symmetrical[T] {
	g := NewSymmetrical(opts...)
	g.appendSlices(values)
	g.widen(g.maxLen())

	return g
}

// SymmetricalStrict deep-copies values and rejects jagged input.
//
// Errors:
//   - ErrNonRectangular when any row length differs from row 0.
func SymmetricalStrict[T any](values [][]T, opts ...Option[T]) (*Symmetrical[T], error) {
	for i := 1; i < len(values); i++ {
		if len(values[i]) != len(values[0]) {
			return nil, gridErrorf(kindSymmetrical, ctxStrict, ErrNonRectangular, i)
		}
	}
	g := NewSymmetrical(opts...)
	g.appendSlices(values)

	return g, nil
}

// Shape reports ShapeSymmetrical.
func (g *Symmetrical[T]) Shape() Shape { return ShapeSymmetrical }

// CommonLen returns the shared row length (0 with no rows).
func (g *Symmetrical[T]) CommonLen() int {
	if len(g.rows) == 0 {
		return 0
	}

	return g.rows[0].Len()
}

// widen pads every row at the tail to n cells. Rows are never truncated.
func (g *Symmetrical[T]) widen(n int) {
	for _, r := range g.rows {
		if r.Len() < n {
			r.Resize(n, g.opts.fill)
		}
	}
}

// AddRow appends a row of CommonLen() fill values.
// On an empty grid the new row has length 0.
// Complexity: O(CommonLen()).
func (g *Symmetrical[T]) AddRow() {
	g.rows = append(g.rows, newFilledRow(g.CommonLen(), g.opts.fill))
}

// AddColumn appends one fill value to every row.
// No-op when the grid has zero rows.
// Complexity: O(Len()).
func (g *Symmetrical[T]) AddColumn() {
	for _, r := range g.rows {
		r.Push(g.opts.fill)
	}
}

// EnsureSize grows the grid until it has at least rows rows and, when any row
// exists, at least cols columns. It never shrinks.
//
// Implementation:
//   - Stage 1: reject negative sizes before mutating.
//   - Stage 2: AddRow until Len() >= rows.
//   - Stage 3: AddColumn until CommonLen() >= cols (skipped with zero rows).
//
// Errors:
//   - ErrOutOfBounds for negative rows or cols.
//
// Complexity:
//   - Time O(rows*cols) worst case.
func (g *Symmetrical[T]) EnsureSize(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return gridErrorf(kindSymmetrical, ctxEnsureSize, ErrOutOfBounds, rows, cols)
	}
	for len(g.rows) < rows {
		g.AddRow()
	}
	if len(g.rows) == 0 {
		return nil
	}
	for g.CommonLen() < cols {
		g.AddColumn()
	}

	return nil
}

// Set writes v at (x, y), growing the grid first when (x, y) lies outside it:
// rows are appended until Len() > x and columns until CommonLen() > y.
// Every row keeps the same length afterwards.
//
// Errors:
//   - ErrOutOfBounds for negative x or y, or for math.MaxInt, which no grid
//     can reach (nothing is mutated).
func (g *Symmetrical[T]) Set(x, y int, v T) error {
	if x < 0 || y < 0 || x == math.MaxInt || y == math.MaxInt {
		return gridErrorf(kindSymmetrical, ctxSet, ErrOutOfBounds, x, y)
	}
	if err := g.EnsureSize(x+1, y+1); err != nil {
		return err
	}
	g.rows[x].cells[y] = v

	return nil
}

// Update writes v at an existing (x, y) without growing the grid.
func (g *Symmetrical[T]) Update(x, y int, v T) error {
	r, err := g.cell(ctxUpdate, x, y)
	if err != nil {
		return err
	}
	r.cells[y] = v

	return nil
}

// Row returns a copy of row x. The grid keeps exclusive ownership of its rows
// so that callers cannot change a single row's length.
func (g *Symmetrical[T]) Row(x int) (*Row[T], error) {
	r, err := g.row(ctxRow, x)
	if err != nil {
		return nil, err
	}

	return r.Clone(), nil
}

// ToAsymmetrical returns an Asymmetrical grid with identical rows in the same
// order. g is left untouched.
// Complexity: O(total cells).
func (g *Symmetrical[T]) ToAsymmetrical() *Asymmetrical[T] {
	return &Asymmetrical[T]{table: g.cloneAs(kindAsymmetrical)}
}

// Clone returns an independent deep copy.
func (g *Symmetrical[T]) Clone() *Symmetrical[T] {
	return &Symmetrical[T]{table: g.clone()}
}

// EqualFunc reports whether g and other have the same row count and every
// pair of rows is equal under eq.
func (g *Symmetrical[T]) EqualFunc(other *Symmetrical[T], eq func(a, b T) bool) bool {
	if g == nil || other == nil {
		return g == other
	}

	return g.equalFunc(&other.table, eq)
}

// SymmetricalEqual reports whether a and b hold equal rows in the same order.
func SymmetricalEqual[T comparable](a, b *Symmetrical[T]) bool {
	return a.EqualFunc(b, func(x, y T) bool { return x == y })
}
