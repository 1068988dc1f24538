// SPDX-License-Identifier: MIT

// Package grid - Asymmetrical: jagged grid, shape managed by the caller.
// Rows and cells are added and removed individually; there is no length rule.

package grid

import "iter"

// Asymmetrical is a grid whose rows may differ in length.
// The zero value is an empty grid with default options, but its errors carry
// no shape name; prefer NewAsymmetrical or one of the bulk constructors.
type Asymmetrical[T any] struct {
	table[T]
}

// NewAsymmetrical returns an empty Asymmetrical grid.
func NewAsymmetrical[T any](opts ...Option[T]) *Asymmetrical[T] {
	return &Asymmetrical[T]{table: newTable(kindAsymmetrical, gatherOptions(opts...))}
}

// AsymmetricalFrom consumes seq, one row per inner sequence, keeping element
// order and count exactly.
func AsymmetricalFrom[T any](seq iter.Seq[iter.Seq[T]], opts ...Option[T]) *Asymmetrical[T] {
	g := NewAsymmetrical(opts...)
	g.appendSeq(seq)

	return g
}

// AsymmetricalOf deep-copies values, one row per slice.
func AsymmetricalOf[T any](values [][]T, opts ...Option[T]) *Asymmetrical[T] {
	g := NewAsymmetrical(opts...)
	g.appendSlices(values)

	return g
}

// Shape reports ShapeAsymmetrical.
func (g *Asymmetrical[T]) Shape() Shape { return ShapeAsymmetrical }

// MaxLen returns the longest row length (0 with no rows).
func (g *Asymmetrical[T]) MaxLen() int { return g.maxLen() }

// AddRow appends a new empty row.
func (g *Asymmetrical[T]) AddRow() {
	g.rows = append(g.rows, NewRow[T]())
}

// Row returns the owned row x; pushing onto it extends that row only.
func (g *Asymmetrical[T]) Row(x int) (*Row[T], error) {
	return g.row(ctxRow, x)
}

// AddColumn appends v to row x.
//
// Errors:
//   - ErrOutOfBounds when x is not a row.
func (g *Asymmetrical[T]) AddColumn(x int, v T) error {
	r, err := g.row(ctxAddColumn, x)
	if err != nil {
		return err
	}
	r.Push(v)

	return nil
}

// Set overwrites an existing cell at (x, y). The grid never grows here.
func (g *Asymmetrical[T]) Set(x, y int, v T) error {
	r, err := g.cell(ctxSet, x, y)
	if err != nil {
		return err
	}
	r.cells[y] = v

	return nil
}

// RemoveRow removes row x, shifting later rows down by one, and hands the
// removed row to the caller.
//
// Errors:
//   - ErrOutOfBounds when x is not a row.
//
// Complexity:
//   - Time O(Len()-x).
func (g *Asymmetrical[T]) RemoveRow(x int) (*Row[T], error) {
	r, err := g.row(ctxRemoveRow, x)
	if err != nil {
		return nil, err
	}
	last := len(g.rows) - 1
	copy(g.rows[x:], g.rows[x+1:])
	g.rows[last] = nil
	g.rows = g.rows[:last]

	return r, nil
}

// RemoveColumn removes cell y of row x, shifting the rest of that row down by
// one, and returns the removed value. Other rows are untouched.
//
// Errors:
//   - ErrOutOfBounds when x is not a row or y is not a cell of row x.
func (g *Asymmetrical[T]) RemoveColumn(x, y int) (T, error) {
	r, err := g.cell(ctxRemoveColumn, x, y)
	if err != nil {
		var zero T
		return zero, err
	}

	return r.Remove(y)
}

// PushRow appends a copy of r as the last row. Later changes to r do not
// reach the grid, and pushing the same row twice yields two independent rows.
func (g *Asymmetrical[T]) PushRow(r *Row[T]) error {
	if r == nil {
		return gridErrorf(kindAsymmetrical, ctxPushRow, ErrNilRow)
	}
	g.rows = append(g.rows, r.Clone())

	return nil
}

// PopRow removes and returns the last row; ErrEmpty with no rows.
func (g *Asymmetrical[T]) PopRow() (*Row[T], error) {
	n := len(g.rows)
	if n == 0 {
		return nil, gridErrorf(kindAsymmetrical, ctxPopRow, ErrEmpty)
	}
	r := g.rows[n-1]
	g.rows[n-1] = nil
	g.rows = g.rows[:n-1]

	return r, nil
}

// Resize truncates or extends the grid to n rows; new rows are empty.
// A negative n is treated as 0 and removes every row.
func (g *Asymmetrical[T]) Resize(n int) {
	if n < 0 {
		n = 0
	}
	if n <= len(g.rows) {
		for i := n; i < len(g.rows); i++ {
			g.rows[i] = nil
		}
		g.rows = g.rows[:n]

		return
	}
	for len(g.rows) < n {
		g.AddRow()
	}
}

// ToSymmetrical returns a Symmetrical grid whose common length is MaxLen().
// Every row keeps its cells in order; shorter rows are padded at the tail with
// the fill value. Nothing is ever truncated. g is left untouched.
// Complexity: O(rows * MaxLen()).
func (g *Asymmetrical[T]) ToSymmetrical() *Symmetrical[T] {
	s := &Symmetrical[T]{table: g.cloneAs(kindSymmetrical)}
	s.widen(g.maxLen())

	return s
}

// Clone returns an independent deep copy.
func (g *Asymmetrical[T]) Clone() *Asymmetrical[T] {
	return &Asymmetrical[T]{table: g.clone()}
}

// EqualFunc reports whether g and other have the same row count and every
// pair of rows is equal under eq.
func (g *Asymmetrical[T]) EqualFunc(other *Asymmetrical[T], eq func(a, b T) bool) bool {
	if g == nil || other == nil {
		return g == other
	}

	return g.equalFunc(&other.table, eq)
}

// AsymmetricalEqual reports whether a and b hold equal rows in the same order.
func AsymmetricalEqual[T comparable](a, b *Asymmetrical[T]) bool {
	return a.EqualFunc(b, func(x, y T) bool { return x == y })
}
