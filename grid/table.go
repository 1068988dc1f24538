// SPDX-License-Identifier: MIT

// Package grid - shared row storage behind Symmetrical and Asymmetrical.
//
// Purpose:
//   - One ordered slice of owned rows plus the resolved Options.
//   - 2D indexing (x selects the row, y the cell), visitors, deep copies and
//     diagnostics shared by both shapes.
//   - Guarantee safety at the public surface: At/Ref return errors instead of
//     panicking.
//
// Complexity quicksheet:
//   - At/Ref/RowLen: O(1); Rows/Clone: O(total cells); Do/All: O(total cells).

package grid

import (
	"iter"
	"strings"
)

// table is the shape-agnostic core. Shape types embed it and add mutation
// rules on top.
type table[T any] struct {
	kind string    // error-context tag of the embedding shape
	rows []*Row[T] // owned rows in order
	opts Options[T]
}

// newTable returns an empty core for the given shape tag.
func newTable[T any](kind string, opts Options[T]) table[T] {
	return table[T]{
		kind: kind,
		rows: make([]*Row[T], 0, opts.rowCapacity),
		opts: opts,
	}
}

// appendSeq consumes seq; every inner sequence becomes one new row.
func (t *table[T]) appendSeq(seq iter.Seq[iter.Seq[T]]) {
	if seq == nil {
		return
	}
	for inner := range seq {
		t.rows = append(t.rows, RowFrom(inner))
	}
}

// appendSlices deep-copies every slice of values as one new row.
func (t *table[T]) appendSlices(values [][]T) {
	for _, vs := range values {
		t.rows = append(t.rows, RowOf(vs...))
	}
}

// Len returns the number of rows.
func (t *table[T]) Len() int { return len(t.rows) }

// IsEmpty reports whether the grid has no rows.
func (t *table[T]) IsEmpty() bool { return len(t.rows) == 0 }

// Options returns the resolved configuration.
func (t *table[T]) Options() Options[T] { return t.opts }

// row returns the owned row x or ErrOutOfBounds wrapped for method.
func (t *table[T]) row(method string, x int) (*Row[T], error) {
	if x < 0 || x >= len(t.rows) {
		return nil, gridErrorf(t.kind, method, ErrOutOfBounds, x)
	}

	return t.rows[x], nil
}

// cell bounds-checks (x, y) and returns the owning row.
func (t *table[T]) cell(method string, x, y int) (*Row[T], error) {
	if x < 0 || x >= len(t.rows) {
		return nil, gridErrorf(t.kind, method, ErrOutOfBounds, x, y)
	}
	r := t.rows[x]
	if !r.inRange(y) {
		return nil, gridErrorf(t.kind, method, ErrOutOfBounds, x, y)
	}

	return r, nil
}

// At returns the value at (x, y): x selects the row, y the cell in that row.
// MAIN DESCRIPTION:
//   - Safe 2D read; never panics.
//
// Errors:
//   - ErrOutOfBounds when x is not a row or y is not a cell of row x.
//
// Complexity:
//   - Time O(1), Space O(1).
func (t *table[T]) At(x, y int) (T, error) {
	r, err := t.cell(ctxAt, x, y)
	if err != nil {
		var zero T
		return zero, err
	}

	return r.cells[y], nil
}

// Ref returns a pointer to the cell at (x, y) for in-place mutation.
// The pointer stays valid until the row it points into changes length.
func (t *table[T]) Ref(x, y int) (*T, error) {
	r, err := t.cell(ctxRef, x, y)
	if err != nil {
		return nil, err
	}

	return &r.cells[y], nil
}

// RowLen returns the length of row x.
func (t *table[T]) RowLen(x int) (int, error) {
	r, err := t.row(ctxRowLen, x)
	if err != nil {
		return 0, err
	}

	return r.Len(), nil
}

// Rows returns a deep copy of all cells, one slice per row.
func (t *table[T]) Rows() [][]T {
	out := make([][]T, len(t.rows))
	for i, r := range t.rows {
		out[i] = r.Values()
	}

	return out
}

// All iterates every cell in row-major order.
func (t *table[T]) All() iter.Seq2[Point, T] {
	return func(yield func(Point, T) bool) {
		for x, r := range t.rows {
			for y, v := range r.cells {
				if !yield(Point{X: x, Y: y}, v) {
					return
				}
			}
		}
	}
}

// Do visits each cell (x, y) in row-major order and calls f(x, y, v).
// Stops early when f returns false.
// Complexity: O(total cells), no allocations.
func (t *table[T]) Do(f func(x, y int, v T) bool) {
	var x, y int
	for x = 0; x < len(t.rows); x++ {
		cells := t.rows[x].cells
		for y = 0; y < len(cells); y++ {
			if !f(x, y, cells[y]) {
				return
			}
		}
	}
}

// String dumps one "[a, b]" line per row.
func (t *table[T]) String() string {
	var b strings.Builder
	for _, r := range t.rows {
		b.WriteString(_fmtRowOpen)
		r.writeCells(&b)
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// clone deep-copies rows and options.
func (t *table[T]) clone() table[T] {
	out := table[T]{
		kind: t.kind,
		rows: make([]*Row[T], len(t.rows), cap(t.rows)),
		opts: t.opts,
	}
	for i, r := range t.rows {
		out.rows[i] = r.Clone()
	}

	return out
}

// cloneAs deep-copies rows into a core tagged for another shape.
func (t *table[T]) cloneAs(kind string) table[T] {
	out := t.clone()
	out.kind = kind

	return out
}

// equalFunc compares row counts and then every row in order.
func (t *table[T]) equalFunc(other *table[T], eq func(a, b T) bool) bool {
	if len(t.rows) != len(other.rows) {
		return false
	}
	for i := range t.rows {
		if !t.rows[i].EqualFunc(other.rows[i], eq) {
			return false
		}
	}

	return true
}

// maxLen returns the longest row length, 0 with no rows.
func (t *table[T]) maxLen() int {
	m := 0
	for _, r := range t.rows {
		if r.Len() > m {
			m = r.Len()
		}
	}

	return m
}
