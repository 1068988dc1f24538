// SPDX-License-Identifier: MIT

// Package grid - Row: ordered, resizable sequence with safe positional access.
//
// Purpose:
//   - Hold the cells of one grid row in insertion order.
//   - Guarantee safety at the public surface: At/Set/Ref/Pop/Remove return
//     errors instead of panicking.
//
// Complexity quicksheet:
//   - Push: amortised O(1); Pop: O(1); At/Set/Ref: O(1); Remove: O(n); Clone: O(n).

package grid

import (
	"fmt"
	"iter"
	"strings"
)

// Row is an ordered sequence of T. Its length varies freely; shape rules are
// enforced by the grid that owns it.
type Row[T any] struct {
	cells []T // cells in order; len is the row length
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Row[int])(nil)

// NewRow returns an empty Row.
func NewRow[T any]() *Row[T] {
	return &Row[T]{}
}

// RowFrom consumes seq and returns a Row holding every yielded value in order.
// Complexity: O(n).
func RowFrom[T any](seq iter.Seq[T]) *Row[T] {
	r := NewRow[T]()
	if seq == nil {
		return r
	}
	for v := range seq {
		r.cells = append(r.cells, v)
	}

	return r
}

// RowOf copies values into a new Row.
// Complexity: O(n).
func RowOf[T any](values ...T) *Row[T] {
	cells := make([]T, len(values))
	copy(cells, values)

	return &Row[T]{cells: cells}
}

// newFilledRow allocates a Row of n copies of fill.
func newFilledRow[T any](n int, fill T) *Row[T] {
	cells := make([]T, n)
	for i := range cells {
		cells[i] = fill
	}

	return &Row[T]{cells: cells}
}

// Len returns the number of cells.
func (r *Row[T]) Len() int { return len(r.cells) }

// Push appends v to the end of the Row.
func (r *Row[T]) Push(v T) {
	r.cells = append(r.cells, v)
}

// Pop removes and returns the last cell.
// Returns ErrEmpty when the Row has no cells.
func (r *Row[T]) Pop() (T, error) {
	var zero T
	n := len(r.cells)
	if n == 0 {
		return zero, gridErrorf(kindRow, ctxPop, ErrEmpty)
	}
	v := r.cells[n-1]
	r.cells[n-1] = zero // release reference held by the backing array
	r.cells = r.cells[:n-1]

	return v, nil
}

// inRange reports whether i addresses an existing cell.
func (r *Row[T]) inRange(i int) bool {
	return i >= 0 && i < len(r.cells)
}

// At returns the cell at position i.
// MAIN DESCRIPTION:
//   - Safe element read; never panics on out-of-range.
//
// Errors:
//   - ErrOutOfBounds when i < 0 or i >= Len().
//
// Complexity:
//   - Time O(1), Space O(1).
func (r *Row[T]) At(i int) (T, error) {
	if !r.inRange(i) {
		var zero T
		return zero, gridErrorf(kindRow, ctxAt, ErrOutOfBounds, i)
	}

	return r.cells[i], nil
}

// Set overwrites the cell at position i; ErrOutOfBounds if i is not a cell.
func (r *Row[T]) Set(i int, v T) error {
	if !r.inRange(i) {
		return gridErrorf(kindRow, ctxSet, ErrOutOfBounds, i)
	}
	r.cells[i] = v

	return nil
}

// Ref returns a pointer to the cell at position i for in-place mutation.
// The pointer is valid until the next call that changes the Row length.
func (r *Row[T]) Ref(i int) (*T, error) {
	if !r.inRange(i) {
		return nil, gridErrorf(kindRow, ctxRef, ErrOutOfBounds, i)
	}

	return &r.cells[i], nil
}

// Remove deletes the cell at position i, shifting later cells down by one,
// and returns the removed value.
// Complexity: O(Len()-i).
func (r *Row[T]) Remove(i int) (T, error) {
	var zero T
	if !r.inRange(i) {
		return zero, gridErrorf(kindRow, ctxRemove, ErrOutOfBounds, i)
	}
	v := r.cells[i]
	last := len(r.cells) - 1
	copy(r.cells[i:], r.cells[i+1:])
	r.cells[last] = zero
	r.cells = r.cells[:last]

	return v, nil
}

// Resize truncates or pads the Row so that Len() == n. New cells hold fill.
// A negative n is treated as 0.
func (r *Row[T]) Resize(n int, fill T) {
	if n < 0 {
		n = 0
	}
	if n <= len(r.cells) {
		var zero T
		for i := n; i < len(r.cells); i++ {
			r.cells[i] = zero
		}
		r.cells = r.cells[:n]

		return
	}
	for len(r.cells) < n {
		r.cells = append(r.cells, fill)
	}
}

// Values returns a copy of the cells.
func (r *Row[T]) Values() []T {
	out := make([]T, len(r.cells))
	copy(out, r.cells)

	return out
}

// All iterates (position, value) pairs in order.
func (r *Row[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range r.cells {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Clone returns an independent copy of the Row.
func (r *Row[T]) Clone() *Row[T] {
	return RowOf(r.cells...)
}

// EqualFunc reports whether r and other have the same length and eq holds
// for every pair of cells at the same position.
func (r *Row[T]) EqualFunc(other *Row[T], eq func(a, b T) bool) bool {
	if r == nil || other == nil {
		return r == other
	}
	if len(r.cells) != len(other.cells) {
		return false
	}
	for i := range r.cells {
		if !eq(r.cells[i], other.cells[i]) {
			return false
		}
	}

	return true
}

// RowsEqual reports whether a and b have the same length and equal cells.
func RowsEqual[T comparable](a, b *Row[T]) bool {
	return a.EqualFunc(b, func(x, y T) bool { return x == y })
}

// String renders the Row as "[a, b, c]".
func (r *Row[T]) String() string {
	var b strings.Builder
	b.WriteString(_fmtRowOpen)
	r.writeCells(&b)
	b.WriteString(_fmtRowEnd)

	return b.String()
}

// writeCells appends "a, b, c" to b.
func (r *Row[T]) writeCells(b *strings.Builder) {
	for i, v := range r.cells {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		fmt.Fprintf(b, "%v", v)
	}
}
