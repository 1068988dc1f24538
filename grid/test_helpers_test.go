// SPDX-License-Identifier: MIT
// Package grid_test contains test helpers.
//
// Purpose:
//   • Turn slice literals into the iterator shapes the constructors consume.
//   • Produce deterministic jagged fixtures from a seeded rand source.
//   • Check the symmetrical invariant in one place.

package grid_test

import (
	"iter"
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/katalvlaran/symgrid/grid"
)

// nested turns [][]T into an iterator of row iterators.
func nested[T any](values [][]T) iter.Seq[iter.Seq[T]] {
	return func(yield func(iter.Seq[T]) bool) {
		for _, vs := range values {
			if !yield(slices.Values(vs)) {
				return
			}
		}
	}
}

// randomJagged returns rows×[0..maxLen] ints drawn from a fixed seed.
func randomJagged(seed int64, rows, maxLen int) [][]int {
	rng := rand.New(rand.NewSource(seed))
	out := make([][]int, rows)
	for i := range out {
		n := rng.Intn(maxLen + 1)
		out[i] = make([]int, n)
		for j := range out[i] {
			out[i][j] = rng.Intn(100) + 1 // never the zero fill
		}
	}

	return out
}

// requireUniform fails the test when any row length differs from CommonLen.
func requireUniform[T any](t testing.TB, g *grid.Symmetrical[T]) {
	t.Helper()
	want := g.CommonLen()
	for x := 0; x < g.Len(); x++ {
		n, err := g.RowLen(x)
		if err != nil {
			t.Fatalf("RowLen(%d): %v", x, err)
		}
		if n != want {
			t.Fatalf("row %d has %d cells; want %d\n%s", x, n, want, g)
		}
	}
}

// requireRows compares grid content against want and prints a diff on mismatch.
func requireRows[T any](t testing.TB, want [][]T, g grid.Grid[T]) {
	t.Helper()
	if diff := cmp.Diff(want, g.Rows()); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}
