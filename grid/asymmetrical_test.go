// Package grid_test contains unit tests for the Asymmetrical grid.
package grid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/symgrid/grid"
)

// TestAsymmetrical_BuildRowByRow mirrors slice construction through AddRow
// and per-row Push.
func TestAsymmetrical_BuildRowByRow(t *testing.T) {
	g := grid.NewAsymmetrical[int]()
	g.AddRow()
	g.AddRow()
	for x, vs := range [][]int{{1, 2, 3}, {2, 3, 4}} {
		r, err := g.Row(x)
		require.NoError(t, err)
		for _, v := range vs {
			r.Push(v)
		}
	}

	want := grid.AsymmetricalOf([][]int{{1, 2, 3}, {2, 3, 4}})
	require.True(t, grid.AsymmetricalEqual(want, g))
	require.Equal(t, grid.ShapeAsymmetrical, g.Shape())
}

// TestAsymmetrical_AddRowIsEmpty checks a new row starts with no cells.
func TestAsymmetrical_AddRowIsEmpty(t *testing.T) {
	g := grid.AsymmetricalOf([][]int{{1, 2, 3}})
	g.AddRow()

	n, err := g.RowLen(1)
	require.NoError(t, err)
	require.Equal(t, 0, n)
	require.True(t, grid.RowsEqual(grid.NewRow[int](), mustRow(t, g, 1)))
}

// TestAsymmetrical_AddColumn pushes onto one row only.
func TestAsymmetrical_AddColumn(t *testing.T) {
	g := grid.AsymmetricalOf([][]int{{1}, {2}})

	require.NoError(t, g.AddColumn(0, 5))
	requireRows(t, [][]int{{1, 5}, {2}}, g)

	err := g.AddColumn(2, 5)
	require.ErrorIs(t, err, grid.ErrOutOfBounds)
	require.EqualError(t, err, "Asymmetrical.AddColumn(2): grid: index out of bounds")
	requireRows(t, [][]int{{1, 5}, {2}}, g)
}

// TestAsymmetrical_RemoveColumn removes one cell from one row.
func TestAsymmetrical_RemoveColumn(t *testing.T) {
	g := grid.AsymmetricalFrom(nested([][]int{{1, 2, 3}, {2, 3, 4}}))

	v, err := g.RemoveColumn(1, 0)
	require.NoError(t, err)
	require.Equal(t, 2, v)
	require.True(t, grid.AsymmetricalEqual(grid.AsymmetricalOf([][]int{{1, 2, 3}, {3, 4}}), g))

	cases := []struct {
		name string
		x, y int
	}{
		{"RowTooLarge", 2, 0},
		{"ColTooLarge", 1, 2},
		{"NegativeRow", -1, 0},
		{"NegativeCol", 0, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := g.RemoveColumn(tc.x, tc.y)
			require.ErrorIs(t, err, grid.ErrOutOfBounds)
			requireRows(t, [][]int{{1, 2, 3}, {3, 4}}, g)
		})
	}
}

// TestAsymmetrical_RemoveRow shifts later rows down and returns the removed row.
func TestAsymmetrical_RemoveRow(t *testing.T) {
	g := grid.AsymmetricalOf([][]string{{"a"}, {"b", "c"}, {"d"}})

	r, err := g.RemoveRow(1)
	require.NoError(t, err)
	require.Equal(t, []string{"b", "c"}, r.Values())
	requireRows(t, [][]string{{"a"}, {"d"}}, g)

	_, err = g.RemoveRow(2)
	require.ErrorIs(t, err, grid.ErrOutOfBounds)
	require.Equal(t, 2, g.Len())

	_, err = g.RemoveRow(1)
	require.NoError(t, err)
	_, err = g.RemoveRow(0)
	require.NoError(t, err)
	require.True(t, g.IsEmpty())
}

// TestAsymmetrical_PushPopRow covers copy-on-push and ErrEmpty.
func TestAsymmetrical_PushPopRow(t *testing.T) {
	g := grid.NewAsymmetrical[uint32]()

	require.ErrorIs(t, g.PushRow(nil), grid.ErrNilRow)

	row := grid.RowOf[uint32](1, 2, 3)
	require.NoError(t, g.PushRow(row))
	v, err := g.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, uint32(2), v)

	popped, err := g.PopRow()
	require.NoError(t, err)
	require.NotSame(t, row, popped)
	require.True(t, grid.RowsEqual(row, popped))

	_, err = g.PopRow()
	require.ErrorIs(t, err, grid.ErrEmpty)
}

// TestAsymmetrical_PushRowKeepsRowsIndependent pushes one row twice and a row
// owned by another grid; no write may leak between rows or grids.
func TestAsymmetrical_PushRowKeepsRowsIndependent(t *testing.T) {
	g := grid.NewAsymmetrical[int]()
	r := grid.RowOf(1, 2)
	require.NoError(t, g.PushRow(r))
	require.NoError(t, g.PushRow(r))

	require.NoError(t, g.AddColumn(0, 9))
	r.Push(7)
	requireRows(t, [][]int{{1, 2, 9}, {1, 2}}, g)

	a := grid.AsymmetricalOf([][]int{{5}})
	b := grid.NewAsymmetrical[int]()
	require.NoError(t, b.PushRow(mustRow(t, a, 0)))
	_, err := b.RemoveColumn(0, 0)
	require.NoError(t, err)

	requireRows(t, [][]int{{5}}, a)
	requireRows(t, [][]int{{}}, b)
}

// TestAsymmetrical_ZeroValue works as an empty grid.
func TestAsymmetrical_ZeroValue(t *testing.T) {
	var g grid.Asymmetrical[int]
	require.True(t, g.IsEmpty())
	g.AddRow()
	require.NoError(t, g.AddColumn(0, 3))
	requireRows(t, [][]int{{3}}, &g)
}

// TestAsymmetrical_Resize truncates or appends empty rows.
func TestAsymmetrical_Resize(t *testing.T) {
	g := grid.AsymmetricalOf([][]int{{1}, {2, 3}, {4}})

	g.Resize(2)
	requireRows(t, [][]int{{1}, {2, 3}}, g)

	g.Resize(4)
	requireRows(t, [][]int{{1}, {2, 3}, {}, {}}, g)

	g.Resize(-1)
	require.True(t, g.IsEmpty())
}

// TestAsymmetrical_SetAndRef write existing cells only.
func TestAsymmetrical_SetAndRef(t *testing.T) {
	g := grid.AsymmetricalOf([][]int{{1, 2}, {3}})

	require.NoError(t, g.Set(1, 0, 30))
	require.ErrorIs(t, g.Set(1, 1, 9), grid.ErrOutOfBounds)

	p, err := g.Ref(0, 1)
	require.NoError(t, err)
	*p = 20

	requireRows(t, [][]int{{1, 20}, {30}}, g)
}

// TestAsymmetrical_Indexing checks per-row bounds on a jagged grid.
func TestAsymmetrical_Indexing(t *testing.T) {
	g := grid.AsymmetricalOf([][]int{{0, 1, 3}, {4, 5}, {4}})

	v, err := g.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 5, v)

	_, err = g.At(2, 1)
	require.ErrorIs(t, err, grid.ErrOutOfBounds)
	require.Equal(t, 3, g.MaxLen())
	require.Equal(t, "[0, 1, 3]\n[4, 5]\n[4]\n", g.String())
}

// TestAsymmetrical_CloneIndependence mutates a clone only.
func TestAsymmetrical_CloneIndependence(t *testing.T) {
	g := grid.AsymmetricalOf([][]int{{1}})
	c := g.Clone()
	require.NoError(t, c.AddColumn(0, 2))
	c.AddRow()

	requireRows(t, [][]int{{1}}, g)
	require.False(t, grid.AsymmetricalEqual(g, c))
}

// mustRow fetches row x or fails the test.
func mustRow[T any](t *testing.T, g *grid.Asymmetrical[T], x int) *grid.Row[T] {
	t.Helper()
	r, err := g.Row(x)
	require.NoError(t, err)

	return r
}
