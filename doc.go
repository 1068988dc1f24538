// Package symgrid is a small in-memory toolkit for 2D tabular data.
//
// Everything lives in the grid subpackage:
//
//	grid/ — Row, Symmetrical (rectangular) and Asymmetrical (jagged) grids,
//	        2D indexing, auto-expanding writes and lossless shape conversion.
//
// Quick ASCII example:
//
//	jagged          widened (fill = 0)
//	[0, 1, 3]       [0, 1, 3]
//	[4, 5]     →    [4, 5, 0]
//	[4]             [4, 0, 0]
//
//	go get github.com/katalvlaran/symgrid/grid
package symgrid
