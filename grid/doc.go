// Package grid offers a generic 2D container in two shapes.
//
// What:
//
//   - Row[T]: ordered, resizable sequence with safe positional access.
//   - Symmetrical[T]: rectangular grid; every row has CommonLen() cells after
//     every public call. Set grows the grid (rows, then columns) before writing.
//   - Asymmetrical[T]: jagged grid; rows and cells are added and removed
//     individually under caller control.
//   - ToSymmetrical / ToAsymmetrical (and IntoSymmetrical / IntoAsymmetrical)
//     convert between shapes without losing data: widening pads short rows at
//     the tail and never truncates.
//
// Why:
//
//   - Tile maps, spreadsheets-in-memory and puzzle boards want the rectangular
//     guarantee; text lines, ragged CSV input and per-row logs do not.
//   - Both shapes share indexing, visiting and printing through the Grid view.
//
// Indexing:
//
//   - At(x, y): x selects the row, y the cell in that row. Out-of-range
//     indices return ErrOutOfBounds; nothing panics on user input.
//   - Row.Resize(n, fill) and Asymmetrical.Resize(n) treat a negative n as 0:
//     they truncate to empty instead of returning an error.
//
// Options:
//
//   - WithFill(v): padding value for growth and widening (default: zero value).
//   - WithRowCapacity(n): row slice capacity hint.
//
// Errors:
//
//   - ErrOutOfBounds: index does not reference an existing position.
//   - ErrEmpty: Pop on an empty Row, PopRow on a grid without rows.
//   - ErrNonRectangular: SymmetricalStrict got jagged input.
//   - ErrNilRow, ErrNilGrid: nil argument.
//
// Concurrency:
//
//   - No internal locking. Serialise access to one grid externally.
package grid
