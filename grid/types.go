// SPDX-License-Identifier: MIT

// Package grid: domain types shared by both grid shapes.
// This file contains ONLY the closed shape enum, the Point coordinate and the
// error-context tags. Errors and options live in dedicated files.
package grid

// Shape tags the two grid variants. The set is closed: exactly two shapes
// exist and each has its own concrete type.
type Shape int

const (
	// ShapeSymmetrical marks a grid whose rows all share one length.
	ShapeSymmetrical Shape = iota
	// ShapeAsymmetrical marks a grid whose rows may differ in length.
	ShapeAsymmetrical
)

// String returns the lower-case shape name.
func (s Shape) String() string {
	switch s {
	case ShapeSymmetrical:
		return "symmetrical"
	case ShapeAsymmetrical:
		return "asymmetrical"
	default:
		return "unknown"
	}
}

// Point addresses one cell: X selects the row, Y the position in that row.
type Point struct {
	X, Y int
}

// ---------- error context tags ----------

const (
	kindRow          = "Row"
	kindSymmetrical  = "Symmetrical"
	kindAsymmetrical = "Asymmetrical"
)

const (
	ctxAt           = "At"
	ctxRef          = "Ref"
	ctxSet          = "Set"
	ctxPop          = "Pop"
	ctxRemove       = "Remove"
	ctxRow          = "Row"
	ctxRowLen       = "RowLen"
	ctxUpdate       = "Update"
	ctxEnsureSize   = "EnsureSize"
	ctxAddColumn    = "AddColumn"
	ctxRemoveRow    = "RemoveRow"
	ctxRemoveColumn = "RemoveColumn"
	ctxPushRow      = "PushRow"
	ctxPopRow       = "PopRow"
	ctxStrict       = "Strict"
	ctxConvert      = "Convert"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowEnd   = "]"
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)
