// SPDX-License-Identifier: MIT
// Package grid: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the grid
// package. Public methods return these sentinels wrapped with call-site
// context, and tests MUST check them via errors.Is. No method panics on
// user-triggered error conditions; panics are reserved for invalid option
// parameters (programmer error, see options.go).

package grid

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "grid: ..." for consistency. Wrapping goes
// through gridErrorf only, so every returned error reads
// "<Type>.<Method>(x,y): grid: ..." and still matches with errors.Is.

var (
	// ErrOutOfBounds indicates that a row or column index does not reference
	// an existing position. Indexers, removals and AddColumn return it.
	ErrOutOfBounds = errors.New("grid: index out of bounds")

	// ErrEmpty indicates a removal from a Row (Pop) or a grid (PopRow) that
	// holds no elements.
	ErrEmpty = errors.New("grid: empty")

	// ErrNonRectangular indicates jagged input where a strict rectangular
	// grid was requested (SymmetricalStrict).
	ErrNonRectangular = errors.New("grid: all rows must have the same length")

	// ErrNilRow indicates that a nil *Row was handed to a grid.
	ErrNilRow = errors.New("grid: nil row")

	// ErrNilGrid indicates that a nil grid was passed to a conversion.
	ErrNilGrid = errors.New("grid: nil grid")
)

// gridErrorf attaches a uniform "<kind>.<method>(args): " prefix to a sentinel.
// Complexity: O(len(args)).
func gridErrorf(kind, method string, err error, args ...int) error {
	switch len(args) {
	case 0:
		return fmt.Errorf("%s.%s: %w", kind, method, err)
	case 1:
		return fmt.Errorf("%s.%s(%d): %w", kind, method, args[0], err)
	default:
		return fmt.Errorf("%s.%s(%d,%d): %w", kind, method, args[0], args[1], err)
	}
}
