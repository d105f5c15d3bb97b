// SPDX-License-Identifier: MIT

package raster

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "raster: ..." for easy grepping. Callers
// match with errors.Is; accessors wrap the sentinels with the call-site
// coordinates via gridErrorf.
var (
	// ErrEmptyGrid indicates the input 2D slice has no rows or no columns.
	ErrEmptyGrid = errors.New("raster: input grid must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("raster: all rows must have the same length")

	// ErrInvalidDimensions indicates non-positive rows or columns.
	ErrInvalidDimensions = errors.New("raster: dimensions must be > 0")

	// ErrInvalidResolution indicates a non-positive or non-finite cell size.
	ErrInvalidResolution = errors.New("raster: resolution must be finite and > 0")

	// ErrDimensionMismatch indicates data whose shape differs from its geometry.
	ErrDimensionMismatch = errors.New("raster: dimension mismatch")

	// ErrOutOfRange indicates a row or column outside valid bounds.
	ErrOutOfRange = errors.New("raster: index out of range")

	// ErrNilGrid indicates a nil *Grid was handed to a builder.
	ErrNilGrid = errors.New("raster: grid is nil")

	// ErrEmptyName indicates a coverage was requested without a name.
	ErrEmptyName = errors.New("raster: coverage name must not be empty")
)

// gridErrorf attaches the method and coordinates to a sentinel.
func gridErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, row, col, err)
}
