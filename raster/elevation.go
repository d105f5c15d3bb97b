// SPDX-License-Identifier: MIT

package raster

import "fmt"

// ElevationGrid is an immutable DEM: a Grid bound to its Geometry.
// Once built it is safe for concurrent readers without synchronization.
type ElevationGrid struct {
	geom Geometry
	grid *Grid
}

// NewElevationGrid builds an ElevationGrid from [row][col] values.
// The input is deep-copied; cells matching the no-data predicate are
// masked out.
//
// Errors:
//   - ErrEmptyGrid, ErrNonRectangular: malformed values.
//   - ErrInvalidDimensions, ErrInvalidResolution: invalid geom.
//   - ErrDimensionMismatch: len(values) != geom.Rows or row length != geom.Cols.
//
// Complexity: O(W×H) time and memory.
func NewElevationGrid(values [][]float64, geom Geometry, opts ...Option) (*ElevationGrid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	if err := geom.Validate(); err != nil {
		return nil, err
	}
	if len(values) != geom.Rows || w != geom.Cols {
		return nil, fmt.Errorf("values %dx%d vs geometry %dx%d: %w",
			w, len(values), geom.Cols, geom.Rows, ErrDimensionMismatch)
	}

	o := gatherOptions(opts)
	g, err := NewGrid(geom.Rows, geom.Cols, o.noData)
	if err != nil {
		return nil, err
	}
	for r, row := range values {
		for c, v := range row {
			g.store(r*g.c+c, v)
		}
	}

	return &ElevationGrid{geom: geom, grid: g}, nil
}

// NewElevationGridFlat builds an ElevationGrid from a row-major buffer of
// length geom.Rows*geom.Cols. The buffer is copied.
func NewElevationGridFlat(data []float64, geom Geometry, opts ...Option) (*ElevationGrid, error) {
	if err := geom.Validate(); err != nil {
		return nil, err
	}
	if len(data) != geom.Rows*geom.Cols {
		return nil, fmt.Errorf("len(data)=%d vs geometry %dx%d: %w",
			len(data), geom.Cols, geom.Rows, ErrDimensionMismatch)
	}

	o := gatherOptions(opts)
	g, err := NewGrid(geom.Rows, geom.Cols, o.noData)
	if err != nil {
		return nil, err
	}
	for i, v := range data {
		g.store(i, v)
	}

	return &ElevationGrid{geom: geom, grid: g}, nil
}

// IsZero reports whether e is nil or was not built by a constructor.
func (e *ElevationGrid) IsZero() bool { return e == nil || e.grid == nil }

// Geometry returns the registered placement of the grid.
func (e *ElevationGrid) Geometry() Geometry { return e.geom }

// Rows returns the number of rows.
func (e *ElevationGrid) Rows() int { return e.geom.Rows }

// Cols returns the number of columns.
func (e *ElevationGrid) Cols() int { return e.geom.Cols }

// NoData returns the sentinel reported for missing cells.
func (e *ElevationGrid) NoData() float64 { return e.grid.noData }

// Sample is the bounds-checked random-access reader: it returns the
// elevation at (col,row), or the no-data sentinel for missing cells.
// Note the (col,row) argument order of the sampler contract.
//
// Errors:
//   - ErrOutOfRange when 0 ≤ col < Cols and 0 ≤ row < Rows does not hold.
func (e *ElevationGrid) Sample(col, row int) (float64, error) {
	return e.grid.At(row, col)
}

// IsNoData reports whether (col,row) is missing or outside the grid.
func (e *ElevationGrid) IsNoData(col, row int) bool {
	return e.grid.IsNoData(row, col)
}

// IsNoDataValue applies the grid's no-data predicate to an arbitrary value.
func (e *ElevationGrid) IsNoDataValue(v float64) bool {
	return IsNoDataValue(v, e.grid.noData)
}

// RawRowView returns row i of the elevation buffer without copying.
// Missing cells hold the sentinel. The slice must not be modified.
func (e *ElevationGrid) RawRowView(i int) []float64 { return e.grid.RawRowView(i) }

// RawMaskView returns the validity mask of row i without copying.
// The slice must not be modified.
func (e *ElevationGrid) RawMaskView(i int) []bool { return e.grid.RawMaskView(i) }

// Grid returns a mutable deep copy of the elevation values.
func (e *ElevationGrid) Grid() *Grid { return e.grid.Clone() }

// Summarize reports statistics over the valid elevations.
func (e *ElevationGrid) Summarize() Summary { return Summarize(e.grid) }
