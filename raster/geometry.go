// SPDX-License-Identifier: MIT

package raster

import (
	"fmt"
	"math"
)

// Geometry is the registered placement of a regular grid.
//
// Row 0 is the northern edge and column 0 the western edge, so cell
// (row, col) spans [West+col·XRes, West+(col+1)·XRes] horizontally and
// [North−(row+1)·YRes, North−row·YRes] vertically.
//
// CRS is an opaque identity token (EPSG code, WKT, ...). It is copied to
// every derived artifact and never interpreted here.
type Geometry struct {
	Cols, Rows  int     // grid shape
	XRes, YRes  float64 // cell size along x (columns) and y (rows)
	West, North float64 // coordinates of the north-west corner
	CRS         string  // coordinate reference identity
}

// Validate checks that the shape is positive and the resolution is a
// positive finite number on both axes.
// Returns ErrInvalidDimensions or ErrInvalidResolution (wrapped).
func (g Geometry) Validate() error {
	if g.Cols <= 0 || g.Rows <= 0 {
		return fmt.Errorf("Geometry %dx%d: %w", g.Cols, g.Rows, ErrInvalidDimensions)
	}
	if !positiveFinite(g.XRes) || !positiveFinite(g.YRes) {
		return fmt.Errorf("Geometry res=(%g,%g): %w", g.XRes, g.YRes, ErrInvalidResolution)
	}

	return nil
}

// Bounds returns the outer edges of the grid.
func (g Geometry) Bounds() (west, east, south, north float64) {
	return g.West,
		g.West + float64(g.Cols)*g.XRes,
		g.North - float64(g.Rows)*g.YRes,
		g.North
}

// CellCenter returns the world coordinates of the center of (col, row).
// Indices are not bounds-checked; callers may extrapolate outside the grid.
func (g Geometry) CellCenter(col, row int) (x, y float64) {
	x = g.West + (float64(col)+0.5)*g.XRes
	y = g.North - (float64(row)+0.5)*g.YRes

	return x, y
}

// InBounds reports whether (col,row) lies within the grid.
// Complexity: O(1).
func (g Geometry) InBounds(col, row int) bool {
	return col >= 0 && col < g.Cols && row >= 0 && row < g.Rows
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1) // NaN fails v > 0
}
