// SPDX-License-Identifier: MIT

package raster

import "fmt"

// Coverage is a named output artifact: a grid plus the geometry (and CRS
// token) it is registered to.
type Coverage struct {
	Name     string
	Geometry Geometry
	Grid     *Grid
}

// BuildCoverage wraps g and geom into a named artifact. The grid is not
// copied; ownership moves to the coverage.
//
// Errors:
//   - ErrEmptyName, ErrNilGrid.
//   - ErrDimensionMismatch when g's shape differs from geom.
func BuildCoverage(name string, g *Grid, geom Geometry) (*Coverage, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	if g.r != geom.Rows || g.c != geom.Cols {
		return nil, fmt.Errorf("coverage %q: grid %dx%d vs geometry %dx%d: %w",
			name, g.c, g.r, geom.Cols, geom.Rows, ErrDimensionMismatch)
	}

	return &Coverage{Name: name, Geometry: geom, Grid: g}, nil
}

// String returns a one-line description for logs.
func (c *Coverage) String() string {
	return fmt.Sprintf("%s [%dx%d res=(%g,%g) crs=%q]",
		c.Name, c.Geometry.Cols, c.Geometry.Rows, c.Geometry.XRes, c.Geometry.YRes, c.Geometry.CRS)
}
