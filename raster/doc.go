// SPDX-License-Identifier: MIT

// Package raster provides the dense grid primitives consumed and produced
// by the terrain analysis kernels of geomorph.
//
// What:
//
//   - Geometry describes a regular grid: shape, cell resolution, the
//     north-west origin and an opaque CRS identity token.
//   - Grid is a row-major float64 buffer with a parallel validity mask,
//     so "no value here" is tracked explicitly instead of by comparing
//     against a reserved number.
//   - ElevationGrid is the immutable input of the kernels: a Grid bound to
//     a Geometry with bounds-checked, sentinel-aware sampling.
//   - Coverage is a named output artifact (grid + geometry + CRS).
//   - Summarize reports count/min/max/mean/stddev over valid cells.
//
// No-data:
//
//	Every grid carries a no-data sentinel (DefaultNoData is NaN). The
//	sentinel is what raw readers (At, Sample) return for missing cells;
//	validity itself lives in the mask. IsNoDataValue is the single
//	predicate used when deciding whether an ingested value is missing.
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular: malformed [][]float64 input.
//   - ErrInvalidDimensions, ErrInvalidResolution: bad Geometry.
//   - ErrDimensionMismatch: data shape differs from Geometry.
//   - ErrOutOfRange: index outside the grid.
//   - ErrNilGrid, ErrEmptyName: bad Coverage builder arguments.
//
// Complexity:
//
//   - NewGrid, Clone, NewElevationGrid: O(W×H) time and memory.
//   - At, Set, Value, Sample: O(1).
//   - Summarize: O(W×H).
package raster
