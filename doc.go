// SPDX-License-Identifier: MIT

// Package geomorph is a small toolkit for geomorphological analysis of
// digital elevation models.
//
// What is geomorph?
//
//	A pure-Go, cgo-free set of packages that turns a dense elevation grid
//	into derived terrain maps:
//		• raster   : grids with explicit no-data masks, geometry, sampling,
//		              named coverages and summary statistics
//		• curvature: profile, planar and tangential curvature from 3×3
//		              finite-difference stencils, sequential or row-parallel
//		• progress : begin/tick/done sinks with cooperative cancellation
//
// Quick example:
//
//	elev, _ := raster.NewElevationGrid(values, raster.Geometry{
//		Cols: 512, Rows: 512, XRes: 10, YRes: 10, CRS: "EPSG:32632",
//	}, raster.WithNoData(-9999))
//	res, err := curvature.Compute(ctx, elev, curvature.WithWorkers(0))
//	if errors.Is(err, curvature.ErrCanceled) {
//		// nothing was produced
//	}
//	covs, _ := res.Coverages() // "profile curvature", "planar curvature", ...
//
// Reading and writing raster file formats and CRS transforms are left to
// the caller.
//
//	go get github.com/katalvlaran/geomorph
package geomorph
