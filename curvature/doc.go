// SPDX-License-Identifier: MIT

// Package curvature estimates profile, planar and tangential curvature of
// a terrain surface from a dense elevation grid.
//
// What:
//
//	Compute walks every interior cell of a raster.ElevationGrid, samples
//	the 3×3 stencil around it and combines first- and second-order
//	finite-difference partials into three curvature measures:
//
//	  sx  = (e[r+1][c] − e[r−1][c]) / 2dx      sy  = (e[r][c+1] − e[r][c−1]) / 2dy
//	  sxx = (e[r+1][c] − 2e + e[r−1][c]) / dx² syy = (e[r][c+1] − 2e + e[r][c−1]) / dy²
//	  sxy = (e[r+1][c+1] − e[r−1][c+1] − e[r+1][c−1] + e[r−1][c−1]) / 4dxdy
//	  p   = sx² + sy², q = p + 1
//
//	  planar     = (sxx·sy² − 2·sxy·sx·sy + syy·sx²) / p^1.5
//	  tangential = (sxx·sy² − 2·sxy·sx·sy + syy·sx²) / (p·√q)
//	  profile    = (sxx·sx² + 2·sxy·sx·sy + syy·sy²) / (p·q^1.5)
//
//	A perfectly flat stencil (p == 0) yields 0 for all three; that is the
//	only numeric guard. Nearly flat cells may produce huge or ±Inf values.
//
// No-data & borders:
//
//   - Border cells have no full stencil and are always no-data.
//   - A no-data center leaves all three outputs no-data.
//   - Neighbors are used as stored, sentinel included: a no-data neighbor
//     participates in the arithmetic. Pre-mask the input if that matters.
//
// Progress & cancellation:
//
//	Compute reports Begin(rows−2), one Worked(1) per finished row and
//	Done() to the configured progress.Sink, and polls ctx and
//	Sink.Canceled once per row. A cancelled run returns a nil Result and
//	an error matching ErrCanceled; no partial grids escape.
//
// Concurrency:
//
//	WithWorkers(n) splits the interior rows into disjoint ranges computed
//	in parallel. Output is bit-identical to the sequential run.
//
// Complexity: O(W×H) time, 3·W×H output memory.
package curvature
