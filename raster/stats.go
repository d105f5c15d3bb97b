// SPDX-License-Identifier: MIT

package raster

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the value distribution of a grid.
// Cells counts every cell; Valid counts cells that hold a finite value;
// NoData counts masked cells. Non-finite values that are not no-data
// (±Inf from a degenerate stencil) are excluded from both statistics
// and Valid.
type Summary struct {
	Cells, Valid, NoData int
	Min, Max, Mean       float64
	StdDev               float64 // sample standard deviation; NaN when Valid < 2
}

// Summarize computes a Summary of g. Statistics are NaN when g holds no
// finite value.
// Complexity: O(r*c) time, O(valid) memory.
func Summarize(g *Grid) Summary {
	s := Summary{Cells: g.r * g.c}
	vals := make([]float64, 0, len(g.data))
	for i, ok := range g.valid {
		if !ok {
			s.NoData++
			continue
		}
		if v := g.data[i]; !math.IsInf(v, 0) {
			vals = append(vals, v)
		}
	}
	s.Valid = len(vals)
	if s.Valid == 0 {
		nan := math.NaN()
		s.Min, s.Max, s.Mean, s.StdDev = nan, nan, nan, nan

		return s
	}

	s.Min = floats.Min(vals)
	s.Max = floats.Max(vals)
	if s.Valid < 2 {
		s.Mean, s.StdDev = vals[0], math.NaN()

		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(vals, nil)

	return s
}
