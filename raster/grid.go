// SPDX-License-Identifier: MIT

// Grid - dense row-major storage with an explicit validity mask.
//
// Purpose:
//   - Cache-friendly row-major buffer with the index formula row*cols + col.
//   - Safe public surface: At/Set return errors instead of panicking.
//   - No-data is a mask bit, not a reserved value; the sentinel is only
//     what raw readers see for invalid cells.
//
// Complexity quicksheet:
//   - NewGrid: O(r*c); At/Set/Value: O(1); Clone: O(r*c).

package raster

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// method tags used in error wrappers
const (
	ctxAt        = "At"
	ctxSet       = "Set"
	ctxSetNoData = "SetNoData"
)

// DefaultNoData is the sentinel used when none is configured.
var DefaultNoData = math.NaN()

// IsNoDataValue reports whether v marks a missing measurement under the
// given sentinel. NaN is always missing; otherwise v must equal sentinel.
func IsNoDataValue(v, sentinel float64) bool {
	if math.IsNaN(v) {
		return true
	}

	return !math.IsNaN(sentinel) && v == sentinel
}

// Grid is a concrete row-major grid of float64 cells.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c (offset = row*c + col).
//   - valid is the parallel mask; a false entry means no-data and the
//     matching data slot holds noData.
type Grid struct {
	r, c   int
	data   []float64
	valid  []bool
	noData float64
}

// NewGrid allocates an r×c grid with every cell set to no-data.
// Returns ErrInvalidDimensions when rows or cols is not positive.
// Complexity: O(r*c) time and memory.
func NewGrid(rows, cols int, noData float64) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	g := &Grid{
		r:      rows,
		c:      cols,
		data:   make([]float64, rows*cols),
		valid:  make([]bool, rows*cols), // zero value: all no-data
		noData: noData,
	}
	for i := range g.data {
		g.data[i] = noData
	}

	return g, nil
}

// Rows returns the row count.
func (g *Grid) Rows() int { return g.r }

// Cols returns the column count.
func (g *Grid) Cols() int { return g.c }

// Shape packs Rows() and Cols() into a single call.
func (g *Grid) Shape() (rows, cols int) { return g.r, g.c }

// NoData returns the sentinel reported for invalid cells.
func (g *Grid) NoData() float64 { return g.noData }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (g *Grid) indexOf(row, col int) (int, error) {
	if row < 0 || row >= g.r || col < 0 || col >= g.c {
		return 0, ErrOutOfRange
	}

	return row*g.c + col, nil
}

// At returns the raw value at (row, col): the stored number for valid
// cells and the no-data sentinel otherwise.
//
// Errors:
//   - ErrOutOfRange when out of bounds (wrapped with coordinates).
//
// Complexity: O(1).
func (g *Grid) At(row, col int) (float64, error) {
	off, err := g.indexOf(row, col)
	if err != nil {
		return g.noData, gridErrorf(ctxAt, row, col, err)
	}

	return g.data[off], nil
}

// Value is the optional-style reader: ok is false for no-data cells and
// for coordinates outside the grid.
func (g *Grid) Value(row, col int) (v float64, ok bool) {
	off, err := g.indexOf(row, col)
	if err != nil || !g.valid[off] {
		return g.noData, false
	}

	return g.data[off], true
}

// Set stores v at (row, col). The cell becomes valid unless v itself is a
// no-data value under the grid's sentinel, in which case it is cleared.
//
// Errors:
//   - ErrOutOfRange for bounds (wrapped with coordinates).
func (g *Grid) Set(row, col int, v float64) error {
	off, err := g.indexOf(row, col)
	if err != nil {
		return gridErrorf(ctxSet, row, col, err)
	}
	g.store(off, v)

	return nil
}

// SetNoData clears (row, col) back to no-data.
func (g *Grid) SetNoData(row, col int) error {
	off, err := g.indexOf(row, col)
	if err != nil {
		return gridErrorf(ctxSetNoData, row, col, err)
	}
	g.data[off] = g.noData
	g.valid[off] = false

	return nil
}

// IsNoData reports whether (row, col) holds no value.
// Out-of-range coordinates count as no-data.
func (g *Grid) IsNoData(row, col int) bool {
	_, ok := g.Value(row, col)

	return !ok
}

// store is the unchecked write shared by Set and bulk ingestion.
func (g *Grid) store(off int, v float64) {
	if IsNoDataValue(v, g.noData) {
		g.data[off] = g.noData
		g.valid[off] = false

		return
	}
	g.data[off] = v
	g.valid[off] = true
}

// ValidCount returns the number of cells holding a value.
// Complexity: O(r*c).
func (g *Grid) ValidCount() int {
	n := 0
	for _, ok := range g.valid {
		if ok {
			n++
		}
	}

	return n
}

// Clone returns a deep copy with independent buffers.
// Complexity: O(r*c).
func (g *Grid) Clone() *Grid {
	cp := &Grid{
		r:      g.r,
		c:      g.c,
		data:   make([]float64, len(g.data)),
		valid:  make([]bool, len(g.valid)),
		noData: g.noData,
	}
	copy(cp.data, g.data)
	copy(cp.valid, g.valid)

	return cp
}

// Values returns a freshly allocated [row][col] copy of the raw values,
// no-data cells holding the sentinel.
func (g *Grid) Values() [][]float64 {
	out := make([][]float64, g.r)
	for i := 0; i < g.r; i++ {
		out[i] = make([]float64, g.c)
		copy(out[i], g.data[i*g.c:(i+1)*g.c])
	}

	return out
}

// ToDense copies the raw values into a gonum matrix for downstream
// linear-algebra work. No-data cells carry the sentinel.
func (g *Grid) ToDense() *mat.Dense {
	cp := make([]float64, len(g.data))
	copy(cp, g.data)

	return mat.NewDense(g.r, g.c, cp)
}

// String renders the grid row by row for diagnostics; no-data cells are
// printed as "·". Not for hot paths.
func (g *Grid) String() string {
	var b strings.Builder
	for i := 0; i < g.r; i++ {
		b.WriteString("[")
		for j := 0; j < g.c; j++ {
			off := i*g.c + j
			if g.valid[off] {
				b.WriteString(fmt.Sprintf("%g", g.data[off]))
			} else {
				b.WriteString("·")
			}
			if j+1 < g.c {
				b.WriteString(", ")
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}

// RawRowView returns the backing slice of row i without copying, in the
// spirit of mat.Dense.RawRowView. Callers must not modify it and must pass
// 0 <= i < Rows().
func (g *Grid) RawRowView(i int) []float64 { return g.data[i*g.c : (i+1)*g.c] }

// RawMaskView returns the backing validity slice of row i; true marks a
// cell holding a value. Same aliasing rules as RawRowView.
func (g *Grid) RawMaskView(i int) []bool { return g.valid[i*g.c : (i+1)*g.c] }
