// SPDX-License-Identifier: MIT

package curvature

import "math"

// Stencil is the 3×3 neighborhood of a cell, indexed [dr+1][dc+1]:
// Stencil[1][1] is the center, Stencil[0][1] the cell one row above,
// Stencil[1][2] the cell one column to the right.
type Stencil [3][3]float64

// Partials holds the finite-difference derivatives of one stencil.
// P = Sx² + Sy² and Q = P + 1.
type Partials struct {
	Sx, Sy        float64
	Sxx, Syy, Sxy float64
	P, Q          float64
}

// Curvatures holds the three measures at one cell.
type Curvatures struct {
	Profile, Planar, Tangential float64
}

// slope computes the first-order partials, which is all a flat cell needs.
func (s *Stencil) slope(dx, dy float64) (sx, sy, p float64) {
	sx = 0.5 * (s[2][1] - s[0][1]) / dx
	sy = 0.5 * (s[1][2] - s[1][0]) / dy
	p = sx*sx + sy*sy

	return sx, sy, p
}

// Derivatives returns every partial of s for cell sizes dx (rows) and dy
// (columns).
func Derivatives(s Stencil, dx, dy float64) Partials {
	sx, sy, p := s.slope(dx, dy)

	return Partials{
		Sx:  sx,
		Sy:  sy,
		Sxx: (s[2][1] - 2*s[1][1] + s[0][1]) / (dx * dx),
		Syy: (s[1][2] - 2*s[1][1] + s[1][0]) / (dy * dy),
		Sxy: 0.25 * ((s[2][2] - s[0][2] - s[2][0] + s[0][0]) / (dx * dy)),
		P:   p,
		Q:   p + 1,
	}
}

// Evaluate computes profile, planar and tangential curvature of s.
// A zero gradient (P == 0 exactly) yields zeros; no other case is guarded.
func Evaluate(s Stencil, dx, dy float64) Curvatures {
	_, _, p := s.slope(dx, dy)
	if p == 0 {
		return Curvatures{}
	}

	return fromPartials(Derivatives(s, dx, dy))
}

func fromPartials(d Partials) Curvatures {
	sx2, sy2 := d.Sx*d.Sx, d.Sy*d.Sy
	cross := 2 * d.Sxy * d.Sx * d.Sy
	contour := d.Sxx*sy2 - cross + d.Syy*sx2

	return Curvatures{
		Profile:    (d.Sxx*sx2 + cross + d.Syy*sy2) / (d.P * math.Pow(d.Q, 1.5)),
		Planar:     contour / math.Pow(d.P, 1.5),
		Tangential: contour / (d.P * math.Sqrt(d.Q)),
	}
}
