// SPDX-License-Identifier: MIT

package curvature

import (
	"fmt"

	"github.com/katalvlaran/geomorph/raster"
)

// Kind selects one of the three curvature measures.
type Kind int

const (
	// Profile is the curvature along the direction of steepest descent;
	// it governs flow acceleration.
	Profile Kind = iota
	// Planar is the curvature of the contour line; it governs flow
	// convergence and divergence.
	Planar
	// Tangential is the curvature normal to the slope, tangent to the
	// contour.
	Tangential
)

// Kinds lists every measure in output order.
func Kinds() []Kind { return []Kind{Profile, Planar, Tangential} }

// String returns the artifact name, e.g. "profile curvature".
func (k Kind) String() string {
	switch k {
	case Profile:
		return "profile curvature"
	case Planar:
		return "planar curvature"
	case Tangential:
		return "tangential curvature"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Code returns the short layer identifier, e.g. "prof_curvature".
func (k Kind) Code() string {
	switch k {
	case Profile:
		return "prof_curvature"
	case Planar:
		return "plan_curvature"
	case Tangential:
		return "tang_curvature"
	default:
		return fmt.Sprintf("kind_%d", int(k))
	}
}

// Result owns the three output grids of a finished run. Every grid has
// the shape and no-data sentinel of the input; Geometry is the input's.
type Result struct {
	Profile, Planar, Tangential *raster.Grid
	Geometry                    raster.Geometry
}

// Grid returns the output grid for k, or nil for an unknown kind.
func (r *Result) Grid(k Kind) *raster.Grid {
	switch k {
	case Profile:
		return r.Profile
	case Planar:
		return r.Planar
	case Tangential:
		return r.Tangential
	default:
		return nil
	}
}

// Coverage wraps the grid for k into a named artifact carrying the input
// geometry and CRS.
func (r *Result) Coverage(k Kind) (*raster.Coverage, error) {
	return raster.BuildCoverage(k.String(), r.Grid(k), r.Geometry)
}

// Coverages returns the three named artifacts in Kinds() order.
func (r *Result) Coverages() ([]*raster.Coverage, error) {
	out := make([]*raster.Coverage, 0, 3)
	for _, k := range Kinds() {
		c, err := r.Coverage(k)
		if err != nil {
			return nil, fmt.Errorf("curvature: %s: %w", k, err)
		}
		out = append(out, c)
	}

	return out, nil
}
