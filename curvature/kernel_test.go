package curvature_test

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geomorph/curvature"
	"github.com/katalvlaran/geomorph/progress"
	"github.com/katalvlaran/geomorph/raster"
)

const noData = -9999.0

//----------------------------------------------------------------------------//
// helpers
//----------------------------------------------------------------------------//

func newElevation(t testing.TB, values [][]float64, xres, yres float64) *raster.ElevationGrid {
	t.Helper()
	geom := raster.Geometry{Cols: len(values[0]), Rows: len(values), XRes: xres, YRes: yres, CRS: "EPSG:32632"}
	e, err := raster.NewElevationGrid(values, geom, raster.WithNoData(noData))
	require.NoError(t, err)

	return e
}

func fill(rows, cols int, f func(r, c int) float64) [][]float64 {
	out := make([][]float64, rows)
	for r := range out {
		out[r] = make([]float64, cols)
		for c := range out[r] {
			out[r][c] = f(r, c)
		}
	}

	return out
}

// randomTerrain is a deterministic rough surface with ~5% no-data cells.
func randomTerrain(rows, cols int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))

	return fill(rows, cols, func(r, c int) float64 {
		if rng.Float64() < 0.05 {
			return noData
		}

		return 100 + 10*math.Sin(float64(r)/7)*math.Cos(float64(c)/5) + rng.Float64()
	})
}

func gridsOf(res *curvature.Result) [][][]float64 {
	return [][][]float64{res.Profile.Values(), res.Planar.Values(), res.Tangential.Values()}
}

// cancelAfter cancels itself once n rows were reported.
type cancelAfter struct {
	progress.Counter
	n int
}

func (s *cancelAfter) Worked(n int) {
	s.Counter.Worked(n)
	if s.Completed() >= s.n {
		s.Cancel()
	}
}

//----------------------------------------------------------------------------//
// Contract
//----------------------------------------------------------------------------//

// TestCompute_NilInput fails fast without touching the sink.
func TestCompute_NilInput(t *testing.T) {
	var sink progress.Counter
	res, err := curvature.Compute(context.Background(), nil, curvature.WithProgress(&sink))
	require.ErrorIs(t, err, curvature.ErrInvalidInput)
	require.Nil(t, res)
	require.Equal(t, 0, sink.Total())
	require.False(t, sink.Finished())

	res, err = curvature.Compute(context.Background(), &raster.ElevationGrid{}, curvature.WithProgress(&sink))
	require.ErrorIs(t, err, curvature.ErrInvalidInput)
	require.Nil(t, res)
	require.False(t, sink.Finished())
}

// TestCompute_ShapeAndSentinel: outputs mirror the input shape and sentinel.
func TestCompute_ShapeAndSentinel(t *testing.T) {
	e := newElevation(t, randomTerrain(6, 9, 1), 10, 10)
	res, err := curvature.Compute(context.Background(), e)
	require.NoError(t, err)
	require.Equal(t, e.Geometry(), res.Geometry)
	for _, k := range curvature.Kinds() {
		g := res.Grid(k)
		r, c := g.Shape()
		require.Equal(t, 6, r, k.String())
		require.Equal(t, 9, c, k.String())
		require.Equal(t, noData, g.NoData())
	}
}

// TestCompute_BorderInvariant: every border cell is no-data in all outputs.
func TestCompute_BorderInvariant(t *testing.T) {
	shapes := []struct{ rows, cols int }{{3, 3}, {4, 7}, {10, 5}, {3, 20}}
	for _, sh := range shapes {
		e := newElevation(t, randomTerrain(sh.rows, sh.cols, 2), 1, 1)
		res, err := curvature.Compute(context.Background(), e)
		require.NoError(t, err)
		for _, k := range curvature.Kinds() {
			g := res.Grid(k)
			for r := 0; r < sh.rows; r++ {
				for c := 0; c < sh.cols; c++ {
					if r == 0 || c == 0 || r == sh.rows-1 || c == sh.cols-1 {
						require.True(t, g.IsNoData(r, c), "%s %dx%d at (%d,%d)", k, sh.rows, sh.cols, r, c)
					}
				}
			}
		}
	}
}

// TestCompute_NoDataCenter: a no-data center stays no-data everywhere.
func TestCompute_NoDataCenter(t *testing.T) {
	values := randomTerrain(12, 12, 3)
	e := newElevation(t, values, 1, 1)
	res, err := curvature.Compute(context.Background(), e)
	require.NoError(t, err)

	for r := 1; r < 11; r++ {
		for c := 1; c < 11; c++ {
			if values[r][c] != noData {
				continue
			}
			for _, k := range curvature.Kinds() {
				require.True(t, res.Grid(k).IsNoData(r, c), "%s at (%d,%d)", k, r, c)
			}
		}
	}
}

// TestCompute_NoDataNeighborParticipates documents that neighbors are not
// checked: the sentinel itself enters the stencil arithmetic.
func TestCompute_NoDataNeighborParticipates(t *testing.T) {
	values := fill(5, 5, func(int, int) float64 { return 10 })
	values[2][3] = noData
	e := newElevation(t, values, 1, 1)

	res, err := curvature.Compute(context.Background(), e)
	require.NoError(t, err)

	require.True(t, res.Profile.IsNoData(2, 3))

	want := curvature.Evaluate(curvature.Stencil{
		{10, 10, 10},
		{10, 10, noData},
		{10, 10, 10},
	}, 1, 1)
	got, ok := res.Profile.Value(2, 2)
	require.True(t, ok)
	require.Equal(t, want.Profile, got)
	require.NotZero(t, got)
}

//----------------------------------------------------------------------------//
// Numeric properties
//----------------------------------------------------------------------------//

// TestCompute_FlatField: constant elevation yields exact zeros.
func TestCompute_FlatField(t *testing.T) {
	e := newElevation(t, fill(6, 8, func(int, int) float64 { return 10 }), 1, 1)
	res, err := curvature.Compute(context.Background(), e)
	require.NoError(t, err)
	for _, k := range curvature.Kinds() {
		for r := 1; r < 5; r++ {
			for c := 1; c < 7; c++ {
				v, ok := res.Grid(k).Value(r, c)
				require.True(t, ok)
				require.Equal(t, 0.0, v, "%s at (%d,%d)", k, r, c)
			}
		}
	}
}

// TestCompute_TiltedPlane: a plane has non-zero slope but zero curvature.
func TestCompute_TiltedPlane(t *testing.T) {
	planes := map[string]func(r, c int) float64{
		"AlongCols": func(_, c int) float64 { return float64(c) },
		"AlongRows": func(r, _ int) float64 { return float64(r) },
	}
	for name, f := range planes {
		t.Run(name, func(t *testing.T) {
			e := newElevation(t, fill(5, 6, f), 1, 1)
			res, err := curvature.Compute(context.Background(), e)
			require.NoError(t, err)
			for _, k := range curvature.Kinds() {
				for r := 1; r < 4; r++ {
					for c := 1; c < 5; c++ {
						v, ok := res.Grid(k).Value(r, c)
						require.True(t, ok)
						require.Equal(t, 0.0, v, "%s at (%d,%d)", k, r, c)
					}
				}
			}
		})
	}
}

// TestCompute_MatchesEvaluate cross-checks every interior cell against the
// per-cell formula under anisotropic resolution: XRes scales row
// differences, YRes column differences.
func TestCompute_MatchesEvaluate(t *testing.T) {
	const dx, dy = 30.0, 12.5
	values := randomTerrain(9, 11, 4)
	e := newElevation(t, values, dx, dy)
	res, err := curvature.Compute(context.Background(), e)
	require.NoError(t, err)

	for r := 1; r < 8; r++ {
		for c := 1; c < 10; c++ {
			if values[r][c] == noData {
				continue
			}
			var s curvature.Stencil
			for i := 0; i < 3; i++ {
				for j := 0; j < 3; j++ {
					s[i][j] = values[r-1+i][c-1+j]
				}
			}
			want := curvature.Evaluate(s, dx, dy)
			p, _ := res.Profile.Value(r, c)
			pl, _ := res.Planar.Value(r, c)
			tg, _ := res.Tangential.Value(r, c)
			require.Equal(t, want, curvature.Curvatures{Profile: p, Planar: pl, Tangential: tg}, "(%d,%d)", r, c)
		}
	}
}

// TestCompute_Idempotent: two runs over one input are bit-identical.
func TestCompute_Idempotent(t *testing.T) {
	e := newElevation(t, randomTerrain(20, 17, 5), 5, 5)
	a, err := curvature.Compute(context.Background(), e)
	require.NoError(t, err)
	b, err := curvature.Compute(context.Background(), e)
	require.NoError(t, err)

	if diff := cmp.Diff(gridsOf(a), gridsOf(b), cmpopts.EquateNaNs()); diff != "" {
		t.Fatalf("second run differs (-first +second):\n%s", diff)
	}
}

//----------------------------------------------------------------------------//
// Progress & cancellation
//----------------------------------------------------------------------------//

// TestCompute_ProgressTicks: Begin(rows-2), one tick per row, Done.
func TestCompute_ProgressTicks(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
		want       int
	}{
		{"Regular", 7, 4, 5},
		{"NarrowCols", 6, 2, 4},
		{"TwoRows", 2, 5, 0},
		{"OneCell", 1, 1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var sink progress.Counter
			e := newElevation(t, fill(tc.rows, tc.cols, func(r, c int) float64 { return float64(r * c) }), 1, 1)
			res, err := curvature.Compute(context.Background(), e, curvature.WithProgress(&sink))
			require.NoError(t, err)
			require.Equal(t, tc.want, sink.Total())
			require.Equal(t, tc.want, sink.Completed())
			require.True(t, sink.Finished())
			if tc.rows < 3 || tc.cols < 3 {
				require.Equal(t, 0, res.Profile.ValidCount())
			}
		})
	}
}

// TestCompute_CancelAfterFirstRow: the second row's poll observes the
// request and nothing is returned.
func TestCompute_CancelAfterFirstRow(t *testing.T) {
	sink := &cancelAfter{n: 1}
	e := newElevation(t, randomTerrain(10, 10, 6), 1, 1)

	res, err := curvature.Compute(context.Background(), e, curvature.WithProgress(sink))
	require.ErrorIs(t, err, curvature.ErrCanceled)
	require.Nil(t, res)
	require.Equal(t, 8, sink.Total())
	require.Equal(t, 1, sink.Completed())
	require.True(t, sink.Finished())
}

// TestCompute_CancelDuringLastRow: a request raised while the only row runs
// is caught by the final poll.
func TestCompute_CancelDuringLastRow(t *testing.T) {
	sink := &cancelAfter{n: 1}
	e := newElevation(t, randomTerrain(3, 8, 7), 1, 1)

	res, err := curvature.Compute(context.Background(), e, curvature.WithProgress(sink))
	require.ErrorIs(t, err, curvature.ErrCanceled)
	require.Nil(t, res)
	require.Equal(t, 1, sink.Completed())
}

// TestCompute_ContextCanceled: a dead context stops before the first row
// and the error matches both ErrCanceled and context.Canceled.
func TestCompute_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var sink progress.Counter
	e := newElevation(t, randomTerrain(10, 10, 8), 1, 1)
	res, err := curvature.Compute(ctx, e, curvature.WithProgress(&sink))
	require.Nil(t, res)
	require.ErrorIs(t, err, curvature.ErrCanceled)
	require.True(t, errors.Is(err, context.Canceled))
	require.Equal(t, 0, sink.Completed())
	require.True(t, sink.Finished())
}

//----------------------------------------------------------------------------//
// Row-parallel execution
//----------------------------------------------------------------------------//

// TestCompute_ParallelMatchesSequential: any worker count reproduces the
// sequential grids bit for bit and reports every row exactly once.
func TestCompute_ParallelMatchesSequential(t *testing.T) {
	e := newElevation(t, randomTerrain(37, 53, 9), 2, 3)
	seq, err := curvature.Compute(context.Background(), e)
	require.NoError(t, err)

	for _, w := range []int{0, 2, 3, 8, 64} {
		var sink progress.Counter
		par, err := curvature.Compute(context.Background(), e,
			curvature.WithWorkers(w), curvature.WithProgress(&sink))
		require.NoError(t, err, "workers=%d", w)
		if diff := cmp.Diff(gridsOf(seq), gridsOf(par), cmpopts.EquateNaNs()); diff != "" {
			t.Fatalf("workers=%d differs (-seq +par):\n%s", w, diff)
		}
		require.Equal(t, 35, sink.Completed(), "workers=%d", w)
	}
}

// TestCompute_ParallelCancel: cancellation reaches every worker and no
// result escapes.
func TestCompute_ParallelCancel(t *testing.T) {
	sink := &cancelAfter{n: 5}
	e := newElevation(t, randomTerrain(120, 40, 10), 1, 1)

	res, err := curvature.Compute(context.Background(), e,
		curvature.WithWorkers(4), curvature.WithProgress(sink))
	require.ErrorIs(t, err, curvature.ErrCanceled)
	require.Nil(t, res)
	require.Less(t, sink.Completed(), 118)
	require.True(t, sink.Finished())
}

// TestWithWorkersPanics guards the programmer-error path.
func TestWithWorkersPanics(t *testing.T) {
	require.PanicsWithValue(t, "curvature: WithWorkers: n must be >= 0", func() {
		curvature.WithWorkers(-1)
	})
}
