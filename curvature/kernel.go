// SPDX-License-Identifier: MIT

package curvature

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/geomorph/progress"
	"github.com/katalvlaran/geomorph/raster"
)

// Compute estimates the three curvature grids of elev.
//
// Steps:
//  1. Reject a nil or zero-value elev with ErrInvalidInput.
//  2. Allocate three all-no-data grids shaped like elev.
//  3. For every interior row (in parallel ranges when WithWorkers > 1):
//     poll cancellation, evaluate each interior cell with a valid center,
//     report Worked(1).
//  4. Poll cancellation once more; a late request still discards the run.
//
// Returns:
//   - (*Result, nil) with grids owned by the caller.
//   - (nil, ErrInvalidInput) for a nil or unset grid.
//   - (nil, err) with errors.Is(err, ErrCanceled) after cancellation.
//
// Complexity: O(W×H) time, O(W×H) memory.
func Compute(ctx context.Context, elev *raster.ElevationGrid, opts ...Option) (*Result, error) {
	if elev.IsZero() {
		return nil, ErrInvalidInput
	}
	if ctx == nil {
		ctx = context.Background()
	}
	o := gatherOptions(opts)
	geom := elev.Geometry()

	var (
		out [3]*raster.Grid
		err error
	)
	for i := range out {
		if out[i], err = raster.NewGrid(geom.Rows, geom.Cols, elev.NoData()); err != nil {
			return nil, err
		}
	}
	k := &kernel{
		elev: elev,
		prof: out[Profile], plan: out[Planar], tang: out[Tangential],
		cols: geom.Cols,
		dx:   geom.XRes, dy: geom.YRes,
	}

	// Interior rows are [1, rows-1); none exist below three rows.
	lo, hi := 1, max(geom.Rows-1, 1)
	workers := min(o.workers, hi-lo)

	log := Logger()
	log.Debug("curvature: start",
		"cols", geom.Cols, "rows", geom.Rows, "xres", geom.XRes, "yres", geom.YRes, "workers", workers)
	start := time.Now()

	rep := &reporter{sink: o.sink}
	rep.sink.Begin(hi - lo)
	err = sweep(ctx, lo, hi, workers, rep, k.row)
	rep.sink.Done()
	if err == nil {
		err = rep.check(ctx) // cancellation requested during the last row
	}
	if err != nil {
		log.Debug("curvature: canceled", "err", err, "elapsed", time.Since(start))

		return nil, err
	}

	log.Info("curvature: done",
		"cols", geom.Cols, "rows", geom.Rows, "elapsed", time.Since(start))

	return &Result{
		Profile:    out[Profile],
		Planar:     out[Planar],
		Tangential: out[Tangential],
		Geometry:   geom,
	}, nil
}

// kernel binds the input and the output grids of one run.
type kernel struct {
	elev             *raster.ElevationGrid
	prof, plan, tang *raster.Grid
	cols             int
	dx, dy           float64
}

// row evaluates every interior cell of row r. It reads rows r-1..r+1 of
// the shared input and writes only row r of the outputs.
func (k *kernel) row(r int) {
	up, mid, down := k.elev.RawRowView(r-1), k.elev.RawRowView(r), k.elev.RawRowView(r+1)
	valid := k.elev.RawMaskView(r)
	for c := 1; c < k.cols-1; c++ {
		// Only the center is checked; neighbors enter the arithmetic as stored.
		if !valid[c] {
			continue
		}
		s := Stencil{
			{up[c-1], up[c], up[c+1]},
			{mid[c-1], mid[c], mid[c+1]},
			{down[c-1], down[c], down[c+1]},
		}
		v := Evaluate(s, k.dx, k.dy)
		// Indices are interior by construction; Set cannot fail.
		_ = k.prof.Set(r, c, v.Profile)
		_ = k.plan.Set(r, c, v.Planar)
		_ = k.tang.Set(r, c, v.Tangential)
	}
}

// reporter serializes sink calls from concurrent workers and latches the
// first observed cancellation.
type reporter struct {
	mu      sync.Mutex
	sink    progress.Sink
	stopped atomic.Bool
}

// check returns a non-nil error once cancellation has been requested
// through ctx or the sink.
func (r *reporter) check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		r.stopped.Store(true)

		return fmt.Errorf("%w: %w", ErrCanceled, err)
	}
	if r.stopped.Load() {
		return ErrCanceled
	}
	r.mu.Lock()
	canceled := r.sink.Canceled()
	r.mu.Unlock()
	if canceled {
		r.stopped.Store(true)

		return ErrCanceled
	}

	return nil
}

func (r *reporter) worked() {
	r.mu.Lock()
	r.sink.Worked(1)
	r.mu.Unlock()
}

// sweep runs fn over rows [lo, hi), polling cancellation before every row.
// With more than one worker the range is cut into contiguous disjoint
// chunks, one goroutine each.
func sweep(ctx context.Context, lo, hi, workers int, rep *reporter, fn func(r int)) error {
	run := func(ctx context.Context, from, to int) error {
		for r := from; r < to; r++ {
			if err := rep.check(ctx); err != nil {
				return err
			}
			fn(r)
			rep.worked()
		}

		return nil
	}
	if workers <= 1 {
		return run(ctx, lo, hi)
	}

	g, gctx := errgroup.WithContext(ctx)
	chunk := (hi - lo + workers - 1) / workers
	for from := lo; from < hi; from += chunk {
		from := from
		to := min(from+chunk, hi)
		g.Go(func() error { return run(gctx, from, to) })
	}

	return g.Wait()
}
