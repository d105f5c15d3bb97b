// SPDX-License-Identifier: MIT

package progress

import "sync/atomic"

// Sink receives progress events and answers cancellation polls.
// Kernels running several workers serialize Begin/Worked/Done calls, but
// Canceled may be polled concurrently and must be race-free.
type Sink interface {
	// Begin announces the total number of work units.
	Begin(total int)
	// Worked reports n completed units.
	Worked(n int)
	// Done signals the kernel stopped, either finished or cancelled.
	Done()
	// Canceled reports whether the caller asked the kernel to stop.
	Canceled() bool
}

type nop struct{}

func (nop) Begin(int)      {}
func (nop) Worked(int)     {}
func (nop) Done()          {}
func (nop) Canceled() bool { return false }

// Nop returns a Sink that ignores every event and never cancels.
func Nop() Sink { return nop{} }

// Counter is a Sink backed by atomics. The zero value is ready to use.
type Counter struct {
	total    atomic.Int64
	worked   atomic.Int64
	done     atomic.Bool
	canceled atomic.Bool
}

var _ Sink = (*Counter)(nil)

// Begin records the announced total.
func (c *Counter) Begin(total int) { c.total.Store(int64(total)) }

// Worked adds n to the completed count.
func (c *Counter) Worked(n int) { c.worked.Add(int64(n)) }

// Done marks the run as finished.
func (c *Counter) Done() { c.done.Store(true) }

// Canceled reports whether Cancel has been called.
func (c *Counter) Canceled() bool { return c.canceled.Load() }

// Cancel requests cooperative cancellation. Safe from any goroutine.
func (c *Counter) Cancel() { c.canceled.Store(true) }

// Total returns the announced number of units.
func (c *Counter) Total() int { return int(c.total.Load()) }

// Completed returns the number of units reported so far.
func (c *Counter) Completed() int { return int(c.worked.Load()) }

// Finished reports whether Done was called.
func (c *Counter) Finished() bool { return c.done.Load() }
