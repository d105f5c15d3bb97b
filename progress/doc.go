// SPDX-License-Identifier: MIT

// Package progress defines the begin/tick/done event sink through which
// long-running grid kernels report work and receive cooperative
// cancellation requests.
//
// A kernel calls Begin(total) once, Worked(n) as units complete, and Done()
// at the end (also when it stops early). Between units it polls Canceled();
// a true answer makes it stop at the next unit boundary.
//
// Implementations:
//
//   - Nop: discards events, never cancels.
//   - Counter: lock-free counters plus a cancellation latch; safe for
//     concurrent use, handy in tests and for polling from another goroutine.
//   - LogSink: reports start, every 10% and completion through log/slog.
package progress
