// SPDX-License-Identifier: MIT

package progress

import (
	"log/slog"
	"time"
)

// milestones is the number of evenly spaced progress lines LogSink emits.
const milestones = 10

// LogSink logs progress through a *slog.Logger. Cancellation is delegated
// to an optional inner Sink. Not safe for unsynchronized concurrent
// Worked calls; kernels serialize them.
type LogSink struct {
	logger *slog.Logger
	task   string
	inner  Sink

	total, worked, next int
	start               time.Time
}

var _ Sink = (*LogSink)(nil)

// LogOption configures a LogSink.
type LogOption func(*LogSink)

// WithInner forwards every event to s and takes cancellation from it.
func WithInner(s Sink) LogOption {
	return func(l *LogSink) {
		if s != nil {
			l.inner = s
		}
	}
}

// NewLogSink returns a sink logging task progress to logger
// (slog.Default() when nil).
func NewLogSink(logger *slog.Logger, task string, opts ...LogOption) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	l := &LogSink{logger: logger, task: task, inner: Nop()}
	for _, fn := range opts {
		fn(l)
	}

	return l
}

// Begin logs the task start.
func (l *LogSink) Begin(total int) {
	l.total, l.worked, l.next = total, 0, 1
	l.start = time.Now()
	l.logger.Info("task started", "task", l.task, "total", total)
	l.inner.Begin(total)
}

// Worked logs each crossed 10% milestone.
func (l *LogSink) Worked(n int) {
	l.worked += n
	for l.total > 0 && l.next <= milestones && l.worked*milestones >= l.next*l.total {
		l.logger.Debug("task progress", "task", l.task,
			"percent", l.next*100/milestones, "worked", l.worked, "total", l.total)
		l.next++
	}
	l.inner.Worked(n)
}

// Done logs completion with the elapsed time.
func (l *LogSink) Done() {
	l.logger.Info("task done", "task", l.task,
		"worked", l.worked, "total", l.total, "elapsed", time.Since(l.start))
	l.inner.Done()
}

// Canceled delegates to the inner sink.
func (l *LogSink) Canceled() bool { return l.inner.Canceled() }
