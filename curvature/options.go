// SPDX-License-Identifier: MIT

package curvature

import (
	"runtime"

	"github.com/katalvlaran/geomorph/progress"
)

// DefaultWorkers is the number of row workers used when WithWorkers is
// not given: one, i.e. a plain sequential sweep.
const DefaultWorkers = 1

const panicWorkersInvalid = "curvature: WithWorkers: n must be >= 0"

// Option configures Compute.
type Option func(*options)

type options struct {
	workers int           // >= 1 after gatherOptions
	sink    progress.Sink // never nil after gatherOptions
}

// WithWorkers sets how many goroutines share the interior rows.
// n == 0 selects runtime.GOMAXPROCS(0). Panics when n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *options) {
		o.workers = n
		if n == 0 {
			o.workers = runtime.GOMAXPROCS(0)
		}
	}
}

// WithProgress routes begin/worked/done events and cancellation polls
// through s. A nil s is ignored.
func WithProgress(s progress.Sink) Option {
	return func(o *options) {
		if s != nil {
			o.sink = s
		}
	}
}

func gatherOptions(opts []Option) options {
	o := options{workers: DefaultWorkers, sink: progress.Nop()}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
