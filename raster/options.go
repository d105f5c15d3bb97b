// SPDX-License-Identifier: MIT

package raster

// Option configures ElevationGrid construction.
type Option func(*options)

type options struct {
	noData float64 // DefaultNoData
}

// WithNoData sets the sentinel that marks missing cells in the ingested
// values (e.g. -9999 for most ASCII grids). NaN is always treated as
// missing regardless of the sentinel.
func WithNoData(v float64) Option {
	return func(o *options) { o.noData = v }
}

func gatherOptions(opts []Option) options {
	o := options{noData: DefaultNoData}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
