// SPDX-License-Identifier: MIT

package curvature

import "errors"

var (
	// ErrInvalidInput indicates a nil or unset elevation grid. Returned
	// before any work or progress event.
	ErrInvalidInput = errors.New("curvature: elevation grid is nil or unset")

	// ErrCanceled reports a cooperative stop. It is a normal outcome, not a
	// fault: the run produced nothing and the Result is nil. When the stop
	// came from a context the error also matches ctx.Err().
	ErrCanceled = errors.New("curvature: computation canceled")
)
