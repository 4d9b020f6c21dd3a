package wpt

import "errors"

var (
	// ErrInvalidParams indicates a system parameter that is missing, negative
	// or otherwise physically meaningless.
	ErrInvalidParams = errors.New("wpt: invalid system parameters")

	// ErrFrequencyBounds indicates a degenerate frequency search range
	// (f_min <= 0 or f_min >= f_max).
	ErrFrequencyBounds = errors.New("wpt: invalid frequency bounds")

	// ErrBadGeometry indicates coil geometry whose derived inner diameter
	// is not positive.
	ErrBadGeometry = errors.New("wpt: invalid coil geometry")
)
