package optimize

import "errors"

var (
	// ErrNilCatalog indicates that Optimize was called without a catalog.
	ErrNilCatalog = errors.New("optimize: nil catalog")

	// ErrBadWeights indicates an unusable objective weighting.
	ErrBadWeights = errors.New("optimize: invalid weights")
)
