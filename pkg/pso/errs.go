package pso

import "errors"

var (
	// ErrBadConfig indicates a swarm configuration field outside its valid range.
	ErrBadConfig = errors.New("pso: invalid config")

	// ErrBadBounds indicates an empty search space or a dimension with
	// min > max.
	ErrBadBounds = errors.New("pso: invalid bounds")

	// ErrNoObjective indicates that Minimize was called without an objective.
	ErrNoObjective = errors.New("pso: nil objective")
)
