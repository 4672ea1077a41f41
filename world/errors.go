package world

import "errors"

var (
	// ErrNoPoles indicates a World constructed with an empty pole list.
	ErrNoPoles = errors.New("world: at least one pole is required")

	// ErrNoPositions indicates a sweep or permutation request for zero particles.
	ErrNoPositions = errors.New("world: at least one starting position is required")

	// ErrTooManyPositions guards the exponential 2^n ensemble against
	// particle counts that cannot be enumerated in memory.
	ErrTooManyPositions = errors.New("world: too many starting positions to enumerate (max 24)")
)
