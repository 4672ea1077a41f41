package pole

import "errors"

var (
	// ErrNonPositiveLength indicates the pole length is zero or negative.
	ErrNonPositiveLength = errors.New("pole: length must be positive")

	// ErrNonPositiveSpeed indicates the particle speed is zero or negative.
	ErrNonPositiveSpeed = errors.New("pole: speed must be positive")

	// ErrNoParticles indicates construction with an empty particle list.
	ErrNoParticles = errors.New("pole: at least one particle is required")
)
