package sim

import "errors"

var (
	// ErrInvalidGrid reports grid dimensions that cannot form a cloth or do
	// not match the particle store.
	ErrInvalidGrid = errors.New("invalid cloth grid")

	// ErrParticleOutOfRange reports a constraint that references a particle
	// id outside [0, N).
	ErrParticleOutOfRange = errors.New("particle id out of range")

	// ErrInvalidConfig reports a non-grid configuration value that would make
	// the simulation meaningless (non-positive time step, zero iterations...).
	ErrInvalidConfig = errors.New("invalid simulation config")
)
