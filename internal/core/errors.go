package core

import "errors"

// Error taxonomy shared by generation, validation, decoding and the bot.
var (
	// ErrInvalidDimensions reports a grid or window size that cannot be used.
	ErrInvalidDimensions = errors.New("invalid dimensions")
	// ErrUnsupportedGrid reports a grid/strategy pair with no construction.
	ErrUnsupportedGrid = errors.New("unsupported grid")
	// ErrMalformedArtifact reports a cycle file that does not parse.
	ErrMalformedArtifact = errors.New("malformed cycle artifact")
	// ErrCycleInvariant reports a sequence that is not a Hamiltonian cycle.
	ErrCycleInvariant = errors.New("cycle invariant violated")
	// ErrConfigurationOutOfRange reports tuning values that had to be clamped.
	ErrConfigurationOutOfRange = errors.New("configuration out of range")
)
