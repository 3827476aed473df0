package cubelet

import "errors"

// Sentinel errors for the cubelet package.
var (
	// Move construction and parsing errors
	ErrInvalidMove     = errors.New("cubelet: invalid move")
	ErrInvalidNotation = errors.New("cubelet: invalid move notation")

	// State transformation errors. Drift indicates an internal
	// consistency fault: a rotated coordinate failed to snap back onto
	// the facelet grid, or two facelets landed on the same coordinate.
	ErrCoordinateDrift = errors.New("cubelet: rotated coordinate off the facelet grid")

	// Player errors
	ErrNoHistory = errors.New("cubelet: no move history")
)
