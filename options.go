package cubelet

// Option configures a Player.
type Option func(*config)

type config struct {
	initial     State
	moveHistory bool
	onMove      func(Move)
}

func defaultConfig() *config {
	return &config{
		initial:     SolvedState(),
		moveHistory: true,
	}
}

// WithInitialState starts the player from the given state instead of the
// solved arrangement.
func WithInitialState(s State) Option {
	return func(c *config) {
		c.initial = s
	}
}

// WithMoveHistory enables or disables move history tracking.
// When enabled (default), all moves are stored and accessible via Moves(),
// and Undo is available. Disable for long sessions to reduce memory usage.
func WithMoveHistory(enabled bool) Option {
	return func(c *config) {
		c.moveHistory = enabled
	}
}

// WithMoveCallback sets a callback that fires after each committed move.
func WithMoveCallback(cb func(Move)) Option {
	return func(c *config) {
		c.onMove = cb
	}
}
