package cubelet

// Player owns a mutable current state around the pure Apply function. The
// core itself never holds shared mutable state; callers that want a
// "current cube" with history and callbacks use a Player. A Player is not
// safe for concurrent use.
type Player struct {
	state   State
	initial State
	history []Move
	cfg     *config
}

// NewPlayer creates a player starting from the solved state (or the state
// given via WithInitialState).
func NewPlayer(opts ...Option) *Player {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Player{
		state:   cfg.initial,
		initial: cfg.initial,
		cfg:     cfg,
	}
}

// Apply commits a single move.
func (p *Player) Apply(m Move) error {
	next, err := Apply(p.state, m)
	if err != nil {
		return err
	}
	p.state = next
	if p.cfg.moveHistory {
		p.history = append(p.history, m)
	}
	if p.cfg.onMove != nil {
		p.cfg.onMove(m)
	}
	return nil
}

// ApplyAll commits a sequence of moves. On error the moves before the
// failing one remain committed.
func (p *Player) ApplyAll(moves ...Move) error {
	for _, m := range moves {
		if err := p.Apply(m); err != nil {
			return err
		}
	}
	return nil
}

// ApplyNotation parses and commits a space-separated move sequence.
// Example: "R U R' U'"
// The sequence is parsed up front, so a notation error commits nothing.
func (p *Player) ApplyNotation(s string) error {
	moves, err := ParseMoves(s)
	if err != nil {
		return err
	}
	return p.ApplyAll(moves...)
}

// Undo reverts the most recent move by applying its inverse, and returns
// the move that was undone. Requires move history.
func (p *Player) Undo() (Move, error) {
	if len(p.history) == 0 {
		return Move{}, ErrNoHistory
	}
	last := p.history[len(p.history)-1]
	next, err := Apply(p.state, last.Inverse())
	if err != nil {
		return Move{}, err
	}
	p.state = next
	p.history = p.history[:len(p.history)-1]
	return last, nil
}

// Reset restores the initial state and clears the history.
func (p *Player) Reset() {
	p.state = p.initial
	p.history = p.history[:0]
}

// State returns the current state.
func (p *Player) State() State {
	return p.state
}

// Moves returns a copy of the move history.
func (p *Player) Moves() []Move {
	moves := make([]Move, len(p.history))
	copy(moves, p.history)
	return moves
}

// IsSolved reports whether the current state is solved.
func (p *Player) IsSolved() bool {
	return p.state.IsSolved()
}
