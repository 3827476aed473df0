package cubelet

import (
	"fmt"
	"strings"
)

// Move describes a single turn.
//
// Axis selects the rotation axis (0, 1 or 2 for x, y or z). Side selects
// what rotates: 1 the layer on the positive side of the axis, -1 the layer
// on the negative side, 0 the entire cube. Turns is 1 for a quarter turn
// in the canonical positive sense, -1 for its inverse and 2 for a half
// turn.
//
// Moves are value objects: compared by field equality and never mutated.
type Move struct {
	Axis  int
	Side  int
	Turns int
}

// Validate checks that all fields are in range.
func (m Move) Validate() error {
	if m.Axis < 0 || m.Axis > 2 {
		return fmt.Errorf("%w: axis %d", ErrInvalidMove, m.Axis)
	}
	if m.Side < -1 || m.Side > 1 {
		return fmt.Errorf("%w: side %d", ErrInvalidMove, m.Side)
	}
	switch m.Turns {
	case -1, 1, 2:
	default:
		return fmt.Errorf("%w: turns %d", ErrInvalidMove, m.Turns)
	}
	return nil
}

// Inverse returns the move that undoes this one. Half turns are their own
// inverse.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turns {
	case 1:
		inv.Turns = -1
	case -1:
		inv.Turns = 1
	}
	return inv
}

// baseMoves maps notation letters to quarter turns. Face letters follow
// standard cube notation; x, y and z are whole-cube rotations. z's
// canonical quarter turn has Turns -1, preserved as is.
var baseMoves = []struct {
	letter byte
	move   Move
}{
	{'R', Move{Axis: 0, Side: 1, Turns: 1}},
	{'L', Move{Axis: 0, Side: -1, Turns: 1}},
	{'B', Move{Axis: 1, Side: 1, Turns: 1}},
	{'F', Move{Axis: 1, Side: -1, Turns: 1}},
	{'U', Move{Axis: 2, Side: 1, Turns: 1}},
	{'D', Move{Axis: 2, Side: -1, Turns: 1}},
	{'x', Move{Axis: 0, Side: 0, Turns: 1}},
	{'y', Move{Axis: 2, Side: 0, Turns: 1}},
	{'z', Move{Axis: 1, Side: 0, Turns: -1}},
}

// Notation returns the standard notation string for this move.
// Examples: R, R', R2, x, x', z2
func (m Move) Notation() string {
	for _, b := range baseMoves {
		if b.move.Axis != m.Axis || b.move.Side != m.Side {
			continue
		}
		switch m.Turns {
		case b.move.Turns:
			return string(b.letter)
		case -b.move.Turns:
			return string(b.letter) + "'"
		case 2:
			return string(b.letter) + "2"
		}
	}
	return "?"
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// lowercase folds ASCII letters to lowercase.
func lowercase(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + 'a' - 'A'
	}
	return b
}

// ParseMove parses a standard notation string into a Move.
// Examples: R, R', R2, x, z'
// Letters are case-insensitive. Returns an error if the notation is
// invalid.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, ErrInvalidNotation
	}

	var move Move
	found := false
	for _, b := range baseMoves {
		if lowercase(b.letter) == lowercase(s[0]) {
			move = b.move
			found = true
			break
		}
	}
	if !found {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	if len(s) > 1 {
		switch s[1:] {
		case "'", "`":
			move.Turns = -move.Turns
		case "2", "2'", "2`":
			move.Turns = 2
		default:
			return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
		}
	}

	return move, nil
}

// ParseMoves parses a space-separated sequence of moves.
// Example: "R U R' U'"
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, err
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}
