package cubelet

import "fmt"

// IsAffected reports whether the facelet at c moves under m. A whole-cube
// move (Side 0) affects everything; a layer move affects the turning
// face's own 9 facelets (axis component +-2 with matching sign) plus the
// one-unit-deep ring on the four adjacent faces (axis component +-1 with
// matching sign).
func IsAffected(m Move, c Coord) bool {
	return m.Side == 0 || c[m.Axis]*m.Side >= 1
}

// Apply returns the state produced by applying m to s. Affected facelets
// have their coordinates rotated by the move's full turn and snapped back
// to the grid; unaffected facelets pass through unchanged. Colors travel
// with their facelets and are never recomputed.
//
// Apply is pure: s is not modified. It fails only on an invalid move or
// an internal consistency fault (ErrCoordinateDrift).
func Apply(s State, m Move) (State, error) {
	rot, err := RotationFor(m, 1)
	if err != nil {
		return State{}, err
	}

	var out State
	var occupied [FaceletCount]bool
	for i, color := range s {
		c := coordTable[i]
		j := i
		if IsAffected(m, c) {
			nc, err := snapCoord(rot.ApplyCoord(c))
			if err != nil {
				return State{}, fmt.Errorf("applying %s to %v: %w", m, c, err)
			}
			var ok bool
			j, ok = IndexOf(nc)
			if !ok {
				return State{}, fmt.Errorf("applying %s to %v: %w: %v", m, c, ErrCoordinateDrift, nc)
			}
		}
		if occupied[j] {
			return State{}, fmt.Errorf("applying %s: %w: two facelets at %v", m, ErrCoordinateDrift, coordTable[j])
		}
		occupied[j] = true
		out[j] = color
	}
	return out, nil
}

// ApplyAll applies a sequence of moves in order.
func ApplyAll(s State, moves ...Move) (State, error) {
	var err error
	for _, m := range moves {
		s, err = Apply(s, m)
		if err != nil {
			return State{}, err
		}
	}
	return s, nil
}
