package cubelet

// FaceletCount is the number of facelets on a 3x3 cube: 6 faces x 9.
const FaceletCount = 54

// Coord identifies a facelet position. Exactly one component has absolute
// value 2 (the face the facelet sits on and its outward axis), the other
// two are in {-1, 0, 1} (its position within the face's 3x3 grid).
type Coord [3]int

// IsValid reports whether c satisfies the facelet coordinate invariant.
func (c Coord) IsValid() bool {
	face := -1
	for i, v := range c {
		switch {
		case v == 2 || v == -2:
			if face >= 0 {
				return false
			}
			face = i
		case v < -1 || v > 1:
			return false
		}
	}
	return face >= 0
}

// Axis returns the index of the +-2 component, or -1 if c is not valid.
func (c Coord) Axis() int {
	for i, v := range c {
		if v == 2 || v == -2 {
			return i
		}
	}
	return -1
}

// Sign returns the sign of the +-2 component, or 0 if c is not valid.
func (c Coord) Sign() int {
	for _, v := range c {
		if v == 2 {
			return 1
		}
		if v == -2 {
			return -1
		}
	}
	return 0
}

// The 54 legal coordinates in canonical order, and the reverse index.
// States are stored as dense arrays indexed by this table, so a State
// structurally has one entry per legal coordinate.
var (
	coordTable [FaceletCount]Coord
	coordIndex = make(map[Coord]int, FaceletCount)
)

func init() {
	i := 0
	for axis := 0; axis < 3; axis++ {
		for _, sign := range []int{-1, 1} {
			for x := -1; x <= 1; x++ {
				for y := -1; y <= 1; y++ {
					c := insertAt(x, y, axis, sign*2)
					coordTable[i] = c
					coordIndex[c] = i
					i++
				}
			}
		}
	}
}

// insertAt builds a Coord from the two free components with val placed at
// position axis.
func insertAt(a, b, axis, val int) Coord {
	switch axis {
	case 0:
		return Coord{val, a, b}
	case 1:
		return Coord{a, val, b}
	default:
		return Coord{a, b, val}
	}
}

// CoordAt returns the coordinate at dense index i (0..53).
func CoordAt(i int) Coord {
	return coordTable[i]
}

// IndexOf returns the dense index of c, or false if c is not a legal
// facelet coordinate.
func IndexOf(c Coord) (int, bool) {
	i, ok := coordIndex[c]
	return i, ok
}
