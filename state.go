package cubelet

import "strings"

// State holds the color of every facelet, indexed by the canonical dense
// coordinate order (see CoordAt). It is a plain value: assignment copies,
// and every transformation returns a new State.
type State [FaceletCount]Color

// SolvedState returns the solved arrangement: each face uniformly colored
// per the fixed palette (see FaceColor).
func SolvedState() State {
	var s State
	for i, c := range coordTable {
		s[i] = FaceColor(c.Axis(), c.Sign())
	}
	return s
}

// ColorAt returns the color of the facelet at coordinate c, or false if c
// is not a legal facelet coordinate.
func (s State) ColorAt(c Coord) (Color, bool) {
	i, ok := IndexOf(c)
	if !ok {
		return 0, false
	}
	return s[i], true
}

// IsSolved reports whether every face is uniformly colored with its
// solved color.
func (s State) IsSolved() bool {
	return s == SolvedState()
}

// ColorCounts returns how many facelets carry each color. Any reachable
// state has 9 of each.
func (s State) ColorCounts() map[Color]int {
	counts := make(map[Color]int, 6)
	for _, c := range s {
		counts[c]++
	}
	return counts
}

// String returns a text representation of the cube as an unfolded net:
//
//	      U
//	L  F  R  B
//	      D
//
// where U is the +z face, F the -y face, and R the +x face.
func (s State) String() string {
	face := func(at func(row, col int) Coord) [3][3]Color {
		var f [3][3]Color
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				color, _ := s.ColorAt(at(row, col))
				f[row][col] = color
			}
		}
		return f
	}

	up := face(func(r, c int) Coord { return Coord{c - 1, 1 - r, 2} })
	down := face(func(r, c int) Coord { return Coord{c - 1, r - 1, -2} })
	left := face(func(r, c int) Coord { return Coord{-2, c - 1, 1 - r} })
	front := face(func(r, c int) Coord { return Coord{c - 1, -2, 1 - r} })
	right := face(func(r, c int) Coord { return Coord{2, 1 - c, 1 - r} })
	back := face(func(r, c int) Coord { return Coord{1 - c, 2, 1 - r} })

	var b strings.Builder
	writeFace := func(f [3][3]Color, row int) {
		for col := 0; col < 3; col++ {
			b.WriteString(f[row][col].String())
			b.WriteByte(' ')
		}
	}

	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		writeFace(up, row)
		b.WriteByte('\n')
	}
	for row := 0; row < 3; row++ {
		for _, f := range [][3][3]Color{left, front, right, back} {
			writeFace(f, row)
		}
		b.WriteByte('\n')
	}
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		writeFace(down, row)
		b.WriteByte('\n')
	}

	return b.String()
}
