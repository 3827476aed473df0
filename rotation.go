package cubelet

import (
	"fmt"
	"math"
)

// Rotation is a 3x3 rotation matrix in row-major order.
type Rotation [3][3]float64

// directionSign maps a move's side to the sense of its rotation: the
// negative-side layer turns the opposite way, everything else (positive
// side and whole-cube) turns the canonical way.
func directionSign(side int) float64 {
	if side == -1 {
		return -1
	}
	return 1
}

// RotationFor returns the rigid rotation applied by m at the given
// interpolation fraction. fraction 1 is the full discrete turn; fractions
// in (0, 1) yield intermediate orientations for animation and must never
// be snapped back to the grid.
//
// The angle is -90 degrees * Turns * directionSign(Side) * fraction about
// the move's axis.
func RotationFor(m Move, fraction float64) (Rotation, error) {
	if err := m.Validate(); err != nil {
		return Rotation{}, err
	}

	angle := -math.Pi / 2 * float64(m.Turns) * directionSign(m.Side) * fraction
	sin, cos := math.Sincos(angle)

	switch m.Axis {
	case 0:
		return Rotation{
			{1, 0, 0},
			{0, cos, -sin},
			{0, sin, cos},
		}, nil
	case 1:
		return Rotation{
			{cos, 0, sin},
			{0, 1, 0},
			{-sin, 0, cos},
		}, nil
	default:
		return Rotation{
			{cos, -sin, 0},
			{sin, cos, 0},
			{0, 0, 1},
		}, nil
	}
}

// Apply rotates a vector.
func (r Rotation) Apply(v [3]float64) [3]float64 {
	var out [3]float64
	for i := 0; i < 3; i++ {
		out[i] = r[i][0]*v[0] + r[i][1]*v[1] + r[i][2]*v[2]
	}
	return out
}

// ApplyCoord rotates a facelet coordinate, returning the continuous
// result. Use snapCoord to bring a full-turn result back to the grid.
func (r Rotation) ApplyCoord(c Coord) [3]float64 {
	return r.Apply([3]float64{float64(c[0]), float64(c[1]), float64(c[2])})
}

// snapCoord rounds each component to the nearest integer and validates
// the coordinate invariant. Full turns are exact multiples of 90 degrees,
// so the result is integral up to floating-point noise around 1e-10; a
// failure here means the rotation formula is broken and is reported
// rather than coerced.
func snapCoord(v [3]float64) (Coord, error) {
	var c Coord
	for i, x := range v {
		c[i] = int(math.Round(x))
	}
	if !c.IsValid() {
		return Coord{}, fmt.Errorf("%w: (%.6f, %.6f, %.6f) snapped to %v", ErrCoordinateDrift, v[0], v[1], v[2], c)
	}
	return c, nil
}
