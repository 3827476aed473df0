package cubelet

// Color represents a face color.
type Color byte

const (
	Orange Color = 0 // -x face when solved
	Red    Color = 1 // +x face when solved
	Green  Color = 2 // -y face when solved
	Blue   Color = 3 // +y face when solved
	Yellow Color = 4 // -z face when solved
	White  Color = 5 // +z face when solved
)

func (c Color) String() string {
	switch c {
	case Orange:
		return "O"
	case Red:
		return "R"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Yellow:
		return "Y"
	case White:
		return "W"
	default:
		return "?"
	}
}

// faceColors[axis] holds the solved color at the negative and positive end
// of that axis.
var faceColors = [3][2]Color{
	{Orange, Red},
	{Green, Blue},
	{Yellow, White},
}

// FaceColor returns the solved color of the face identified by axis
// (0..2) and sign (-1 or 1). The mapping is fixed for the process
// lifetime; renderers translate these labels into display colors.
func FaceColor(axis, sign int) Color {
	if sign < 0 {
		return faceColors[axis][0]
	}
	return faceColors[axis][1]
}
