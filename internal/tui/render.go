package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/seamusw/cubelet"
)

// Terminal colors for the six face letters.
var colorStyles = map[cubelet.Color]lipgloss.Style{
	cubelet.White:  lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("240")),
	cubelet.Yellow: lipgloss.NewStyle().Background(lipgloss.Color("220")).Foreground(lipgloss.Color("94")),
	cubelet.Green:  lipgloss.NewStyle().Background(lipgloss.Color("34")).Foreground(lipgloss.Color("22")),
	cubelet.Blue:   lipgloss.NewStyle().Background(lipgloss.Color("27")).Foreground(lipgloss.Color("17")),
	cubelet.Red:    lipgloss.NewStyle().Background(lipgloss.Color("196")).Foreground(lipgloss.Color("52")),
	cubelet.Orange: lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("94")),
}

// Projection canvas size. Facelet centers span roughly +-3.5 screen units
// horizontally and +-4 vertically at the scales below.
const (
	canvasCols = 32
	canvasRows = 18
	colScale   = 4.0
	rowScale   = 2.0
)

// cell is one canvas cell with painter's-algorithm depth.
type cell struct {
	color cubelet.Color
	depth float64
	set   bool
}

// renderScene draws the cube in an isometric projection. When move is
// non-nil the affected facelets are drawn rotated by fraction of the move,
// reading from the supplied pre-move state; the continuous positions are
// used directly and never snapped.
func renderScene(state cubelet.State, move *cubelet.Move, fraction float64) string {
	var rot cubelet.Rotation
	if move != nil {
		r, err := cubelet.RotationFor(*move, fraction)
		if err != nil {
			// Bindings only produce valid moves.
			move = nil
		} else {
			rot = r
		}
	}

	var canvas [canvasRows][canvasCols]cell
	for i := 0; i < cubelet.FaceletCount; i++ {
		c := cubelet.CoordAt(i)

		// Pull the facelet off the grid onto the cube surface: the
		// +-2 face component becomes +-1.5 so the six faces sit flush
		// on a 3-unit cube.
		pos := [3]float64{float64(c[0]), float64(c[1]), float64(c[2])}
		pos[c.Axis()] *= 0.75

		if move != nil && cubelet.IsAffected(*move, c) {
			pos = rot.Apply(pos)
		}

		// Isometric projection, camera on the (+1,+1,+1) diagonal.
		sx := (pos[0] - pos[1]) * math.Cos(math.Pi/6)
		sy := pos[2] - (pos[0]+pos[1])*math.Sin(math.Pi/6)
		depth := pos[0] + pos[1] + pos[2]

		col := int(math.Round(float64(canvasCols)/2 + sx*colScale))
		row := int(math.Round(float64(canvasRows)/2 - sy*rowScale))
		if row < 0 || row >= canvasRows || col < 0 || col >= canvasCols {
			continue
		}

		if !canvas[row][col].set || depth > canvas[row][col].depth {
			canvas[row][col] = cell{color: state[i], depth: depth, set: true}
		}
	}

	var b strings.Builder
	for row := 0; row < canvasRows; row++ {
		for col := 0; col < canvasCols; col++ {
			if canvas[row][col].set {
				b.WriteString(colorStyles[canvas[row][col].color].Render("  "))
			} else {
				b.WriteString("  ")
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// renderNet draws the flat unfolded net with colored cells.
func renderNet(state cubelet.State) string {
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimRight(state.String(), "\n"), "\n") {
		if strings.HasPrefix(line, " ") {
			b.WriteString("      ")
		}
		for _, ch := range strings.Fields(line) {
			b.WriteString(netCell(ch))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// netCell renders one facelet letter as a colored block.
func netCell(letter string) string {
	for color, style := range colorStyles {
		if color.String() == letter {
			return style.Render(letter + " ")
		}
	}
	return letter + " "
}
