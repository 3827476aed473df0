package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/seamusw/cubelet"

	"github.com/seamusw/cubelet/internal/config"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestDefaultKeyMap(t *testing.T) {
	keys := defaultKeys()
	require.Len(t, keys, 18)
	require.Equal(t, cubelet.R, keys["r"])
	require.Equal(t, cubelet.RPrime, keys["R"])
	require.Equal(t, cubelet.X, keys["x"])
	require.Equal(t, cubelet.Z, keys["z"])
	require.Equal(t, cubelet.ZPrime, keys["Z"])
}

func TestKeyMapConfigOverride(t *testing.T) {
	cfg := config.Default()
	cfg.Keys = map[string]string{"m": "R2"}
	keys := keyMap(cfg)
	require.Equal(t, cubelet.R2, keys["m"])
	require.Equal(t, cubelet.U, keys["u"]) // built-ins survive
}

func TestKeyCommitsMoveAndQueuesFrames(t *testing.T) {
	var recorded []cubelet.Move
	m := New(config.Default(), func(mv cubelet.Move) {
		recorded = append(recorded, mv)
	})

	_, cmd := m.Update(keyMsg("r"))
	require.NotNil(t, cmd, "first move should start the animation ticker")

	// The move is committed immediately, exactly once.
	require.False(t, m.player.IsSolved())
	require.Equal(t, []cubelet.Move{cubelet.R}, recorded)
	require.Equal(t, []cubelet.Move{cubelet.R}, m.player.Moves())

	// Frames interpolate from 1/N to 1 against the pre-move state.
	require.Len(t, m.frames, config.Default().FrameCount)
	require.True(t, m.frames[0].state.IsSolved(), "frames draw the pre-move state")
	require.InDelta(t, 1.0/float64(config.Default().FrameCount), m.frames[0].fraction, 1e-12)
	require.InDelta(t, 1.0, m.frames[len(m.frames)-1].fraction, 1e-12)
}

func TestTickDrainsFrameQueue(t *testing.T) {
	m := New(config.Default(), nil)
	m.Update(keyMsg("u"))

	n := len(m.frames)
	for i := 0; i < n; i++ {
		_, cmd := m.Update(frameTickMsg{})
		require.NotNil(t, cmd, "ticker keeps running while frames remain")
		require.NotNil(t, m.current)
	}

	_, cmd := m.Update(frameTickMsg{})
	require.Nil(t, cmd, "ticker stops when the queue is empty")
	require.Nil(t, m.current)
	require.False(t, m.animating)
}

func TestUppercaseIsInverse(t *testing.T) {
	m := New(config.Default(), nil)
	m.Update(keyMsg("r"))
	m.Update(keyMsg("R"))
	require.True(t, m.player.IsSolved())
}

func TestBackspaceUndoesAndRecordsInverse(t *testing.T) {
	var recorded []cubelet.Move
	m := New(config.Default(), func(mv cubelet.Move) {
		recorded = append(recorded, mv)
	})

	m.Update(keyMsg("f"))
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})

	require.True(t, m.player.IsSolved())
	require.Equal(t, []cubelet.Move{cubelet.F, cubelet.FPrime}, recorded)
}

func TestUnknownKeyIgnored(t *testing.T) {
	m := New(config.Default(), nil)
	_, cmd := m.Update(keyMsg("9"))
	require.Nil(t, cmd)
	require.True(t, m.player.IsSolved())
	require.Empty(t, m.frames)
}

func TestViewRendersSceneAndStatus(t *testing.T) {
	m := New(config.Default(), nil)
	out := m.View()
	require.Contains(t, out, "cubelet")
	require.Contains(t, out, "solved")
	require.Contains(t, out, "moves: 0")

	m.Update(keyMsg("r"))
	out = m.View()
	require.Contains(t, out, "moves: 1")
	require.NotContains(t, out, "solved\n")
}

func TestRenderSceneShapes(t *testing.T) {
	scene := renderScene(cubelet.SolvedState(), nil, 0)
	lines := strings.Split(strings.TrimRight(scene, "\n"), "\n")
	require.Len(t, lines, canvasRows)

	// Mid-turn frames render without snapping or error.
	move := cubelet.R
	mid := renderScene(cubelet.SolvedState(), &move, 0.5)
	require.NotEmpty(t, mid)
}

func TestRenderNetShowsAllLetters(t *testing.T) {
	net := renderNet(cubelet.SolvedState())
	for _, letter := range []string{"W", "Y", "R", "O", "G", "B"} {
		require.Contains(t, net, letter)
	}
}
