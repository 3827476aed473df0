// Package tui implements the interactive animated cube view. Turns are
// animated by expanding each committed move into interpolated frames drawn
// from the pre-move state; the authoritative state is committed exactly
// once per move through the pure transformation in the cubelet package.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/seamusw/cubelet"

	"github.com/seamusw/cubelet/internal/config"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// frame is one pending animation step: the pre-move state plus how far
// through the move to draw it.
type frame struct {
	state    cubelet.State
	move     cubelet.Move
	fraction float64
}

type frameTickMsg time.Time

// Model is the bubbletea model for the interactive view.
type Model struct {
	player *cubelet.Player
	keys   map[string]cubelet.Move
	cfg    config.Config

	// Animation: queued frames and the one currently on screen.
	frames    []frame
	current   *frame
	animating bool

	// onMove fires once per committed move (undo reports the inverse),
	// used by the CLI to record sessions.
	onMove func(cubelet.Move)

	showNet  bool
	err      error
	quitting bool
}

// New creates the interactive model. onMove may be nil.
func New(cfg config.Config, onMove func(cubelet.Move)) *Model {
	return &Model{
		player: cubelet.NewPlayer(),
		keys:   keyMap(cfg),
		cfg:    cfg,
		onMove: onMove,
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.cfg.FrameDuration(), func(t time.Time) tea.Msg {
		return frameTickMsg(t)
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case frameTickMsg:
		if len(m.frames) == 0 {
			m.current = nil
			m.animating = false
			return m, nil
		}
		f := m.frames[0]
		m.frames = m.frames[1:]
		m.current = &f
		return m, m.tick()
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case "n":
		m.showNet = !m.showNet
		return m, nil
	case "backspace":
		undone, err := m.player.Undo()
		if err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		if m.onMove != nil {
			m.onMove(undone.Inverse())
		}
		return m, nil
	}

	move, ok := m.keys[key]
	if !ok {
		return m, nil
	}

	before := m.player.State()
	if err := m.player.Apply(move); err != nil {
		m.err = err
		return m, nil
	}
	m.err = nil
	if m.onMove != nil {
		m.onMove(move)
	}

	// Queue interpolated frames drawn from the pre-move state; the
	// committed state is only shown once the queue drains.
	for i := 0; i < m.cfg.FrameCount; i++ {
		m.frames = append(m.frames, frame{
			state:    before,
			move:     move,
			fraction: float64(i+1) / float64(m.cfg.FrameCount),
		})
	}
	if !m.animating {
		m.animating = true
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var scene string
	if m.current != nil {
		scene = renderScene(m.current.state, &m.current.move, m.current.fraction)
	} else {
		scene = renderScene(m.player.State(), nil, 0)
	}

	out := titleStyle.Render("cubelet") + "\n\n" + scene + "\n"

	if m.showNet {
		out += renderNet(m.player.State()) + "\n"
	}

	history := m.player.Moves()
	if len(history) > 16 {
		history = history[len(history)-16:]
	}
	out += statusStyle.Render(fmt.Sprintf("moves: %d  %s", len(m.player.Moves()), cubelet.FormatMoves(history))) + "\n"

	if m.player.IsSolved() {
		out += solvedStyle.Render("solved") + "\n"
	}
	if m.err != nil {
		out += errorStyle.Render(m.err.Error()) + "\n"
	}

	out += helpStyle.Render("r/l/u/d/f/b turn faces - x/y/z rotate cube - shift inverts - backspace undo - n net - q quit")
	return out
}
