package cli

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/seamusw/cubelet"

	"github.com/seamusw/cubelet/internal/config"
	"github.com/seamusw/cubelet/internal/storage"
	"github.com/seamusw/cubelet/internal/tui"
)

var (
	playRecord bool
	playNotes  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive cube with animated turns",
	Long: `Start the interactive cube viewer.

Keyboard shortcuts:
  r/l/u/d/f/b - turn the right/left/up/down/front/back face
  x/y/z       - rotate the whole cube
  shift       - invert any of the above
  backspace   - undo the last move
  n           - toggle the flat net view
  q/Esc       - quit

Key bindings and animation timing can be overridden in
~/.cubelet/config.yaml. With --record the session's moves are stored for
later replay; cube state itself is never persisted.`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().BoolVar(&playRecord, "record", false, "Record this session's moves")
	playCmd.Flags().StringVar(&playNotes, "notes", "", "Notes for the recorded session")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadDefault()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	vlogf("animation: %d frames at %s", cfg.FrameCount, cfg.FrameDuration())

	var onMove func(cubelet.Move)
	if playRecord {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		sessions := storage.NewSessionRepository(db)
		moves := storage.NewMoveRepository(db)

		session, err := sessions.Create(playNotes)
		if err != nil {
			return err
		}
		vlogf("recording session %s", session.ID)

		start := time.Now()
		seq := 0
		onMove = func(m cubelet.Move) {
			if err := moves.Append(session.ID, seq, m, time.Since(start)); err != nil {
				fmt.Fprintf(os.Stderr, "warning: could not record move %s: %v\n", m, err)
				return
			}
			seq++
		}

		defer func() {
			if err := sessions.End(session.ID); err != nil {
				fmt.Fprintf(os.Stderr, "warning: could not end session: %v\n", err)
				return
			}
			fmt.Printf("Recorded session %s (%d moves)\n", session.ID, seq)
		}()
	}

	p := tea.NewProgram(tui.New(cfg, onMove), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("viewer error: %w", err)
	}
	return nil
}
