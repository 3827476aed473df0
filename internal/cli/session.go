package cli

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/seamusw/cubelet"

	"github.com/seamusw/cubelet/internal/storage"
)

var (
	listLimit   int
	replaySpeed float64
	replayStep  bool
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage recorded sessions",
	Long:  `Commands for listing, inspecting and replaying recorded interactive sessions.`,
}

var sessionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent sessions",
	RunE:  runSessionList,
}

var sessionShowCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Show a session's moves and final state",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionShow,
}

var sessionReplayCmd = &cobra.Command{
	Use:   "replay <session-id>",
	Short: "Replay a session move by move",
	Long: `Replay a recorded session. The cube state is recomputed from the solved
arrangement; only the move sequence is stored.

By default moves play back with their original timing. Use --speed to
scale it or --step to advance manually with Enter.`,
	Args: cobra.ExactArgs(1),
	RunE: runSessionReplay,
}

func init() {
	rootCmd.AddCommand(sessionCmd)
	sessionCmd.AddCommand(sessionListCmd)
	sessionCmd.AddCommand(sessionShowCmd)
	sessionCmd.AddCommand(sessionReplayCmd)

	sessionListCmd.Flags().IntVar(&listLimit, "limit", 20, "Maximum sessions to list")
	sessionReplayCmd.Flags().Float64Var(&replaySpeed, "speed", 1.0, "Playback speed multiplier")
	sessionReplayCmd.Flags().BoolVar(&replayStep, "step", false, "Step through moves manually")
}

func runSessionList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessions, err := storage.NewSessionRepository(db).List(listLimit)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println("No sessions recorded. Start one with: cubelet play --record")
		return nil
	}

	moves := storage.NewMoveRepository(db)
	fmt.Printf("%-36s  %-20s  %-8s  %s\n", "ID", "STARTED", "MOVES", "NOTES")
	for _, s := range sessions {
		n, err := moves.CountBySession(s.ID)
		if err != nil {
			return err
		}
		fmt.Printf("%-36s  %-20s  %-8d  %s\n",
			s.ID, s.StartedAt.Local().Format("2006-01-02 15:04:05"), n, s.Notes)
	}
	return nil
}

func runSessionShow(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	session, err := storage.NewSessionRepository(db).Get(args[0])
	if err != nil {
		return err
	}
	records, err := storage.NewMoveRepository(db).ListBySession(session.ID)
	if err != nil {
		return err
	}

	fmt.Printf("Session: %s\n", session.ID)
	fmt.Printf("Started: %s\n", session.StartedAt.Local().Format(time.RFC1123))
	if session.EndedAt != nil {
		fmt.Printf("Ended:   %s\n", session.EndedAt.Local().Format(time.RFC1123))
	}
	if session.Notes != "" {
		fmt.Printf("Notes:   %s\n", session.Notes)
	}

	state := cubelet.SolvedState()
	moves := make([]cubelet.Move, len(records))
	for i, rec := range records {
		moves[i] = rec.Move
	}
	state, err = cubelet.ApplyAll(state, moves...)
	if err != nil {
		return err
	}

	fmt.Printf("Moves:   %d\n\n", len(moves))
	if len(moves) > 0 {
		fmt.Println(cubelet.FormatMoves(moves))
		fmt.Println()
	}
	fmt.Println(state)
	if state.IsSolved() {
		fmt.Println("Solved.")
	}
	return nil
}

func runSessionReplay(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	session, err := storage.NewSessionRepository(db).Get(args[0])
	if err != nil {
		return err
	}
	records, err := storage.NewMoveRepository(db).ListBySession(session.ID)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("Session has no moves.")
		return nil
	}

	fmt.Printf("Replaying session %s (%d moves)\n\n", session.ID, len(records))

	stdin := bufio.NewScanner(os.Stdin)
	state := cubelet.SolvedState()
	lastTs := int64(0)
	for i, rec := range records {
		if replayStep {
			fmt.Printf("[%d/%d] press Enter for %s", i+1, len(records), rec.Move)
			if !stdin.Scan() {
				return stdin.Err()
			}
		} else if rec.TsMs > lastTs {
			time.Sleep(time.Duration(float64(rec.TsMs-lastTs)/replaySpeed) * time.Millisecond)
		}
		lastTs = rec.TsMs

		state, err = cubelet.Apply(state, rec.Move)
		if err != nil {
			return fmt.Errorf("move %d (%s): %w", rec.Seq, rec.Move, err)
		}
		if !replayStep {
			fmt.Printf("[%d/%d] %s\n", i+1, len(records), rec.Move)
		}
	}

	fmt.Println()
	fmt.Println(state)
	if state.IsSolved() {
		fmt.Println("Solved.")
	}
	return nil
}
