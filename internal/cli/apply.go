package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seamusw/cubelet"
)

var applyCmd = &cobra.Command{
	Use:   "apply <moves>",
	Short: "Apply a move sequence to the solved cube",
	Long: `Apply a space-separated move sequence to the solved cube and print the
resulting state as an unfolded net.

Notation: R L U D F B turn faces, x y z rotate the whole cube;
' inverts, 2 doubles.

Example:
  cubelet apply "R U R' U'"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	moves, err := cubelet.ParseMoves(strings.Join(args, " "))
	if err != nil {
		return err
	}

	state, err := cubelet.ApplyAll(cubelet.SolvedState(), moves...)
	if err != nil {
		return err
	}

	fmt.Printf("%s (%d moves)\n\n", cubelet.FormatMoves(moves), len(moves))
	fmt.Println(state)
	if state.IsSolved() {
		fmt.Println("Solved.")
	}
	return nil
}
