// Package cli implements the command-line interface for cubelet.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seamusw/cubelet/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath  string
	verbose bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubelet",
	Short: "Interactive facelet-level cube simulator",
	Long: `cubelet - a facelet-level 3x3 cube simulator.

Turn faces and rotate the whole cube interactively with animated turns,
apply move sequences from standard notation, and record interactive
sessions for later replay.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.cubelet/cubelet.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// openDB opens the database from the --db flag or the default path.
func openDB() (*storage.DB, error) {
	if dbPath != "" {
		return storage.Open(dbPath)
	}
	return storage.OpenDefault()
}

// vlogf prints when --verbose is set.
func vlogf(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
