package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dragonslair/internal/platform/tui"
	"github.com/vovakirdan/dragonslair/internal/storage"
)

var (
	flagLimit int
	flagPlain bool
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the hall of fame",
	Long: `Display the best finished runs. In a terminal this opens an interactive
table; with --plain, or when the output is not a terminal, it prints text.

Examples:
  dragonslair scores
  dragonslair scores --plain --limit 5
  dragonslair scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to print with --plain")
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print text instead of the interactive table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run")
}

func runScores(_ *cobra.Command, _ []string) {
	if flagNoDB {
		fmt.Fprintln(os.Stderr, "Error: the hall of fame is disabled by --no-db")
		os.Exit(1)
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening hall of fame database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Hall of fame cleared.")
		return
	}

	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := 100, 30
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	printScores(store)
}

func printScores(store *storage.Store) {
	runs, err := store.TopRuns(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Hall of Fame - Dragon's Lair")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'dragonslair play' to enter the hall of fame!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %5s  %6s  %5s  %-8s  %s\n", "Rank", "Hero", "Level", "Score", "Kills", "Outcome", "Date")
	fmt.Printf("  %-4s  %-8s  %5s  %6s  %5s  %-8s  %s\n", "----", "----", "-----", "-----", "-----", "-------", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8s  %5d  %6d  %5d  %-8s  %s\n",
			i+1, r.Class, r.Level, r.Score, r.Kills, r.Outcome, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.Stats(); err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Victories: %d  Best: %d  Average: %.0f\n",
			stats.Runs, stats.Victories, stats.BestScore, stats.AvgScore)
	}
}
