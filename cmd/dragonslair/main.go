// dragonslair is a retro action RPG played in the terminal.
//
// Usage:
//
//	dragonslair                  - Play (same as "dragonslair play")
//	dragonslair play             - Play the game
//	dragonslair classes          - Show the hero classes
//	dragonslair music list       - List the music moods
//	dragonslair music export     - Write a mood's music as a WAV file
//	dragonslair music play       - Play a mood or a WAV file on the speaker
//	dragonslair scores           - Show the hall of fame
//
// Global flags:
//
//	--config <path>      - Game config YAML (default: lookup chain)
//	--difficulty <name>  - easy, normal or hard
//	--fps <rate>         - Tick rate (default: from config, 60)
//	--seed <value>       - RNG seed for reproducible gameplay
//	--db <path>          - Hall of fame database (default: ~/.dragonslair/runs.db)
//	--no-db              - Keep no hall of fame
//	--no-audio           - Play silently
//	--log-file <path>    - Log destination (default: ~/.dragonslair/dragonslair.log)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagNoDB       bool
	flagNoAudio    bool
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dragonslair",
	Short: "Dragon's Lair - a retro RPG adventure in your terminal",
	Long: `Dragon's Lair is a retro action RPG. Choose a hero, roam a world of nine
regions, fight monsters in turn-based battles and level up until the
dragon Malakor answers your challenge.

Available commands:
  play     - Start the game (the default)
  classes  - Show the hero classes
  music    - List or export the chiptune soundtrack
  scores   - View the hall of fame

Examples:
  dragonslair
  dragonslair play --difficulty hard
  dragonslair music export --mood boss --out boss.wav
  dragonslair scores --limit 20`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dragonslair/runs.db", "Path to hall of fame database")
	rootCmd.PersistentFlags().BoolVar(&flagNoDB, "no-db", false, "Keep no hall of fame")
	rootCmd.PersistentFlags().BoolVar(&flagNoAudio, "no-audio", false, "Disable music and sound effects")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (default ~/.dragonslair/dragonslair.log)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(classesCmd)
	rootCmd.AddCommand(musicCmd)
	rootCmd.AddCommand(scoresCmd)
}
