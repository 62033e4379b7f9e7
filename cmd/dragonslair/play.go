package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dragonslair/internal/core"
	"github.com/vovakirdan/dragonslair/internal/game"
	"github.com/vovakirdan/dragonslair/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Dragon's Lair",
	Long: `Start the game on the title screen.

Controls:
  Arrows/WASD   - Move, pick menu entries
  Enter/Space   - Confirm
  Esc/Backspace - Back, give up a quest
  M/Tab         - World map
  Ctrl+S        - Screenshot
  Ctrl+C        - Quit

Difficulty options:
  easy   - Weaker monsters that appear less often
  normal - The intended balance
  hard   - Tougher monsters that appear more often

Examples:
  dragonslair play
  dragonslair play --difficulty easy
  dragonslair play --seed 42 --no-audio
  dragonslair play --config ./my-config.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, source, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger, logFile, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	logger.Info("starting", "config", source, "difficulty", cfg.Difficulty, "tick_rate", cfg.Display.TickRate)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// A nil *storage.Store must not reach the interface, or the machine
	// would see a non-nil store.
	var runs game.RunStore
	store := openStore(logger)
	if store != nil {
		defer store.Close()
		runs = store
	}

	director := newDirector(cfg.Audio, logger)
	defer director.Close()

	machine := game.NewMachine(game.AppContext{
		Config: cfg,
		Logger: logger,
		Audio:  director,
		Store:  runs,
		Seed:   seed,
	})

	width, height := screenSize(cfg.Display)
	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Display.TickRate,
		Seed:     seed,
	}
	if err := tui.Run(machine, runtime, logger); err != nil {
		logger.Error("game stopped", "error", err)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
	logger.Info("bye", "run", machine.CurrentRun().ID)
}
