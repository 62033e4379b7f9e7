package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dragonslair/internal/combat"
)

var classesCmd = &cobra.Command{
	Use:   "classes",
	Short: "Show the hero classes",
	Long: `Shows the starting stats of every hero class and how a level-up
raises them, as set by the active config.`,
	Args: cobra.NoArgs,
	Run:  runClasses,
}

func runClasses(_ *cobra.Command, _ []string) {
	cfg, source, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Hero classes (config: %s)\n", source)
	fmt.Println()
	fmt.Printf("  %-8s  %4s  %4s  %4s  %4s  %4s\n", "Class", "HP", "MP", "STR", "DEF", "SPD")
	fmt.Printf("  %-8s  %4s  %4s  %4s  %4s  %4s\n", "-----", "--", "--", "---", "---", "---")
	for _, class := range combat.Classes {
		s, err := cfg.ClassStats(class)
		if err != nil {
			fmt.Printf("  %-8s  (missing from config)\n", class)
			continue
		}
		fmt.Printf("  %-8s  %4d  %4d  %4d  %4d  %4d\n", class, s.Health, s.Mana, s.Strength, s.Defense, s.Speed)
	}

	g := cfg.Leveling
	fmt.Println()
	fmt.Printf("Level-up: +%d HP  +%d MP  +%d STR  +%d DEF  +%d SPD, full restore\n",
		g.Health, g.Mana, g.Strength, g.Defense, g.Speed)
	fmt.Printf("Experience: %d to reach level 2, x%.1f per level\n", g.BaseExp, g.ExpFactor)
	fmt.Printf("Malakor appears at level %d.\n", cfg.Bosses.FinalLevel)
}
