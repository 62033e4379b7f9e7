package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dragonslair/internal/audio"
)

var (
	flagMood     string
	flagOut      string
	flagAllMoods bool
	flagWAVFile  string
)

var musicCmd = &cobra.Command{
	Use:   "music",
	Short: "List or export the soundtrack",
	Long: `The soundtrack is synthesized at startup, one track per mood.
These commands render it without starting the game.`,
}

var musicListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the music moods",
	Args:  cobra.NoArgs,
	Run:   runMusicList,
}

var musicExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a mood's music as a 16-bit stereo WAV file",
	Long: `Renders the music of one mood, or of every mood with --all, and writes
it as a 16-bit stereo PCM WAV file.

Examples:
  dragonslair music export --mood battle --out battle.wav
  dragonslair music export --all --out ./soundtrack`,
	Args: cobra.NoArgs,
	Run:  runMusicExport,
}

var musicPlayCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a mood's music, or a WAV file, on the speaker",
	Long: `Plays one mood's track once, without starting the game. With --file it
plays a WAV file instead, such as one written by "music export".

Examples:
  dragonslair music play --mood boss
  dragonslair music play --file ./soundtrack/victory.wav`,
	Args: cobra.NoArgs,
	Run:  runMusicPlay,
}

func init() {
	musicPlayCmd.Flags().StringVar(&flagMood, "mood", "menu", "Mood to play")
	musicPlayCmd.Flags().StringVar(&flagWAVFile, "file", "", "WAV file to play instead of a mood")

	musicExportCmd.Flags().StringVar(&flagMood, "mood", "menu", "Mood to export")
	musicExportCmd.Flags().StringVar(&flagOut, "out", "", "Output file, or directory with --all")
	musicExportCmd.Flags().BoolVar(&flagAllMoods, "all", false, "Export every mood into the --out directory")

	musicCmd.AddCommand(musicListCmd)
	musicCmd.AddCommand(musicExportCmd)
	musicCmd.AddCommand(musicPlayCmd)
}

// renderDirector renders the soundtrack without opening a speaker.
func renderDirector() *audio.Director {
	cfg, _, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return audio.NewDirector(audio.NullSink{}, cfg.Audio.SampleRate, nil)
}

func runMusicList(_ *cobra.Command, _ []string) {
	d := renderDirector()

	fmt.Printf("  %-10s  %-8s  %s\n", "Mood", "Length", "Plays")
	fmt.Printf("  %-10s  %-8s  %s\n", "----", "------", "-----")
	for _, mood := range audio.Moods {
		buf, _ := d.Buffer(mood)
		plays := "once"
		if mood.Loops() {
			plays = "loop"
		}
		fmt.Printf("  %-10s  %-8s  %s\n", mood, buf.Duration().Round(100 * time.Millisecond), plays)
	}
}

func runMusicExport(_ *cobra.Command, _ []string) {
	d := renderDirector()

	if flagAllMoods {
		dir := flagOut
		if dir == "" {
			dir = "."
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		for _, mood := range audio.Moods {
			exportMood(d, mood, filepath.Join(dir, mood.String()+".wav"))
		}
		return
	}

	mood, ok := audio.ParseMood(flagMood)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown mood %q\n", flagMood)
		fmt.Fprintln(os.Stderr, "Run 'dragonslair music list' to see the moods.")
		os.Exit(1)
	}
	out := flagOut
	if out == "" {
		out = mood.String() + ".wav"
	}
	exportMood(d, mood, out)
}

func exportMood(d *audio.Director, mood audio.Mood, path string) {
	buf, ok := d.Buffer(mood)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no music for mood %s\n", mood)
		os.Exit(1)
	}
	if err := audio.WriteWAVFile(path, buf); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (%s, %s)\n", path, mood, buf.Duration().Round(100 * time.Millisecond))
}

func runMusicPlay(_ *cobra.Command, _ []string) {
	cfg, _, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	var buf audio.PCM
	label := flagWAVFile
	if flagWAVFile != "" {
		buf, err = audio.ReadWAVFile(flagWAVFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	} else {
		mood, ok := audio.ParseMood(flagMood)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown mood %q\n", flagMood)
			os.Exit(1)
		}
		buf, _ = audio.NewDirector(audio.NullSink{}, cfg.Audio.SampleRate, nil).Buffer(mood)
		label = mood.String()
	}

	sink, err := audio.NewBeepSink(audio.BeepOptions{
		SampleRate:  cfg.Audio.SampleRate,
		Buffer:      time.Duration(cfg.Audio.BufferMillis) * time.Millisecond,
		MusicVolume: cfg.Audio.MusicVolume,
		SFXVolume:   cfg.Audio.SFXVolume,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer sink.Close()

	fmt.Printf("Playing %s (%s). Press Ctrl+C to stop.\n", label, buf.Duration().Round(100*time.Millisecond))
	if err := sink.PlayMusic(buf, false); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	for sink.MusicPlaying() {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
