package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/dragonslair/internal/audio"
	"github.com/vovakirdan/dragonslair/internal/config"
	"github.com/vovakirdan/dragonslair/internal/core"
	"github.com/vovakirdan/dragonslair/internal/storage"
)

// loadConfig resolves the game config from the lookup chain and applies the
// command-line overrides.
func loadConfig() (config.GameConfig, string, error) {
	cfg, source, err := config.LoadGameConfig(flagConfig)
	if err != nil {
		return cfg, source, err
	}
	// The flag wins over the file; the preset is applied exactly once.
	name := flagDifficulty
	if name == "" {
		name = string(cfg.Difficulty)
	}
	preset, err := config.ParseDifficulty(name)
	if err != nil {
		return cfg, source, err
	}
	if err := cfg.ApplyDifficulty(preset); err != nil {
		return cfg, source, err
	}
	if flagFPS > 0 {
		cfg.Display.TickRate = flagFPS
	}
	if flagNoAudio {
		cfg.Audio.Enabled = false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, source, err
	}
	return cfg, source, nil
}

// newLogger opens the log file. The terminal belongs to the game, so logs
// never go to stdout while playing.
func newLogger() (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	path := flagLogFile
	if path == "" {
		dir := config.UserDir()
		if dir == "" {
			return log.New(io.Discard), io.NopCloser(nil), nil
		}
		path = filepath.Join(dir, "dragonslair.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          "dragonslair",
		Level:           level,
	})
	return logger, f, nil
}

// openStore opens the hall of fame, or returns nil when it is disabled or
// unavailable. The game runs without it.
func openStore(logger *log.Logger) *storage.Store {
	if flagNoDB {
		return nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("hall of fame unavailable", "path", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open hall of fame database: %v\n", err)
		return nil
	}
	return store
}

// newDirector renders the music and opens the speaker. Without a device the
// director plays into a NullSink.
func newDirector(cfg config.AudioConfig, logger *log.Logger) *audio.Director {
	var sink audio.Sink = audio.NullSink{}
	if cfg.Enabled {
		s, err := audio.NewBeepSink(audio.BeepOptions{
			SampleRate:  cfg.SampleRate,
			Buffer:      time.Duration(cfg.BufferMillis) * time.Millisecond,
			MusicVolume: cfg.MusicVolume,
			SFXVolume:   cfg.SFXVolume,
		})
		if err != nil {
			logger.Warn("audio unavailable, playing silently", "error", err)
		} else {
			sink = s
		}
	}
	return audio.NewDirector(sink, cfg.SampleRate, logger)
}

// screenSize returns the cell grid: configured, else the terminal, else the default.
func screenSize(cfg config.DisplayConfig) (int, int) {
	def := core.DefaultConfig()
	width, height := def.ScreenW, def.ScreenH
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	if cfg.Width > 0 {
		width = cfg.Width
	}
	if cfg.Height > 0 {
		height = cfg.Height
	}
	return width, height
}
