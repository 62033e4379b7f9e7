// Package game is the top-level controller: it owns the mode graph, the
// current run, and dispatches every tick to the active screen.
package game

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dragonslair/internal/audio"
	"github.com/vovakirdan/dragonslair/internal/config"
	"github.com/vovakirdan/dragonslair/internal/storage"
)

// RunStore records finished runs. *storage.Store implements it.
type RunStore interface {
	SaveRun(run storage.Run) (string, error)
	BestScore() (int, error)
}

// AppContext is everything the machine needs from the outside world. It is
// built once at startup and handed to NewMachine.
type AppContext struct {
	Config config.GameConfig
	Logger *log.Logger
	Audio  *audio.Director // nil plays nothing
	Store  RunStore        // nil keeps no hall of fame
	Seed   int64
	// SessionID tags every log line of one program run. Empty gets a fresh uuid.
	SessionID string
}

func (a AppContext) logger() *log.Logger {
	if a.Logger == nil {
		return log.New(io.Discard)
	}
	return a.Logger
}
