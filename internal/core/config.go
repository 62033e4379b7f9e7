package core

// Logical world size in pixels. Every Canvas call uses this coordinate space;
// the platform scales it to whatever it actually draws on.
const (
	WorldWidth  = 1000
	WorldHeight = 700
)

// RuntimeConfig contains the settings the engine needs at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  100,
		ScreenH:  35,
		TickRate: 60,
		Seed:     0, // 0 means the CLI seeds from the clock
	}
}
