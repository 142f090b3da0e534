package core

// RuntimeConfig contains host settings passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the host-visible summary of a running game.
type GameState struct {
	Frame  uint64 // Completed simulation frames since the last reset
	Bugs   int    // Live enemies
	Lasers int    // Live projectiles
}

// Event is something notable that happened during a tick.
// KeyVals are alternating key/value pairs ready for a structured logger.
type Event struct {
	Msg     string
	KeyVals []any
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// Sprite is one drawable entity in world units.
// Index selects the cell of the sprite sheet (0 player, 1 bug, 2 laser).
type Sprite struct {
	Index int
	Pos   Vec2
}
