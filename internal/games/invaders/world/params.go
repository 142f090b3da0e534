package world

import "github.com/vovakirdan/tui-invaders/internal/core"

// Params are the tunables of the simulation. DefaultParams reproduces the
// classic behaviour; hosts may load different values from config.
type Params struct {
	// Player
	PlayerAccel       float64   // Velocity change per held frame
	PlayerMaxVelocity float64   // |velocity_x| bound
	PlayerDamping     float64   // Velocity multiplier applied after every move
	PlayerBoundX      float64   // |x| bound
	PlayerSpawn       core.Vec2 // Start position
	LaserSpawnOffsetY float64   // Lasers appear this far above the player

	// Bugs
	BugSweepSpeed   float64 // Horizontal step per frame
	BugTurnX        float64 // |x| past which a sweep turns into a descent
	BugDescendSpeed float64 // Vertical step per descending frame
	BugDescendSteps float64 // Counter loaded when a descent starts

	// Lasers
	LaserSpeed float64 // Vertical step per frame
	LaserTopY  float64 // Lasers above this y are removed

	// Collision
	HitRadius float64 // Laser/bug centre distance that counts as a hit

	// Formation
	FormationRows    int
	FormationCols    int
	FormationOrigin  core.Vec2 // Position of row 0, column 0
	FormationSpacing float64   // Distance between rows and between columns
}

// DefaultParams returns the classic tuning.
func DefaultParams() Params {
	return Params{
		PlayerAccel:       1.0,
		PlayerMaxVelocity: 16.0,
		PlayerDamping:     0.75,
		PlayerBoundX:      320.0,
		PlayerSpawn:       core.V(0, -220),
		LaserSpawnOffsetY: 24.0,

		BugSweepSpeed:   2.0,
		BugTurnX:        300.0,
		BugDescendSpeed: 2.0,
		BugDescendSteps: 12.0,

		LaserSpeed: 4.0,
		LaserTopY:  240.0,

		HitRadius: 24.0,

		FormationRows:    4,
		FormationCols:    20,
		FormationOrigin:  core.V(-300, 200),
		FormationSpacing: 30.0,
	}
}
