// Package config provides YAML-based configuration loading for the
// invaders simulation and its hosts.
package config

// InvadersConfig contains all configuration for the game and its hosts.
type InvadersConfig struct {
	Arena     ArenaConfig     `yaml:"arena"`
	Player    PlayerConfig    `yaml:"player"`
	Bugs      BugsConfig      `yaml:"bugs"`
	Lasers    LasersConfig    `yaml:"lasers"`
	Collision CollisionConfig `yaml:"collision"`
	Formation FormationConfig `yaml:"formation"`
	Window    WindowConfig    `yaml:"window"`
	TUI       TUIConfig       `yaml:"tui"`
}

// Point is a position in world units (origin at the arena centre, y up).
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// ArenaConfig defines the visible playfield in world units.
type ArenaConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Accel        float64 `yaml:"accel"`
	MaxVelocity  float64 `yaml:"max_velocity"`
	Damping      float64 `yaml:"damping"`
	BoundX       float64 `yaml:"bound_x"`
	Spawn        Point   `yaml:"spawn"`
	LaserOffsetY float64 `yaml:"laser_offset_y"`
}

// BugsConfig defines the enemy movement state machine.
type BugsConfig struct {
	SweepSpeed   float64 `yaml:"sweep_speed"`
	TurnX        float64 `yaml:"turn_x"`
	DescendSpeed float64 `yaml:"descend_speed"`
	DescendSteps float64 `yaml:"descend_steps"`
}

// LasersConfig defines projectile motion.
type LasersConfig struct {
	Speed float64 `yaml:"speed"`
	TopY  float64 `yaml:"top_y"`
}

// CollisionConfig defines the hit test.
type CollisionConfig struct {
	Radius float64 `yaml:"radius"`
}

// FormationConfig defines the starting bug grid.
type FormationConfig struct {
	Rows    int     `yaml:"rows"`
	Cols    int     `yaml:"cols"`
	Origin  Point   `yaml:"origin"`
	Spacing float64 `yaml:"spacing"`
}

// WindowConfig defines the desktop window host.
type WindowConfig struct {
	Title       string `yaml:"title"`
	Scale       int    `yaml:"scale"`
	SpriteSheet string `yaml:"sprite_sheet"` // PNG, 3x1 cells of 24x24; empty = generated
	VSync       bool   `yaml:"vsync"`
}

// TUIConfig defines the terminal host.
type TUIConfig struct {
	// Terminals report key presses but not releases, so a key counts as
	// held for this many ticks after its last press or repeat.
	HoldTicks int `yaml:"hold_ticks"`
}
