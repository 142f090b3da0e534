package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the built-in configuration. It matches the
// embedded defaults/invaders.yaml.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Arena: ArenaConfig{
			Width:  640,
			Height: 480,
		},
		Player: PlayerConfig{
			Accel:        1.0,
			MaxVelocity:  16.0,
			Damping:      0.75,
			BoundX:       320.0,
			Spawn:        Point{X: 0, Y: -220},
			LaserOffsetY: 24.0,
		},
		Bugs: BugsConfig{
			SweepSpeed:   2.0,
			TurnX:        300.0,
			DescendSpeed: 2.0,
			DescendSteps: 12,
		},
		Lasers: LasersConfig{
			Speed: 4.0,
			TopY:  240.0,
		},
		Collision: CollisionConfig{
			Radius: 24.0,
		},
		Formation: FormationConfig{
			Rows:    4,
			Cols:    20,
			Origin:  Point{X: -300, Y: 200},
			Spacing: 30.0,
		},
		Window: WindowConfig{
			Title: "Invaders",
			Scale: 1,
			VSync: true,
		},
		TUI: TUIConfig{
			HoldTicks: 8,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultInvadersYAML
}
