// Package invaders implements the arcade shooter: a ship at the bottom of
// the arena fires lasers at a sweeping, descending formation of bugs.
//
// The simulation itself lives in the world subpackage. Game adapts it to the
// registry interface: it derives press edges from raw input, steps the
// world once per tick and draws the world view.
package invaders

import (
	"sync"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders/world"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// GameID is the registry id of this game.
const GameID = "invaders"

var (
	pkgConfigMu sync.RWMutex
	pkgConfig   = config.DefaultInvadersConfig()
)

// SetConfig sets the configuration used by games created through the
// registry. Call it before registry.Create.
func SetConfig(cfg config.InvadersConfig) {
	pkgConfigMu.Lock()
	defer pkgConfigMu.Unlock()
	pkgConfig = cfg
}

func currentConfig() config.InvadersConfig {
	pkgConfigMu.RLock()
	defer pkgConfigMu.RUnlock()
	return pkgConfig
}

// Game implements registry.Game for invaders.
type Game struct {
	cfg     config.InvadersConfig
	world   *world.World
	runtime core.RuntimeConfig
	fire    world.EdgeDetector
	restart world.EdgeDetector
}

// New creates a game with the registry configuration.
func New() *Game {
	return NewWithConfig(currentConfig())
}

// NewWithConfig creates a game with an explicit configuration.
func NewWithConfig(cfg config.InvadersConfig) *Game {
	return &Game{
		cfg:     cfg,
		world:   world.New(Params(cfg)),
		runtime: core.DefaultConfig(),
	}
}

// Params converts the YAML configuration into simulation parameters.
func Params(cfg config.InvadersConfig) world.Params {
	return world.Params{
		PlayerAccel:       cfg.Player.Accel,
		PlayerMaxVelocity: cfg.Player.MaxVelocity,
		PlayerDamping:     cfg.Player.Damping,
		PlayerBoundX:      cfg.Player.BoundX,
		PlayerSpawn:       core.V(cfg.Player.Spawn.X, cfg.Player.Spawn.Y),
		LaserSpawnOffsetY: cfg.Player.LaserOffsetY,

		BugSweepSpeed:   cfg.Bugs.SweepSpeed,
		BugTurnX:        cfg.Bugs.TurnX,
		BugDescendSpeed: cfg.Bugs.DescendSpeed,
		BugDescendSteps: cfg.Bugs.DescendSteps,

		LaserSpeed: cfg.Lasers.Speed,
		LaserTopY:  cfg.Lasers.TopY,

		HitRadius: cfg.Collision.Radius,

		FormationRows:    cfg.Formation.Rows,
		FormationCols:    cfg.Formation.Cols,
		FormationOrigin:  core.V(cfg.Formation.Origin.X, cfg.Formation.Origin.Y),
		FormationSpacing: cfg.Formation.Spacing,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Invaders"
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.InvadersConfig {
	return g.cfg
}

// World exposes the underlying simulation.
func (g *Game) World() *world.World {
	return g.world
}

// Reset spawns the player and the formation from scratch.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.restart.Reset()
	g.respawn()
}

// respawn re-runs setup. The restart detector keeps its state so a held
// restart key does not count as a new press.
func (g *Game) respawn() {
	g.world.Setup()
	g.fire.Reset()
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.restart.Update(in.Has(core.ActionRestart)) {
		g.respawn()
		return core.StepResult{
			State:  g.State(),
			Events: []core.Event{{Msg: "formation respawned", KeyVals: []any{"bugs", g.world.Store().Count(world.KindBug)}}},
		}
	}

	snap := world.InputSnapshot{
		LeftHeld:    in.Has(core.ActionLeft),
		RightHeld:   in.Has(core.ActionRight),
		FirePressed: g.fire.Update(in.Has(core.ActionFire)),
	}
	rep := g.world.Step(snap)

	return core.StepResult{
		State:  g.State(),
		Events: g.events(rep),
	}
}

func (g *Game) events(rep world.Report) []core.Event {
	n := len(rep.Fired) + len(rep.Expired) + len(rep.Hits)
	if n == 0 {
		return nil
	}

	events := make([]core.Event, 0, n)
	for _, id := range rep.Fired {
		pos, _ := g.world.Store().Position(id)
		events = append(events, core.Event{
			Msg:     "laser fired",
			KeyVals: []any{"frame", rep.Frame, "laser", id, "x", pos.X},
		})
	}
	for _, id := range rep.Expired {
		events = append(events, core.Event{
			Msg:     "laser expired",
			KeyVals: []any{"frame", rep.Frame, "laser", id},
		})
	}
	for _, h := range rep.Hits {
		events = append(events, core.Event{
			Msg:     "bug zapped",
			KeyVals: []any{"frame", rep.Frame, "laser", h.Laser, "bug", h.Bug, "x", h.At.X, "y", h.At.Y},
		})
	}
	return events
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.world.Store()
	return core.GameState{
		Frame:  g.world.Frame(),
		Bugs:   s.Count(world.KindBug),
		Lasers: s.Count(world.KindLaser),
	}
}

// Sprites returns the render view as sprite-sheet draws in world units.
func (g *Game) Sprites() []core.Sprite {
	view := g.world.View()
	out := make([]core.Sprite, len(view))
	for i, v := range view {
		out[i] = core.Sprite{Index: v.Sprite, Pos: v.Pos}
	}
	return out
}

// Arena returns the playfield size in world units.
func (g *Game) Arena() (width, height int) {
	return g.cfg.Arena.Width, g.cfg.Arena.Height
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
