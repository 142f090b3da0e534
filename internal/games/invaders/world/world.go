package world

import "github.com/vovakirdan/tui-invaders/internal/core"

// Report lists what happened during one frame.
type Report struct {
	Frame   uint64
	Fired   []EntityID // Lasers spawned by the player
	Expired []EntityID // Lasers removed past the top edge
	Hits    []Hit      // Laser/bug pairs destroyed by the resolver
}

// World runs the fixed per-frame pipeline over one store.
type World struct {
	store  *Store
	params Params
	frame  uint64
}

// New creates an empty world. Call Setup to spawn the starting entities.
func New(p Params) *World {
	return &World{
		store:  NewStore(),
		params: p,
	}
}

// Store returns the entity store the systems operate on.
func (w *World) Store() *Store {
	return w.store
}

// Params returns the tuning in use.
func (w *World) Params() Params {
	return w.params
}

// Frame returns the number of frames stepped since the last Setup.
func (w *World) Frame() uint64 {
	return w.frame
}

// Setup clears the store and spawns the player and the bug formation.
func (w *World) Setup() {
	w.store.Clear()
	w.frame = 0
	w.store.SpawnPlayer(w.params.PlayerSpawn, 0)
	SpawnFormation(w.store, w.params)
}

// Step runs one frame: player, bugs, lasers, then collisions. Movement always
// completes before collisions are evaluated.
func (w *World) Step(in InputSnapshot) Report {
	w.frame++
	rep := Report{Frame: w.frame}

	UpdatePlayers(w.store, w.params, in, &rep)
	MoveBugs(w.store, w.params)
	MoveLasers(w.store, w.params, &rep)
	ResolveCollisions(w.store, w.params, &rep)

	return rep
}

// SpawnFormation spawns the bug grid. Even rows start sweeping left and odd
// rows sweep right; rows stack downward from the origin.
func SpawnFormation(s *Store, p Params) []EntityID {
	ids := make([]EntityID, 0, p.FormationRows*p.FormationCols)
	for row := 0; row < p.FormationRows; row++ {
		y := p.FormationOrigin.Y - float64(row)*p.FormationSpacing
		m := SweepLeft()
		if row%2 != 0 {
			m = SweepRight()
		}
		for col := 0; col < p.FormationCols; col++ {
			x := p.FormationOrigin.X + float64(col)*p.FormationSpacing
			ids = append(ids, s.SpawnBug(core.V(x, y), m))
		}
	}
	return ids
}

// SpriteView is the read-only render view of one entity.
type SpriteView struct {
	ID     EntityID
	Kind   Kind
	Pos    core.Vec2
	Sprite int
}

// View returns every live entity for drawing: bugs first, then lasers, then
// the player on top.
func (w *World) View() []SpriteView {
	out := make([]SpriteView, 0, w.store.Len())
	for _, kind := range []Kind{KindBug, KindLaser, KindPlayer} {
		w.store.ForEach(kind, func(id EntityID) {
			t := w.store.Transform(id)
			out = append(out, SpriteView{ID: id, Kind: kind, Pos: t.Pos, Sprite: t.Sprite})
		})
	}
	return out
}
