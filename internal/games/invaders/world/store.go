// Package world holds the invaders simulation: the entity store and the
// per-frame systems that move the player, the bugs and the lasers and
// resolve hits between them.
//
// Everything here is single-threaded and deterministic. Systems receive the
// store explicitly and mutate it immediately; there is no deferred command
// queue.
package world

import (
	"slices"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// EntityID identifies an entity for its whole lifetime. IDs are never reused
// within one store.
type EntityID uint32

// Kind tags what an entity is. Each kind carries its own component.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindBug
	KindLaser
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindBug:
		return "bug"
	case KindLaser:
		return "laser"
	default:
		return "unknown"
	}
}

// Sprite sheet cells, one per kind.
const (
	SpritePlayer = 0
	SpriteBug    = 1
	SpriteLaser  = 2
)

// Transform is the position of an entity plus the sprite cell it draws with.
type Transform struct {
	Pos    core.Vec2
	Sprite int
}

// Player is the component of the player-controlled ship.
type Player struct {
	VelocityX float64
}

// Bug is the component of an enemy.
type Bug struct {
	Movement Movement
}

// Store owns every live entity and its components.
// Components live in per-kind maps keyed by EntityID; creation order is kept
// per kind so iteration is deterministic.
type Store struct {
	nextID     EntityID
	kinds      map[EntityID]Kind
	transforms map[EntityID]*Transform
	players    map[EntityID]*Player
	bugs       map[EntityID]*Bug
	order      [3][]EntityID
}

// NewStore creates an empty store.
func NewStore() *Store {
	s := &Store{}
	s.Clear()
	return s
}

// Clear destroys every entity. IDs keep increasing across clears.
func (s *Store) Clear() {
	s.kinds = make(map[EntityID]Kind)
	s.transforms = make(map[EntityID]*Transform)
	s.players = make(map[EntityID]*Player)
	s.bugs = make(map[EntityID]*Bug)
	for k := range s.order {
		s.order[k] = nil
	}
}

// NoEntity is never assigned to a live entity.
const NoEntity EntityID = 0

// Create adds an entity of the given kind at pos with a zero-valued component.
// An unknown kind creates nothing and returns NoEntity.
func (s *Store) Create(kind Kind, pos core.Vec2) EntityID {
	if int(kind) >= len(s.order) {
		return NoEntity
	}
	s.nextID++
	id := s.nextID

	s.kinds[id] = kind
	s.transforms[id] = &Transform{Pos: pos, Sprite: spriteFor(kind)}
	switch kind {
	case KindPlayer:
		s.players[id] = &Player{}
	case KindBug:
		s.bugs[id] = &Bug{}
	}
	s.order[kind] = append(s.order[kind], id)
	return id
}

// SpawnPlayer creates a player at pos with the given horizontal velocity.
func (s *Store) SpawnPlayer(pos core.Vec2, velocityX float64) EntityID {
	id := s.Create(KindPlayer, pos)
	s.players[id].VelocityX = velocityX
	return id
}

// SpawnBug creates a bug at pos in the given movement mode.
func (s *Store) SpawnBug(pos core.Vec2, m Movement) EntityID {
	id := s.Create(KindBug, pos)
	s.bugs[id].Movement = m
	return id
}

// SpawnLaser creates a laser at pos.
func (s *Store) SpawnLaser(pos core.Vec2) EntityID {
	return s.Create(KindLaser, pos)
}

// Destroy removes the entity and all its components.
// Destroying an unknown or already destroyed id is a no-op; the return value
// reports whether anything was removed.
func (s *Store) Destroy(id EntityID) bool {
	kind, ok := s.kinds[id]
	if !ok {
		return false
	}
	delete(s.kinds, id)
	delete(s.transforms, id)
	delete(s.players, id)
	delete(s.bugs, id)
	if i := slices.Index(s.order[kind], id); i >= 0 {
		s.order[kind] = slices.Delete(s.order[kind], i, i+1)
	}
	return true
}

// Exists reports whether id is alive.
func (s *Store) Exists(id EntityID) bool {
	_, ok := s.kinds[id]
	return ok
}

// Kind returns the kind of a live entity.
func (s *Store) Kind(id EntityID) (Kind, bool) {
	k, ok := s.kinds[id]
	return k, ok
}

// Position returns the position of a live entity.
func (s *Store) Position(id EntityID) (core.Vec2, bool) {
	t, ok := s.transforms[id]
	if !ok {
		return core.Vec2{}, false
	}
	return t.Pos, true
}

// SetPosition moves a live entity. Unknown ids are ignored.
func (s *Store) SetPosition(id EntityID, pos core.Vec2) {
	if t, ok := s.transforms[id]; ok {
		t.Pos = pos
	}
}

// Transform returns the transform of a live entity, or nil.
func (s *Store) Transform(id EntityID) *Transform {
	return s.transforms[id]
}

// Player returns the player component, or nil if id is not a live player.
func (s *Store) Player(id EntityID) *Player {
	return s.players[id]
}

// Bug returns the bug component, or nil if id is not a live bug.
func (s *Store) Bug(id EntityID) *Bug {
	return s.bugs[id]
}

// IDs returns a snapshot of the live ids of a kind in creation order.
func (s *Store) IDs(kind Kind) []EntityID {
	if int(kind) >= len(s.order) {
		return nil
	}
	return slices.Clone(s.order[kind])
}

// ForEach calls fn for every entity of kind that is alive when the call
// starts. Entities destroyed by fn (or by an earlier callback) are skipped;
// entities created during iteration are not visited.
func (s *Store) ForEach(kind Kind, fn func(id EntityID)) {
	for _, id := range s.IDs(kind) {
		if s.Exists(id) {
			fn(id)
		}
	}
}

// Count returns the number of live entities of a kind.
func (s *Store) Count(kind Kind) int {
	if int(kind) >= len(s.order) {
		return 0
	}
	return len(s.order[kind])
}

// Len returns the number of live entities.
func (s *Store) Len() int {
	return len(s.kinds)
}

func spriteFor(kind Kind) int {
	switch kind {
	case KindPlayer:
		return SpritePlayer
	case KindBug:
		return SpriteBug
	default:
		return SpriteLaser
	}
}
