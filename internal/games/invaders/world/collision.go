package world

import "github.com/vovakirdan/tui-invaders/internal/core"

// Hit records one laser/bug pair found within the hit radius.
type Hit struct {
	Laser EntityID
	Bug   EntityID
	At    core.Vec2 // Laser position when the hit was found
}

type placed struct {
	id  EntityID
	pos core.Vec2
}

// ResolveCollisions compares every laser against every bug that is alive at
// the start of the pass and destroys both members of each pair closer than
// the hit radius.
//
// Pairs are judged independently: a laser in range of several bugs takes all
// of them, and a bug in range of several lasers takes all of those lasers.
// Destruction is idempotent so an entity matched twice is removed once.
func ResolveCollisions(s *Store, p Params, rep *Report) {
	lasers := snapshot(s, KindLaser)
	if len(lasers) == 0 {
		return
	}
	bugs := snapshot(s, KindBug)

	for _, l := range lasers {
		for _, b := range bugs {
			if l.pos.Distance(b.pos) >= p.HitRadius {
				continue
			}
			s.Destroy(b.id)
			s.Destroy(l.id)
			if rep != nil {
				rep.Hits = append(rep.Hits, Hit{Laser: l.id, Bug: b.id, At: l.pos})
			}
		}
	}
}

func snapshot(s *Store, kind Kind) []placed {
	ids := s.IDs(kind)
	out := make([]placed, 0, len(ids))
	for _, id := range ids {
		pos, _ := s.Position(id)
		out = append(out, placed{id: id, pos: pos})
	}
	return out
}
