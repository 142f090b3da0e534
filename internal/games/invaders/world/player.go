package world

import "github.com/vovakirdan/tui-invaders/internal/core"

// UpdatePlayers applies one frame of input to every player entity.
//
// Velocity is clamped before it moves the ship, the position is clamped
// right after, and damping is applied last so a released ship glides to a
// stop. A fire edge spawns exactly one laser above each player.
func UpdatePlayers(s *Store, p Params, in InputSnapshot, rep *Report) {
	s.ForEach(KindPlayer, func(id EntityID) {
		pl := s.Player(id)
		t := s.Transform(id)

		if in.LeftHeld {
			pl.VelocityX -= p.PlayerAccel
		}
		if in.RightHeld {
			pl.VelocityX += p.PlayerAccel
		}

		pl.VelocityX = core.ClampF(pl.VelocityX, -p.PlayerMaxVelocity, p.PlayerMaxVelocity)
		t.Pos.X += pl.VelocityX
		t.Pos.X = core.ClampF(t.Pos.X, -p.PlayerBoundX, p.PlayerBoundX)

		pl.VelocityX *= p.PlayerDamping

		if in.FirePressed {
			laser := s.SpawnLaser(core.V(t.Pos.X, t.Pos.Y+p.LaserSpawnOffsetY))
			if rep != nil {
				rep.Fired = append(rep.Fired, laser)
			}
		}
	})
}
