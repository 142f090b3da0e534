package world

// MoveLasers steps every laser upward and removes those past the top edge.
func MoveLasers(s *Store, p Params, rep *Report) {
	s.ForEach(KindLaser, func(id EntityID) {
		t := s.Transform(id)
		t.Pos.Y += p.LaserSpeed
		if t.Pos.Y > p.LaserTopY {
			s.Destroy(id)
			if rep != nil {
				rep.Expired = append(rep.Expired, id)
			}
		}
	})
}
