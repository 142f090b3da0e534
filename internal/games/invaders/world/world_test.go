package world

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestSetupSpawnsFormation(t *testing.T) {
	w := New(DefaultParams())
	w.Setup()
	s := w.Store()

	if n := s.Count(KindBug); n != 80 {
		t.Errorf("bugs = %d, expected 80", n)
	}
	if n := s.Count(KindPlayer); n != 1 {
		t.Errorf("players = %d, expected 1", n)
	}
	if n := s.Count(KindLaser); n != 0 {
		t.Errorf("lasers = %d, expected 0", n)
	}

	player := s.IDs(KindPlayer)[0]
	if pos, _ := s.Position(player); pos != core.V(0, -220) {
		t.Errorf("player at %v, expected (0, -220)", pos)
	}
	if v := s.Player(player).VelocityX; v != 0 {
		t.Errorf("player velocity = %f, expected 0", v)
	}

	bugs := s.IDs(KindBug)
	for i, id := range bugs {
		row, col := i/20, i%20
		want := core.V(-300+30*float64(col), 200-30*float64(row))
		if pos, _ := s.Position(id); pos != want {
			t.Errorf("bug r%d c%d at %v, expected %v", row, col, pos, want)
		}

		mode := s.Bug(id).Movement
		if row%2 == 0 && mode != SweepLeft() {
			t.Errorf("row %d bug mode = %v, expected sweep-left", row, mode)
		}
		if row%2 == 1 && mode != SweepRight() {
			t.Errorf("row %d bug mode = %v, expected sweep-right", row, mode)
		}
	}
}

func TestSetupResets(t *testing.T) {
	w := New(DefaultParams())
	w.Setup()
	fire := EdgeDetector{}
	for i := 0; i < 30; i++ {
		w.Step(InputSnapshot{LeftHeld: true, FirePressed: fire.Update(i%2 == 0)})
	}

	w.Setup()

	if w.Frame() != 0 {
		t.Errorf("Frame() = %d after Setup, expected 0", w.Frame())
	}
	if w.Store().Len() != 81 {
		t.Errorf("entities = %d after Setup, expected 81", w.Store().Len())
	}
}

func TestStepMovesNewLaserSameFrame(t *testing.T) {
	w := New(DefaultParams())
	w.Setup()

	rep := w.Step(InputSnapshot{FirePressed: true})

	if rep.Frame != 1 {
		t.Errorf("Frame = %d, expected 1", rep.Frame)
	}
	if len(rep.Fired) != 1 {
		t.Fatalf("Fired = %v, expected one laser", rep.Fired)
	}
	pos, _ := w.Store().Position(rep.Fired[0])
	if pos != core.V(0, -192) {
		t.Errorf("laser at %v, expected (0, -192): spawned at -196 then moved", pos)
	}
}

func TestStepCollidesAfterMovement(t *testing.T) {
	// Laser and bug start 29 apart; after the bug descends 2 and the laser
	// climbs 4 they are 23 apart and must collide in this frame.
	w := New(DefaultParams())
	s := w.Store()
	laser := s.SpawnLaser(core.V(0, 0))
	bug := s.SpawnBug(core.V(0, 29), Descend(5, Left))

	rep := w.Step(InputSnapshot{})

	if s.Exists(laser) || s.Exists(bug) {
		t.Error("collision should use post-movement positions")
	}
	if len(rep.Hits) != 1 {
		t.Errorf("Hits = %+v, expected 1", rep.Hits)
	}
}

func TestStepWithoutPlayer(t *testing.T) {
	w := New(DefaultParams())
	w.Store().SpawnBug(core.V(0, 0), SweepLeft())

	rep := w.Step(InputSnapshot{LeftHeld: true, FirePressed: true})

	if len(rep.Fired) != 0 {
		t.Errorf("Fired = %v, expected none without a player", rep.Fired)
	}
}

func TestStepDeterminism(t *testing.T) {
	run := func() []SpriteView {
		w := New(DefaultParams())
		w.Setup()
		var fire EdgeDetector
		for i := 0; i < 600; i++ {
			in := InputSnapshot{
				LeftHeld:    (i/40)%2 == 0,
				RightHeld:   (i/40)%2 == 1,
				FirePressed: fire.Update(i%7 < 2),
			}
			w.Step(in)
		}
		return w.View()
	}

	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("runs diverged: %d vs %d entities", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("runs diverged at %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestViewExposesKindAndPosition(t *testing.T) {
	w := New(DefaultParams())
	w.Setup()
	w.Step(InputSnapshot{FirePressed: true})

	view := w.View()
	if len(view) != 82 {
		t.Fatalf("view has %d entries, expected 82", len(view))
	}

	counts := map[Kind]int{}
	for _, v := range view {
		counts[v.Kind]++
		if want := spriteFor(v.Kind); v.Sprite != want {
			t.Errorf("%s sprite = %d, expected %d", v.Kind, v.Sprite, want)
		}
	}
	if counts[KindBug] != 80 || counts[KindLaser] != 1 || counts[KindPlayer] != 1 {
		t.Errorf("view counts = %v", counts)
	}
	if last := view[len(view)-1]; last.Kind != KindPlayer {
		t.Errorf("player should be drawn last, got %s", last.Kind)
	}
}
