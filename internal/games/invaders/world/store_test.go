package world

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestStoreCreateDestroy(t *testing.T) {
	s := NewStore()

	p := s.SpawnPlayer(core.V(0, -220), 0)
	b := s.SpawnBug(core.V(10, 20), SweepRight())
	l := s.SpawnLaser(core.V(1, 2))

	if s.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", s.Len())
	}
	if p == b || b == l || p == l {
		t.Fatalf("ids should be unique, got %d %d %d", p, b, l)
	}

	if k, ok := s.Kind(b); !ok || k != KindBug {
		t.Errorf("Kind(bug) = %v/%v, expected bug/true", k, ok)
	}
	if pos, ok := s.Position(l); !ok || pos != core.V(1, 2) {
		t.Errorf("Position(laser) = %v/%v, expected (1,2)/true", pos, ok)
	}
	if s.Bug(b).Movement.Mode != ModeSweepRight {
		t.Errorf("bug mode = %v, expected sweep-right", s.Bug(b).Movement)
	}

	if !s.Destroy(b) {
		t.Error("Destroy(bug) should report removal")
	}
	if s.Exists(b) {
		t.Error("destroyed bug should not exist")
	}
	if s.Bug(b) != nil || s.Transform(b) != nil {
		t.Error("destroyed bug should lose all components")
	}
	if _, ok := s.Position(b); ok {
		t.Error("Position of destroyed entity should report not found")
	}
	if s.Count(KindBug) != 0 {
		t.Errorf("Count(bug) = %d, expected 0", s.Count(KindBug))
	}
}

func TestStoreDestroyIsIdempotent(t *testing.T) {
	s := NewStore()
	id := s.SpawnLaser(core.V(0, 0))

	if !s.Destroy(id) {
		t.Fatal("first Destroy should remove the laser")
	}
	if s.Destroy(id) {
		t.Error("second Destroy should be a no-op")
	}
	if s.Destroy(EntityID(9999)) {
		t.Error("Destroy of unknown id should be a no-op")
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", s.Len())
	}
}

func TestStoreSetPosition(t *testing.T) {
	s := NewStore()
	id := s.SpawnBug(core.V(0, 0), SweepLeft())

	s.SetPosition(id, core.V(-5, 7))
	if pos, _ := s.Position(id); pos != core.V(-5, 7) {
		t.Errorf("Position() = %v, expected (-5, 7)", pos)
	}

	// Unknown ids are ignored
	s.SetPosition(EntityID(12345), core.V(1, 1))
}

func TestStoreForEachSkipsDestroyed(t *testing.T) {
	s := NewStore()
	a := s.SpawnLaser(core.V(0, 0))
	b := s.SpawnLaser(core.V(0, 10))
	c := s.SpawnLaser(core.V(0, 20))

	var visited []EntityID
	s.ForEach(KindLaser, func(id EntityID) {
		visited = append(visited, id)
		if id == a {
			s.Destroy(b)
			s.SpawnLaser(core.V(0, 30)) // not visited in this pass
		}
	})

	if len(visited) != 2 || visited[0] != a || visited[1] != c {
		t.Errorf("visited = %v, expected [%d %d]", visited, a, c)
	}
	if s.Count(KindLaser) != 3 {
		t.Errorf("Count(laser) = %d, expected 3", s.Count(KindLaser))
	}
}

func TestStoreIDsKeepCreationOrder(t *testing.T) {
	s := NewStore()
	var want []EntityID
	for i := 0; i < 5; i++ {
		want = append(want, s.SpawnBug(core.V(float64(i), 0), SweepLeft()))
	}
	s.Destroy(want[2])
	want = append(want[:2], want[3:]...)

	got := s.IDs(KindBug)
	if len(got) != len(want) {
		t.Fatalf("IDs() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("IDs()[%d] = %d, expected %d", i, got[i], want[i])
		}
	}
}

func TestStoreClearKeepsIDsMonotonic(t *testing.T) {
	s := NewStore()
	first := s.SpawnLaser(core.V(0, 0))
	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Len() after Clear = %d, expected 0", s.Len())
	}
	second := s.SpawnLaser(core.V(0, 0))
	if second <= first {
		t.Errorf("id after Clear = %d, expected > %d", second, first)
	}
}

func TestStoreCreateUnknownKind(t *testing.T) {
	s := NewStore()
	id := s.Create(Kind(7), core.V(1, 2))

	if id != NoEntity {
		t.Errorf("Create(unknown) = %d, expected NoEntity", id)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", s.Len())
	}
	if s.Exists(NoEntity) {
		t.Error("NoEntity should never exist")
	}

	next := s.SpawnLaser(core.V(0, 0))
	if next != 1 {
		t.Errorf("first real id = %d, expected 1", next)
	}
}

func TestEdgeDetector(t *testing.T) {
	var e EdgeDetector
	held := []bool{false, true, true, true, false, true, false, false, true}
	expected := []bool{false, true, false, false, false, true, false, false, true}

	for i := range held {
		if got := e.Update(held[i]); got != expected[i] {
			t.Errorf("frame %d: Update(%v) = %v, expected %v", i, held[i], got, expected[i])
		}
	}

	e.Reset()
	if !e.Update(true) {
		t.Error("after Reset a held key should register as a new press")
	}
}
