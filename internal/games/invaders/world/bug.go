package world

import (
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Direction is the horizontal heading a descent resumes with.
type Direction uint8

const (
	Left Direction = iota
	Right
)

// String returns "left" or "right".
func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// Mode is the phase of a bug's movement.
type Mode uint8

const (
	ModeSweepLeft Mode = iota
	ModeSweepRight
	ModeDescend
)

// Movement is the per-bug state machine. Remaining and Next are only
// meaningful in ModeDescend.
type Movement struct {
	Mode      Mode
	Remaining float64
	Next      Direction
}

// SweepLeft returns a leftward sweep.
func SweepLeft() Movement { return Movement{Mode: ModeSweepLeft} }

// SweepRight returns a rightward sweep.
func SweepRight() Movement { return Movement{Mode: ModeSweepRight} }

// Descend returns a descent with the given counter that resumes toward next.
func Descend(remaining float64, next Direction) Movement {
	return Movement{Mode: ModeDescend, Remaining: remaining, Next: next}
}

// Sweep returns the sweep heading in direction d.
func Sweep(d Direction) Movement {
	if d == Left {
		return SweepLeft()
	}
	return SweepRight()
}

func (m Movement) String() string {
	switch m.Mode {
	case ModeSweepLeft:
		return "sweep-left"
	case ModeSweepRight:
		return "sweep-right"
	case ModeDescend:
		return fmt.Sprintf("descend(%g, %s)", m.Remaining, m.Next)
	default:
		return "unknown"
	}
}

// Advance moves pos one frame according to the current mode and returns the
// new position together with the mode for the next frame.
//
// A sweep that crosses the turn line switches to a descent on the same frame
// and reverses heading. A descent always steps down; when its counter was
// already below one on entry it hands over to the pending sweep.
func (m Movement) Advance(pos core.Vec2, p Params) (core.Vec2, Movement) {
	next := m
	switch m.Mode {
	case ModeSweepLeft:
		pos.X -= p.BugSweepSpeed
		if pos.X < -p.BugTurnX {
			next = Descend(p.BugDescendSteps, Right)
		}
	case ModeSweepRight:
		pos.X += p.BugSweepSpeed
		if pos.X > p.BugTurnX {
			next = Descend(p.BugDescendSteps, Left)
		}
	case ModeDescend:
		pos.Y -= p.BugDescendSpeed
		next = Descend(m.Remaining-1, m.Next)
		if m.Remaining < 1 {
			next = Sweep(m.Next)
		}
	}
	return pos, next
}

// MoveBugs advances every bug independently by one frame.
func MoveBugs(s *Store, p Params) {
	s.ForEach(KindBug, func(id EntityID) {
		b := s.Bug(id)
		t := s.Transform(id)
		t.Pos, b.Movement = b.Movement.Advance(t.Pos, p)
	})
}
