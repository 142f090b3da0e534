package main

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func newTestGame() *invaders.Game {
	g := invaders.NewWithConfig(config.DefaultInvadersConfig())
	g.Reset(core.DefaultConfig())
	return g
}

func TestParseHold(t *testing.T) {
	tests := []struct {
		in      string
		want    core.Action
		wantErr bool
	}{
		{"", core.ActionNone, false},
		{"none", core.ActionNone, false},
		{"left", core.ActionLeft, false},
		{"right", core.ActionRight, false},
		{"up", core.ActionNone, true},
	}
	for _, tc := range tests {
		got, err := parseHold(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("parseHold(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("parseHold(%q) = %v, expected %v", tc.in, got, tc.want)
		}
	}
}

func TestScriptInput(t *testing.T) {
	s := script{Frames: 10, FireEvery: 3, Hold: core.ActionRight}
	for i := range 7 {
		f := s.input(i)
		if !f.Has(core.ActionRight) {
			t.Errorf("frame %d should hold right", i)
		}
		if want := i%3 == 0; f.Has(core.ActionFire) != want {
			t.Errorf("frame %d fire = %v, expected %v", i, !want, want)
		}
	}
}

func TestSimulateIdle(t *testing.T) {
	sum := simulate(newTestGame(), script{Frames: 100}, quietLogger())

	if sum.State.Frame != 100 {
		t.Errorf("frame = %d, expected 100", sum.State.Frame)
	}
	if sum.State.Bugs != 80 {
		t.Errorf("bugs = %d, expected 80", sum.State.Bugs)
	}
	if len(sum.Events) != 0 {
		t.Errorf("idle run produced events %v", sum.Events)
	}
}

func TestSimulateFiring(t *testing.T) {
	// Fire pressed on frames 0, 2, 4 and 6; every press spawns one laser.
	sum := simulate(newTestGame(), script{Frames: 8, FireEvery: 2}, quietLogger())

	if got := sum.Events["laser fired"]; got != 4 {
		t.Errorf("laser fired = %d, expected 4", got)
	}
	if sum.State.Lasers != 4 {
		t.Errorf("lasers = %d, expected 4", sum.State.Lasers)
	}
}

func TestSimulateHeldFireShootsOnce(t *testing.T) {
	sum := simulate(newTestGame(), script{Frames: 20, FireEvery: 1}, quietLogger())

	if got := sum.Events["laser fired"]; got != 1 {
		t.Errorf("laser fired = %d, expected 1", got)
	}
}
