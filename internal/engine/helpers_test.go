package engine

import (
	"testing"

	"git.lost.host/meutraa/lanefall/internal/game"
)

// 0.0625s per step, 4 steps per quarter note
var testBeatmap = game.Beatmap{Title: "test", BPM: 120, BeatsPerMeasure: 4, StepsPerMeasure: 16}

type harness struct {
	t      *testing.T
	s      *Session
	c      *ManualClock
	events []Event
}

func newHarness(t *testing.T, notes []game.Note, settings Settings, end float64) *harness {
	t.Helper()
	c := NewManualClock(end)
	s, err := NewSession(&game.Chart{Beatmap: testBeatmap, Notes: notes}, settings, c)
	if nil != err {
		t.Fatal(err)
	}
	return &harness{t: t, s: s, c: c}
}

// at ticks the session at an absolute game time
func (h *harness) at(tm float64, inputs ...game.Input) []Event {
	if tm > 0 {
		h.c.Set(tm)
	}
	evs := h.s.Tick(tm-h.s.GameTime(), inputs)
	h.events = append(h.events, evs...)
	return evs
}

func press(l game.Lane) game.Input {
	return game.Input{Lane: l, Edge: game.Pressed}
}

func release(l game.Lane) game.Input {
	return game.Input{Lane: l, Edge: game.Released}
}

func count(evs []Event, kind EventKind) int {
	n := 0
	for _, e := range evs {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func find(evs []Event, kind EventKind) (Event, bool) {
	for _, e := range evs {
		if e.Kind == kind {
			return e, true
		}
	}
	return Event{}, false
}
