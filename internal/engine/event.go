package engine

import (
	"git.lost.host/meutraa/lanefall/internal/game"
	"git.lost.host/meutraa/lanefall/internal/score"
)

type EventKind uint8

const (
	NoteSpawned EventKind = iota
	NoteJudged
	NoteMissed
	HoldStarted
	HoldReleased
	SessionEnded
)

func (k EventKind) String() string {
	switch k {
	case NoteSpawned:
		return "NoteSpawned"
	case NoteJudged:
		return "NoteJudged"
	case NoteMissed:
		return "NoteMissed"
	case HoldStarted:
		return "HoldStarted"
	case HoldReleased:
		return "HoldReleased"
	case SessionEnded:
		return "SessionEnded"
	}
	return "Unknown"
}

// Event is emitted by a session for the presentation layer. Only the fields
// relevant to Kind are set.
type Event struct {
	Kind      EventKind
	Note      NoteID
	Lane      game.Lane
	Judgement game.Judgement
	Position  float64 // Leading edge for NoteSpawned
	Length    float64
	Automatic bool // HoldReleased by the note crossing the line
	Result    score.Result
}

// Sink consumes events, it never reads back into the session.
type Sink interface {
	Handle(e Event)
}

type SinkFunc func(e Event)

func (f SinkFunc) Handle(e Event) { f(e) }

func Dispatch(sink Sink, events []Event) {
	for _, e := range events {
		sink.Handle(e)
	}
}
