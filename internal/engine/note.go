package engine

import "git.lost.host/meutraa/lanefall/internal/game"

// NoteID is the chart index of a note. It is stable for the whole session.
type NoteID int

const NoNote NoteID = -1

type NoteState uint8

const (
	Pending  NoteState = iota // Not spawned yet
	Active                    // Waiting in its lane queue
	Holding                   // Hit long note in its lane's hold slot
	Resolved                  // Gone from the playfield
)

func (s NoteState) String() string {
	switch s {
	case Pending:
		return "pending"
	case Active:
		return "active"
	case Holding:
		return "holding"
	case Resolved:
		return "resolved"
	}
	return "unknown"
}

type ActiveNote struct {
	ID    NoteID
	Note  game.Note
	Long  bool
	State NoteState

	Scheduled float64 // Game time the note should have spawned at
	Spawned   float64 // Game time of the tick that spawned it
	Duration  float64 // Seconds between the leading and trailing edge

	Position float64 // World position of the leading edge
	Length   float64
}

func (n *ActiveNote) Lane() game.Lane {
	return n.Note.Lane
}

// Lateness is how far behind schedule the note was spawned.
func (n *ActiveNote) Lateness() float64 {
	return n.Spawned - n.Scheduled
}

// Trailing is the world position of the far edge of the note.
func (n *ActiveNote) Trailing() float64 {
	return n.Position + n.Length
}
