package game

// Judgement is the outcome category of a note.
type Judgement uint8

const (
	Excellent Judgement = iota
	Good
	Miss
)

func (j Judgement) String() string {
	switch j {
	case Excellent:
		return "Excellent"
	case Good:
		return "Good"
	case Miss:
		return "Miss"
	}
	return "Unknown"
}
