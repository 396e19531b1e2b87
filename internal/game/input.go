package game

type Edge uint8

const (
	Pressed Edge = iota
	Released
)

func (e Edge) String() string {
	if e == Pressed {
		return "pressed"
	}
	return "released"
}

// Input is a single key edge on a lane. Time is the game time of the tick
// that accepted it and is filled in by the session.
type Input struct {
	Lane Lane
	Edge Edge
	Time float64
}
