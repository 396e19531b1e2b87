package game

import "fmt"

type Note struct {
	Lane   Lane `yaml:"lane"`
	Step   int  `yaml:"step"`             // Chart relative start
	Length int  `yaml:"length,omitempty"` // In steps, at least 1
}

func (n Note) Validate() error {
	if !n.Lane.Valid() {
		return fmt.Errorf("%w: lane %v at step %v", ErrLaneOutOfRange, n.Lane, n.Step)
	}
	if n.Step < 0 {
		return fmt.Errorf("%w: negative step %v", ErrInvalidNote, n.Step)
	}
	if n.Length < 1 {
		return fmt.Errorf("%w: length %v at step %v", ErrInvalidNote, n.Length, n.Step)
	}
	return nil
}

// Less orders notes by step, then lane.
func (n Note) Less(o Note) bool {
	if n.Step != o.Step {
		return n.Step < o.Step
	}
	return n.Lane < o.Lane
}
