package game

// LaneCount is fixed by the judgement keymap.
const LaneCount = 4

// Lane is the ordinal of a note track, [0, LaneCount).
type Lane uint8

func LaneFromIndex(i int) (Lane, error) {
	if i < 0 || i >= LaneCount {
		return 0, ErrLaneOutOfRange
	}
	return Lane(i), nil
}

func (l Lane) Valid() bool {
	return int(l) < LaneCount
}
