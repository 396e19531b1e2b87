package engine

import (
	"math"

	"git.lost.host/meutraa/lanefall/internal/game"
)

// keyDown judges the head of the lane queue by the distance of its leading
// edge from the judgement line. Presses outside the windows are absorbed.
func (s *Session) keyDown(lane game.Lane) {
	id, ok := s.queues[lane].Peek()
	if !ok {
		return
	}
	n := &s.arena[id]
	distance := math.Abs(n.Position - s.settings.JudgeY)
	j, ok := s.settings.Classify(distance)
	if !ok {
		return
	}

	s.queues[lane].Pop()
	s.tracker.Hit(j)
	s.emit(Event{Kind: NoteJudged, Note: id, Lane: lane, Judgement: j})

	if !n.Long {
		n.State = Resolved
		return
	}
	if s.holds[lane] != NoNote {
		s.release(lane, false)
	}
	n.State = Holding
	s.holds[lane] = id
	s.emit(Event{Kind: HoldStarted, Note: id, Lane: lane})
}

// keyUp releases a held note. Releases are accepted at any distance.
func (s *Session) keyUp(lane game.Lane) {
	if s.holds[lane] != NoNote {
		s.release(lane, false)
	}
}

func (s *Session) release(lane game.Lane, automatic bool) {
	id := s.holds[lane]
	s.holds[lane] = NoNote
	s.arena[id].State = Resolved
	if automatic {
		s.tracker.LongBonus()
	}
	s.emit(Event{Kind: HoldReleased, Note: id, Lane: lane, Automatic: automatic})
}
