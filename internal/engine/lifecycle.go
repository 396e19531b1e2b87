package engine

import "git.lost.host/meutraa/lanefall/internal/game"

func (s *Session) spawn(id NoteID, n game.Note, scheduled, lateness float64) {
	note := &s.arena[id]
	note.State = Active
	note.Long = s.timing.IsLong(n.Length)
	note.Scheduled = scheduled
	note.Spawned = s.gameTime
	note.Duration = s.timing.Duration(n)
	note.Length = s.settings.Speed * note.Duration
	// Where an on-time note would be by now
	note.Position = s.settings.SpawnY - s.settings.Speed*lateness

	s.live = append(s.live, id)
	s.queues[n.Lane].Push(id)
	s.emit(Event{Kind: NoteSpawned, Note: id, Lane: n.Lane, Position: note.Position, Length: note.Length})
}

// advanceNotes moves every live note by the game time elapsed since the last move.
func (s *Session) advanceNotes() {
	elapsed := s.gameTime - s.moved
	s.moved = s.gameTime
	if elapsed <= 0 {
		return
	}
	for _, id := range s.live {
		s.arena[id].Position -= s.settings.Speed * elapsed
	}
}

// checkNotes misses notes that left the playfield unhit and releases held
// notes whose trailing edge crossed the judgement line.
func (s *Session) checkNotes() {
	live := s.live[:0]
	for _, id := range s.live {
		n := &s.arena[id]
		switch n.State {
		case Active:
			if n.Trailing() < s.settings.DespawnY {
				s.miss(n)
			}
		case Holding:
			if n.Trailing() < s.settings.JudgeY {
				s.release(n.Lane(), true)
			}
		}
		if n.State != Resolved {
			live = append(live, id)
		}
	}
	s.live = live
}

func (s *Session) miss(n *ActiveNote) {
	n.State = Resolved
	if !s.queues[n.Lane()].Remove(n.ID) {
		return
	}
	s.tracker.Miss()
	s.emit(Event{Kind: NoteMissed, Note: n.ID, Lane: n.Lane()})
}
