package engine

import (
	"errors"
	"fmt"
	"log"

	"git.lost.host/meutraa/lanefall/internal/game"
	"git.lost.host/meutraa/lanefall/internal/score"
)

var ErrNoChart = errors.New("no chart")

// Session is the state of one play through a chart. It is driven by a single
// caller, one Tick per frame, and is not safe for concurrent use.
type Session struct {
	settings Settings
	timing   game.Timing
	clock    Clock
	tracker  *score.Tracker
	spawner  *Spawner

	gameTime float64
	moved    float64 // Game time the note positions were last advanced to
	ended    bool

	arena  []ActiveNote
	live   []NoteID
	queues [game.LaneCount]LaneQueue
	holds  [game.LaneCount]NoteID

	inputs []game.Input
	events []Event
}

// NewSession validates the chart and settings. The chart notes are copied and
// sorted, the chart itself is not modified.
func NewSession(chart *game.Chart, settings Settings, clock Clock) (*Session, error) {
	if nil == chart {
		return nil, ErrNoChart
	}
	if nil == clock {
		return nil, errors.New("no clock")
	}
	if err := settings.Validate(); nil != err {
		return nil, err
	}
	timing, err := game.NewTiming(chart.Beatmap)
	if nil != err {
		return nil, fmt.Errorf("unable to start session: %w", err)
	}

	sorted := game.Chart{Beatmap: chart.Beatmap, Notes: make([]game.Note, len(chart.Notes))}
	copy(sorted.Notes, chart.Notes)
	sorted.Sort()
	if err := sorted.Validate(); nil != err {
		return nil, fmt.Errorf("unable to start session: %w", err)
	}

	s := &Session{
		settings: settings,
		timing:   timing,
		clock:    clock,
		tracker:  score.NewTracker(settings.Points),
		spawner:  NewSpawner(sorted.Notes, timing, settings.TravelTime()),
		gameTime: -settings.Preroll,
		moved:    -settings.Preroll,
		arena:    make([]ActiveNote, len(sorted.Notes)),
	}
	for i := range s.arena {
		s.arena[i] = ActiveNote{ID: NoteID(i), Note: sorted.Notes[i], State: Pending}
	}
	for i := range s.holds {
		s.holds[i] = NoNote
	}
	return s, nil
}

// Tick advances the session. dt is only used before the clock has started.
// Inputs are judged against the note positions at the new game time, before
// any note of this tick is allowed to miss.
func (s *Session) Tick(dt float64, inputs []game.Input) []Event {
	if s.ended {
		return nil
	}
	s.events = nil

	s.advanceClock(dt)
	s.advanceNotes()
	s.spawner.Advance(s.gameTime, s.spawn)

	for _, in := range inputs {
		if !in.Lane.Valid() {
			log.Println("rejecting input on lane", in.Lane)
			continue
		}
		in.Time = s.gameTime
		s.inputs = append(s.inputs, in)
		switch in.Edge {
		case game.Pressed:
			s.keyDown(in.Lane)
		case game.Released:
			s.keyUp(in.Lane)
		}
	}

	s.checkNotes()

	if s.clock.Started() && s.clock.Ended() {
		s.finish()
	}
	return s.events
}

// Stop ends the session early. It returns the SessionEnded event the first
// time and nothing afterwards.
func (s *Session) Stop() []Event {
	if s.ended {
		return nil
	}
	s.events = nil
	s.finish()
	return s.events
}

func (s *Session) advanceClock(dt float64) {
	if !s.clock.Started() {
		if dt > 0 {
			s.gameTime += dt
		}
		if s.gameTime >= 0 {
			s.clock.Start()
		}
		return
	}
	// The clock must not move the session backwards
	if now := s.clock.Seconds(); now > s.gameTime {
		s.gameTime = now
	}
}

func (s *Session) finish() {
	s.ended = true
	s.emit(Event{Kind: SessionEnded, Note: NoNote, Result: s.tracker.Finish()})
}

func (s *Session) emit(e Event) {
	s.events = append(s.events, e)
}

func (s *Session) GameTime() float64 { return s.gameTime }
func (s *Session) NextSpawn() int { return s.spawner.Next() }
func (s *Session) Ended() bool { return s.ended }
func (s *Session) Combo() int { return s.tracker.Combo() }
func (s *Session) Result() score.Result { return s.tracker.Result() }
func (s *Session) Settings() Settings { return s.settings }
func (s *Session) Timing() game.Timing { return s.timing }

// Inputs returns the accepted inputs stamped with the game time of their tick.
func (s *Session) Inputs() []game.Input {
	out := make([]game.Input, len(s.inputs))
	copy(out, s.inputs)
	return out
}

// Note returns a copy of the arena entry for id.
func (s *Session) Note(id NoteID) (ActiveNote, bool) {
	if id < 0 || int(id) >= len(s.arena) {
		return ActiveNote{}, false
	}
	return s.arena[id], true
}

// Live returns copies of the notes currently on the playfield.
func (s *Session) Live() []ActiveNote {
	out := make([]ActiveNote, 0, len(s.live))
	for _, id := range s.live {
		out = append(out, s.arena[id])
	}
	return out
}

// Queue returns the queued note ids of a lane, head first.
func (s *Session) Queue(lane game.Lane) []NoteID {
	if !lane.Valid() {
		return nil
	}
	return s.queues[lane].IDs()
}

// Holding returns the note in the hold slot of a lane.
func (s *Session) Holding(lane game.Lane) (NoteID, bool) {
	if !lane.Valid() || s.holds[lane] == NoNote {
		return NoNote, false
	}
	return s.holds[lane], true
}
