package engine

import "git.lost.host/meutraa/lanefall/internal/game"

// Spawner walks a sorted chart and releases each note once chart time
// reaches its hit time minus the travel time.
type Spawner struct {
	notes  []game.Note
	timing game.Timing
	travel float64
	next   int
}

func NewSpawner(notes []game.Note, timing game.Timing, travel float64) *Spawner {
	return &Spawner{notes: notes, timing: timing, travel: travel}
}

// Next is the index of the next note to spawn. It never decreases.
func (sp *Spawner) Next() int {
	return sp.next
}

func (sp *Spawner) Done() bool {
	return sp.next >= len(sp.notes)
}

// Scheduled is the spawn time of note i.
func (sp *Spawner) Scheduled(i int) float64 {
	return sp.timing.TimeFromStep(sp.notes[i].Step) - sp.travel
}

// Advance spawns every note due at time t in chart order, passing how late
// each one is.
func (sp *Spawner) Advance(t float64, spawn func(id NoteID, n game.Note, scheduled, lateness float64)) int {
	count := 0
	for !sp.Done() {
		scheduled := sp.Scheduled(sp.next)
		if t < scheduled {
			break
		}
		spawn(NoteID(sp.next), sp.notes[sp.next], scheduled, t-scheduled)
		sp.next++
		count++
	}
	return count
}
