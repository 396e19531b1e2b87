package engine

import (
	"testing"

	"git.lost.host/meutraa/lanefall/internal/game"
)

func TestSpawnerAdvance(t *testing.T) {
	timing, _ := game.NewTiming(testBeatmap)
	notes := []game.Note{
		{Lane: 0, Step: 0, Length: 1},
		{Lane: 1, Step: 0, Length: 1},
		{Lane: 2, Step: 8, Length: 1},
		{Lane: 3, Step: 32, Length: 1},
	}
	sp := NewSpawner(notes, timing, 1.3)

	type spawned struct {
		id       NoteID
		lateness float64
	}
	var got []spawned
	record := func(id NoteID, n game.Note, scheduled, lateness float64) {
		got = append(got, spawned{id, lateness})
	}

	if n := sp.Advance(-1.4, record); n != 0 {
		t.Fatalf("Expected nothing before the first spawn time, got %v", n)
	}
	// Steps 0 and 8 are both due, one tick spawns both
	if n := sp.Advance(-0.7, record); n != 3 {
		t.Fatalf("Expected 3 notes, got %v", n)
	}
	if sp.Next() != 3 || sp.Done() {
		t.Fatalf("Expected next 3, got %v", sp.Next())
	}
	if n := sp.Advance(-0.9, record); n != 0 {
		t.Fatalf("Expected earlier time not to spawn, got %v", n)
	}
	sp.Advance(100, record)
	if !sp.Done() {
		t.Fatal("Expected the spawner to be done")
	}

	for i, s := range got {
		if s.id != NoteID(i) {
			t.Errorf("Expected chart order, got %v at %v", s.id, i)
		}
		if s.lateness < 0 {
			t.Errorf("Expected non-negative lateness, got %v", s.lateness)
		}
	}
	if d := got[2].lateness - (-0.7 - (0.5 - 1.3)); d > 1e-12 || d < -1e-12 {
		t.Errorf("Unexpected lateness %v", got[2].lateness)
	}
}
