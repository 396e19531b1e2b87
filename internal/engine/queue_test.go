package engine

import "testing"

func TestLaneQueueFIFO(t *testing.T) {
	var q LaneQueue
	if _, ok := q.Pop(); ok {
		t.Fatal("Expected popping an empty queue to fail")
	}
	if _, ok := q.Peek(); ok {
		t.Fatal("Expected peeking an empty queue to fail")
	}
	if q.Remove(3) {
		t.Fatal("Expected removing from an empty queue to fail")
	}

	for i := 0; i < 100; i++ {
		q.Push(NoteID(i))
	}
	for i := 0; i < 100; i++ {
		id, ok := q.Pop()
		if !ok || id != NoteID(i) {
			t.Fatalf("Expected %v, got %v (%v)", i, id, ok)
		}
	}
	if q.Len() != 0 {
		t.Errorf("Expected empty queue, got %v", q.Len())
	}
}

func TestLaneQueueInterleaved(t *testing.T) {
	var q LaneQueue
	next, expected := 0, 0
	for round := 0; round < 50; round++ {
		for i := 0; i < 3; i++ {
			q.Push(NoteID(next))
			next++
		}
		for i := 0; i < 2; i++ {
			id, _ := q.Pop()
			if id != NoteID(expected) {
				t.Fatalf("Expected %v, got %v", expected, id)
			}
			expected++
		}
	}
	ids := q.IDs()
	if len(ids) != 50 {
		t.Fatalf("Expected 50 queued, got %v", len(ids))
	}
	for i, id := range ids {
		if id != NoteID(expected+i) {
			t.Fatalf("Expected queue order to be kept, got %v", ids)
		}
	}
}

func TestLaneQueueRemove(t *testing.T) {
	var q LaneQueue
	for i := 0; i < 5; i++ {
		q.Push(NoteID(i))
	}
	if !q.Remove(0) || !q.Remove(3) {
		t.Fatal("Expected queued ids to be removed")
	}
	if q.Remove(3) {
		t.Fatal("Expected a second removal to fail")
	}
	expected := []NoteID{1, 2, 4}
	ids := q.IDs()
	for i := range expected {
		if ids[i] != expected[i] {
			t.Log("out     ", ids)
			t.Log("expected", expected)
			t.FailNow()
		}
	}
}
