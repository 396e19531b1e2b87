package engine

// LaneQueue holds the unresolved notes of one lane in chart order.
type LaneQueue struct {
	ids  []NoteID
	head int
}

func (q *LaneQueue) Len() int {
	return len(q.ids) - q.head
}

func (q *LaneQueue) Push(id NoteID) {
	q.ids = append(q.ids, id)
}

func (q *LaneQueue) Peek() (NoteID, bool) {
	if q.Len() == 0 {
		return NoNote, false
	}
	return q.ids[q.head], true
}

// Pop removes the head. Popping an empty queue is a no-op.
func (q *LaneQueue) Pop() (NoteID, bool) {
	id, ok := q.Peek()
	if !ok {
		return NoNote, false
	}
	q.head++
	if q.head == len(q.ids) {
		q.ids = q.ids[:0]
		q.head = 0
	} else if q.head > 32 && q.head*2 > len(q.ids) {
		n := copy(q.ids, q.ids[q.head:])
		q.ids = q.ids[:n]
		q.head = 0
	}
	return id, true
}

// Remove takes id out of the queue wherever it is, keeping the order of the rest.
func (q *LaneQueue) Remove(id NoteID) bool {
	if head, ok := q.Peek(); ok && head == id {
		q.Pop()
		return true
	}
	for i := q.head + 1; i < len(q.ids); i++ {
		if q.ids[i] == id {
			q.ids = append(q.ids[:i], q.ids[i+1:]...)
			return true
		}
	}
	return false
}

// IDs returns a copy of the queued ids, head first.
func (q *LaneQueue) IDs() []NoteID {
	out := make([]NoteID, q.Len())
	copy(out, q.ids[q.head:])
	return out
}
