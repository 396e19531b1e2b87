package render

import "time"

// Step runs Action once Delay has passed since the previous step ran.
type Step struct {
	Delay  time.Duration
	Action func()
}

// Reveal is a staged sequence advanced by the frame loop, so no step ever
// runs concurrently with drawing.
type Reveal struct {
	steps   []Step
	next    int
	elapsed time.Duration
}

func NewReveal(steps ...Step) *Reveal {
	return &Reveal{steps: steps}
}

// Advance runs every step that became due within elapsed, and reports
// whether the reveal has finished.
func (r *Reveal) Advance(elapsed time.Duration) bool {
	r.elapsed += elapsed
	for r.next < len(r.steps) && r.elapsed >= r.steps[r.next].Delay {
		r.elapsed -= r.steps[r.next].Delay
		step := r.steps[r.next]
		r.next++
		if nil != step.Action {
			step.Action()
		}
	}
	if r.Done() {
		r.elapsed = 0
	}
	return r.Done()
}

func (r *Reveal) Done() bool {
	return r.next >= len(r.steps)
}

// Skip runs the remaining steps immediately.
func (r *Reveal) Skip() {
	for !r.Done() {
		r.Advance(r.steps[r.next].Delay - r.elapsed)
	}
}
