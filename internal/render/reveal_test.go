package render

import (
	"testing"
	"time"
)

func TestReveal(t *testing.T) {
	var ran []int
	step := func(i int) func() {
		return func() { ran = append(ran, i) }
	}
	r := NewReveal(
		Step{0, step(0)},
		Step{100 * time.Millisecond, step(1)},
		Step{100 * time.Millisecond, step(2)},
		Step{300 * time.Millisecond, step(3)},
	)

	r.Advance(0)
	if len(ran) != 1 {
		t.Fatalf("Expected the first step to run immediately, ran %v", ran)
	}
	r.Advance(50 * time.Millisecond)
	if len(ran) != 1 {
		t.Errorf("Expected no step after 50ms, ran %v", ran)
	}
	// 250ms in total covers both 100ms steps
	if r.Advance(200 * time.Millisecond) {
		t.Error("Expected the reveal to continue")
	}
	if len(ran) != 3 {
		t.Errorf("Expected 3 steps, ran %v", ran)
	}
	if !r.Advance(250 * time.Millisecond) {
		t.Error("Expected the reveal to finish")
	}
	for i, v := range ran {
		if i != v {
			t.Errorf("Expected step %v, got %v", i, v)
		}
	}
	if r.Advance(time.Second); len(ran) != 4 {
		t.Errorf("Expected steps to run once, ran %v", ran)
	}
}

func TestRevealSkip(t *testing.T) {
	n := 0
	r := NewReveal(Step{time.Second, func() { n++ }}, Step{time.Hour, nil}, Step{time.Second, func() { n++ }})
	r.Advance(500 * time.Millisecond)
	r.Skip()
	if !r.Done() || n != 2 {
		t.Errorf("Expected 2 steps and done, got %v %v", n, r.Done())
	}
}
