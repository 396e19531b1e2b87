package game

import (
	"errors"
	"testing"
)

func TestChartSort(t *testing.T) {
	c := Chart{Beatmap: standard, Notes: []Note{
		{Lane: 3, Step: 8, Length: 1},
		{Lane: 1, Step: 0, Length: 1},
		{Lane: 0, Step: 8, Length: 1},
		{Lane: 2, Step: 4, Length: 6},
	}}
	if c.Sorted() {
		t.Fatal("Expected unsorted notes")
	}
	c.Sort()
	if !c.Sorted() {
		t.Fatal("Expected sorted notes")
	}
	expected := []Note{
		{Lane: 1, Step: 0, Length: 1},
		{Lane: 2, Step: 4, Length: 6},
		{Lane: 0, Step: 8, Length: 1},
		{Lane: 3, Step: 8, Length: 1},
	}
	for i := range expected {
		if c.Notes[i] != expected[i] {
			t.Log("out     ", c.Notes)
			t.Log("expected", expected)
			t.FailNow()
		}
	}

	timing, _ := NewTiming(standard)
	if c.LongCount(timing) != 1 {
		t.Errorf("Expected 1 long note, got %v", c.LongCount(timing))
	}
	if d := c.Duration(timing); d != 0.625 {
		t.Errorf("Expected duration 0.625, got %v", d)
	}
	if counts := c.LaneCounts(); counts != [LaneCount]int{1, 1, 1, 1} {
		t.Errorf("Unexpected lane counts %v", counts)
	}
}

func TestChartValidate(t *testing.T) {
	cases := map[string]struct {
		chart Chart
		err   error
	}{
		"empty":   {Chart{Beatmap: standard}, nil},
		"config":  {Chart{Beatmap: Beatmap{BPM: 120}}, ErrInvalidConfig},
		"lane":    {Chart{Beatmap: standard, Notes: []Note{{Lane: 4, Length: 1}}}, ErrLaneOutOfRange},
		"length":  {Chart{Beatmap: standard, Notes: []Note{{Lane: 1, Length: 0}}}, ErrInvalidNote},
		"step":    {Chart{Beatmap: standard, Notes: []Note{{Lane: 1, Step: -2, Length: 1}}}, ErrInvalidNote},
		"correct": {Chart{Beatmap: standard, Notes: []Note{{Lane: 3, Step: 2, Length: 1}}}, nil},
	}
	for name, c := range cases {
		err := c.chart.Validate()
		if !errors.Is(err, c.err) || (c.err == nil && err != nil) {
			t.Errorf("%v: expected %v, got %v", name, c.err, err)
		}
	}
}

func TestChartHash(t *testing.T) {
	a := Chart{Beatmap: standard, Notes: []Note{{Lane: 1, Step: 0, Length: 1}}}
	b := Chart{Beatmap: standard, Notes: []Note{{Lane: 2, Step: 0, Length: 1}}}
	b.Beatmap.Title = "other"
	if a.Hash() == b.Hash() {
		t.Error("Expected different notes to hash differently")
	}
	b.Notes[0].Lane = 1
	if a.Hash() != b.Hash() {
		t.Error("Expected the title not to affect the hash")
	}
}

func TestLaneFromIndex(t *testing.T) {
	for i := -1; i <= LaneCount; i++ {
		lane, err := LaneFromIndex(i)
		valid := i >= 0 && i < LaneCount
		if valid && (nil != err || int(lane) != i) {
			t.Errorf("Expected lane %v, got %v (%v)", i, lane, err)
		}
		if !valid && !errors.Is(err, ErrLaneOutOfRange) {
			t.Errorf("Expected %v to be out of range", i)
		}
	}
}
