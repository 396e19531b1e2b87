package game

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"sort"
)

type Chart struct {
	Beatmap    Beatmap    `yaml:",inline"`
	Difficulty Difficulty `yaml:"difficulty"`
	Notes      []Note     `yaml:"notes"`
}

// Sort orders the notes by step, ties broken by lane.
func (c *Chart) Sort() {
	sort.SliceStable(c.Notes, func(i, j int) bool {
		return c.Notes[i].Less(c.Notes[j])
	})
}

func (c *Chart) Sorted() bool {
	return sort.SliceIsSorted(c.Notes, func(i, j int) bool {
		return c.Notes[i].Less(c.Notes[j])
	})
}

// Validate checks the beatmap and every note. An empty chart is valid.
func (c *Chart) Validate() error {
	if err := c.Beatmap.Validate(); nil != err {
		return err
	}
	for i, n := range c.Notes {
		if err := n.Validate(); nil != err {
			return fmt.Errorf("note %v: %w", i, err)
		}
	}
	return nil
}

// Hash identifies the playable content of the chart.
func (c *Chart) Hash() string {
	h := sha256.New()
	fmt.Fprintf(h, "%v/%v/%v/%v;", c.Beatmap.BPM, c.Beatmap.BeatsPerMeasure, c.Beatmap.StepsPerMeasure, c.Beatmap.Offset)
	for _, n := range c.Notes {
		fmt.Fprintf(h, "%v:%v:%v,", n.Lane, n.Step, n.Length)
	}
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

func (c *Chart) LongCount(t Timing) int {
	count := 0
	for _, n := range c.Notes {
		if t.IsLong(n.Length) {
			count++
		}
	}
	return count
}

func (c *Chart) LaneCounts() [LaneCount]int {
	var counts [LaneCount]int
	for _, n := range c.Notes {
		if n.Lane.Valid() {
			counts[n.Lane]++
		}
	}
	return counts
}

// Duration is the chart time at which the last note ends.
func (c *Chart) Duration(t Timing) float64 {
	end := t.TimeFromStep(0)
	for _, n := range c.Notes {
		if e := t.TimeFromStep(n.Step + n.Length); e > end {
			end = e
		}
	}
	return end
}
