package game

import "math"

// SecondsPerStep returns the length of the smallest chart unit in seconds.
func SecondsPerStep(bpm float64, beatsPerMeasure, stepsPerMeasure int) (float64, error) {
	if bpm <= 0 || math.IsNaN(bpm) || math.IsInf(bpm, 0) {
		return 0, &ConfigError{Field: "bpm", Value: bpm}
	}
	if beatsPerMeasure <= 0 {
		return 0, &ConfigError{Field: "beats_per_measure", Value: float64(beatsPerMeasure)}
	}
	if stepsPerMeasure <= 0 {
		return 0, &ConfigError{Field: "steps_per_measure", Value: float64(stepsPerMeasure)}
	}
	secondsPerBeat := 60.0 / bpm
	secondsPerMeasure := secondsPerBeat * float64(beatsPerMeasure)
	return secondsPerMeasure / float64(stepsPerMeasure), nil
}

// TimeFromStep returns the chart time in seconds at which step should be hit.
func TimeFromStep(b Beatmap, step int) (float64, error) {
	t, err := NewTiming(b)
	if nil != err {
		return 0, err
	}
	return t.TimeFromStep(step), nil
}

// StepFromTime snaps a chart time to the nearest step. Times before the
// offset snap to step 0.
func StepFromTime(b Beatmap, seconds float64) (int, error) {
	t, err := NewTiming(b)
	if nil != err {
		return 0, err
	}
	return t.StepFromTime(seconds), nil
}

// Timing is a validated Beatmap. Its methods cannot fail.
type Timing struct {
	offset          float64
	secondsPerStep  float64
	stepsPerQuarter int
}

func NewTiming(b Beatmap) (Timing, error) {
	sps, err := SecondsPerStep(b.BPM, b.BeatsPerMeasure, b.StepsPerMeasure)
	if nil != err {
		return Timing{}, err
	}
	if math.IsNaN(b.Offset) || math.IsInf(b.Offset, 0) {
		return Timing{}, &ConfigError{Field: "offset", Value: b.Offset}
	}
	return Timing{
		offset:          b.Offset,
		secondsPerStep:  sps,
		stepsPerQuarter: b.StepsPerMeasure / b.BeatsPerMeasure,
	}, nil
}

func (t Timing) SecondsPerStep() float64 {
	return t.secondsPerStep
}

func (t Timing) StepsPerQuarter() int {
	return t.stepsPerQuarter
}

func (t Timing) TimeFromStep(step int) float64 {
	return t.offset + t.secondsPerStep*float64(step)
}

func (t Timing) StepFromTime(seconds float64) int {
	if seconds < t.offset {
		return 0
	}
	return int(math.Round((seconds - t.offset) / t.secondsPerStep))
}

// Duration is the time between the start and the end of n.
func (t Timing) Duration(n Note) float64 {
	return t.TimeFromStep(n.Step+n.Length) - t.TimeFromStep(n.Step)
}

// IsLong reports whether a note of the given length outlasts a quarter note.
func (t Timing) IsLong(length int) bool {
	return length > t.stepsPerQuarter
}
