package game

// Beatmap holds the timing parameters of a chart. It is read-only during play.
type Beatmap struct {
	Title           string  `yaml:"title"`
	Audio           string  `yaml:"audio,omitempty"`
	BPM             float64 `yaml:"bpm"`
	BeatsPerMeasure int     `yaml:"beats_per_measure"`
	StepsPerMeasure int     `yaml:"steps_per_measure"`
	Offset          float64 `yaml:"offset"` // Seconds from audio start to step 0
}

func (b Beatmap) Validate() error {
	_, err := NewTiming(b)
	return err
}
