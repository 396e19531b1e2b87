package engine

import (
	"errors"
	"fmt"
	"math"

	"git.lost.host/meutraa/lanefall/internal/game"
	"git.lost.host/meutraa/lanefall/internal/score"
)

var ErrInvalidSettings = errors.New("invalid play settings")

// Settings describe the playfield. Notes fall from SpawnY towards DespawnY
// and are judged at JudgeY, all in world units.
type Settings struct {
	Speed     float64 // Units per second
	SpawnY    float64
	JudgeY    float64
	DespawnY  float64
	Tolerance float64 // Excellent window, in units from the judgement line
	GoodBand  float64 // Good window beyond Tolerance
	Preroll   float64 // Seconds of chart time before playback starts
	Points    score.Points
}

func DefaultSettings() Settings {
	return Settings{
		Speed:     10,
		SpawnY:    10,
		JudgeY:    -3,
		DespawnY:  -20,
		Tolerance: 0.5,
		GoodBand:  1,
		Points:    score.DefaultPoints,
	}
}

func (s Settings) Validate() error {
	finite := func(vs ...float64) bool {
		for _, v := range vs {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
		return true
	}
	switch {
	case !finite(s.Speed, s.SpawnY, s.JudgeY, s.DespawnY, s.Tolerance, s.GoodBand, s.Preroll):
		return fmt.Errorf("%w: values must be finite", ErrInvalidSettings)
	case s.Speed <= 0:
		return fmt.Errorf("%w: speed %v must be positive", ErrInvalidSettings, s.Speed)
	case s.SpawnY <= s.JudgeY:
		return fmt.Errorf("%w: spawn %v must be above the judgement line %v", ErrInvalidSettings, s.SpawnY, s.JudgeY)
	case s.JudgeY <= s.DespawnY:
		return fmt.Errorf("%w: despawn %v must be below the judgement line %v", ErrInvalidSettings, s.DespawnY, s.JudgeY)
	case s.Tolerance < 0 || s.GoodBand < 0:
		return fmt.Errorf("%w: judgement windows must not be negative", ErrInvalidSettings)
	case s.Preroll < 0:
		return fmt.Errorf("%w: preroll %v must not be negative", ErrInvalidSettings, s.Preroll)
	}
	return nil
}

// TravelTime is how long a note takes from spawning to reaching the judgement line.
func (s Settings) TravelTime() float64 {
	return (s.SpawnY - s.JudgeY) / s.Speed
}

// Clearance is how long a note's trailing edge takes from the judgement
// line to the despawn threshold.
func (s Settings) Clearance() float64 {
	return (s.JudgeY - s.DespawnY) / s.Speed
}

// Classify maps a distance from the judgement line onto a judgement.
// Distances outside both windows produce no judgement.
func (s Settings) Classify(distance float64) (game.Judgement, bool) {
	switch {
	case distance <= s.Tolerance:
		return game.Excellent, true
	case distance <= s.Tolerance+s.GoodBand:
		return game.Good, true
	}
	return game.Miss, false
}
