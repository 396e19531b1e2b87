package engine

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"git.lost.host/meutraa/lanefall/internal/game"
	"git.lost.host/meutraa/lanefall/internal/score"
)

// Replay plays a chart from recorded inputs on a manual clock that ends at
// until seconds. Ticks happen at tickRate per second and at every input time.
func Replay(chart *game.Chart, settings Settings, inputs []game.Input, until, tickRate float64) (score.Result, error) {
	if tickRate <= 0 {
		return score.Result{}, errors.New("tick rate must be positive")
	}
	if until <= 0 || math.IsNaN(until) || math.IsInf(until, 0) {
		return score.Result{}, fmt.Errorf("replay end %v must be positive and finite", until)
	}
	clock := NewManualClock(until)
	s, err := NewSession(chart, settings, clock)
	if nil != err {
		return score.Result{}, err
	}

	ins := make([]game.Input, len(inputs))
	copy(ins, inputs)
	sort.SliceStable(ins, func(i, j int) bool {
		return ins[i].Time < ins[j].Time
	})

	step := 1 / tickRate
	var result score.Result
	for i := 0; !s.Ended(); {
		target := s.GameTime() + step
		if i < len(ins) && ins[i].Time < target {
			target = ins[i].Time
		}
		if target < s.GameTime() {
			target = s.GameTime()
		}
		var batch []game.Input
		for ; i < len(ins) && ins[i].Time <= target; i++ {
			batch = append(batch, ins[i])
		}
		clock.Set(target)
		for _, e := range s.Tick(target-s.GameTime(), batch) {
			if e.Kind == SessionEnded {
				result = e.Result
			}
		}
	}
	return result, nil
}

// ReplayEnd is the time by which every note of the chart has left the
// playfield. It is always positive, even for charts ending before playback.
func ReplayEnd(chart *game.Chart, settings Settings) (float64, error) {
	timing, err := game.NewTiming(chart.Beatmap)
	if nil != err {
		return 0, err
	}
	end := math.Max(0, chart.Duration(timing))
	return end + settings.Clearance() + settings.TravelTime() + 1, nil
}

// Autoplay returns a press for every note exactly when its leading edge
// reaches the judgement line. Long notes are left to release themselves.
func Autoplay(chart *game.Chart) ([]game.Input, error) {
	timing, err := game.NewTiming(chart.Beatmap)
	if nil != err {
		return nil, err
	}
	ins := make([]game.Input, 0, len(chart.Notes))
	for _, n := range chart.Notes {
		ins = append(ins, game.Input{Lane: n.Lane, Edge: game.Pressed, Time: timing.TimeFromStep(n.Step)})
	}
	sort.SliceStable(ins, func(i, j int) bool {
		return ins[i].Time < ins[j].Time
	})
	return ins, nil
}

// MaxScore is the result of a perfect play.
func MaxScore(chart *game.Chart, settings Settings) (score.Result, error) {
	ins, err := Autoplay(chart)
	if nil != err {
		return score.Result{}, err
	}
	end, err := ReplayEnd(chart, settings)
	if nil != err {
		return score.Result{}, err
	}
	return Replay(chart, settings, ins, end, 240)
}
