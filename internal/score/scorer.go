package score

import (
	"git.lost.host/meutraa/lanefall/internal/game"
)

// Store remembers the plays made during this process.
type Store interface {
	Init() error
	Deinit()

	// Save the state of this performance
	Save(chart *game.Chart, result Result, inputs []game.Input) error

	// Load up previous plays for the chart, most recent first
	Load(chart *game.Chart) ([]History, error)

	Best(chart *game.Chart) (*History, error)
}

type History struct {
	Sum    string
	Result Result
	Inputs []game.Input
}

// Result is the outcome of a play. Bad counts misses.
type Result struct {
	Score     int
	MaxCombo  int
	Excellent int
	Good      int
	Bad       int
}

func (r Result) Judged() int {
	return r.Excellent + r.Good + r.Bad
}
