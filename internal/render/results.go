package render

import (
	"fmt"
	"time"

	"git.lost.host/meutraa/lanefall/internal/game"
	"git.lost.host/meutraa/lanefall/internal/score"
	"git.lost.host/meutraa/lanefall/internal/theme"
)

const revealDelay = 400 * time.Millisecond

// Results reveals the outcome of a play line by line. best is the best
// previous play of the session, if any.
func Results(r Renderer, title string, res score.Result, best *score.Result, retry bool) *Reveal {
	cc, rc := r.Size()
	col := uint16(cc/2 - 12)
	if cc/2 < 14 {
		col = 2
	}
	row := uint16(rc/2 - 5)
	if rc/2 < 7 {
		row = 1
	}
	line := func(offset uint16, message string) func() {
		return func() { r.Fill(row+offset, col, message) }
	}
	count := func(offset uint16, j game.Judgement, n int) func() {
		return func() {
			r.FillColor(row+offset, col, theme.JudgementColor(j), fmt.Sprintf("%10v:  %6v", j, n))
		}
	}

	steps := []Step{
		{0, func() {
			r.Fill(1, 1, "\033[2J")
			r.Fill(row, col, title)
		}},
		{revealDelay, count(2, game.Excellent, res.Excellent)},
		{revealDelay, count(3, game.Good, res.Good)},
		{revealDelay, count(4, game.Miss, res.Bad)},
		{revealDelay, line(6, fmt.Sprintf(" Max Combo:  %6v", res.MaxCombo))},
		{2 * revealDelay, line(7, fmt.Sprintf("     Score:  %6v", res.Score))},
	}
	if nil != best {
		message := fmt.Sprintf("      Best:  %6v", best.Score)
		if res.Score > best.Score {
			message = "  New best!"
		}
		steps = append(steps, Step{revealDelay, line(8, message)})
	}
	prompt := "  Press any key to quit"
	if retry {
		prompt = "  Lane key to retry, Esc to quit"
	}
	steps = append(steps, Step{2 * revealDelay, line(10, prompt)})
	return NewReveal(steps...)
}
