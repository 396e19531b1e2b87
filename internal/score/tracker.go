package score

import "git.lost.host/meutraa/lanefall/internal/game"

// Points awarded per judgement. The zero value awards nothing.
type Points struct {
	Excellent int
	Good      int
	LongBonus int // Awarded when a held long note releases itself
}

var DefaultPoints = Points{Excellent: 100, Good: 50, LongBonus: 100}

func (p Points) For(j game.Judgement) int {
	switch j {
	case game.Excellent:
		return p.Excellent
	case game.Good:
		return p.Good
	}
	return 0
}

// Tracker accumulates judgements for a single play.
type Tracker struct {
	Points Points

	score     int
	combo     int
	maxCombo  int
	excellent int
	good      int
	bad       int
	finished  bool
}

func NewTracker(p Points) *Tracker {
	return &Tracker{Points: p}
}

// Add accumulates points. Negative amounts are ignored.
func (t *Tracker) Add(points int) {
	if points > 0 {
		t.score += points
	}
}

// Hit records a successful Excellent or Good and extends the combo. Other
// judgements are ignored, misses go through Miss.
func (t *Tracker) Hit(j game.Judgement) {
	switch j {
	case game.Excellent:
		t.excellent++
	case game.Good:
		t.good++
	default:
		return
	}
	t.Add(t.Points.For(j))
	t.combo++
	if t.combo > t.maxCombo {
		t.maxCombo = t.combo
	}
}

func (t *Tracker) Miss() {
	t.bad++
	t.combo = 0
}

// LongBonus is awarded once per long note that was held to its end.
func (t *Tracker) LongBonus() {
	t.Add(t.Points.LongBonus)
}

// Finish adds the max combo to the score. Later calls have no effect.
func (t *Tracker) Finish() Result {
	if !t.finished {
		t.finished = true
		t.Add(t.maxCombo)
	}
	return t.Result()
}

func (t *Tracker) Combo() int    { return t.combo }
func (t *Tracker) MaxCombo() int { return t.maxCombo }
func (t *Tracker) Score() int    { return t.score }

func (t *Tracker) Result() Result {
	return Result{
		Score:     t.score,
		MaxCombo:  t.maxCombo,
		Excellent: t.excellent,
		Good:      t.good,
		Bad:       t.bad,
	}
}
