package render

import (
	"fmt"
	"math"

	"git.lost.host/meutraa/lanefall/internal/engine"
	"git.lost.host/meutraa/lanefall/internal/game"
	"git.lost.host/meutraa/lanefall/internal/score"
	"git.lost.host/meutraa/lanefall/internal/theme"
)

const (
	columnSpacing   = 2
	judgementFrames = 120
	effectFrames    = 30
)

type cell struct {
	row, col uint16
}

// Playfield draws a session onto a renderer. It consumes session events for
// the short lived decorations and reads the live notes once per frame.
type Playfield struct {
	r        Renderer
	th       theme.Theme
	settings engine.Settings

	rows     int
	columns  [game.LaneCount]uint16
	middle   uint16
	judgeRow uint16
	sideCol  uint16

	drawn  []cell
	result *score.Result
}

func NewPlayfield(r Renderer, th theme.Theme, settings engine.Settings) *Playfield {
	p := &Playfield{r: r, th: th, settings: settings}
	p.Resize()
	return p
}

func (p *Playfield) Resize() {
	cc, rc := p.r.Size()
	p.rows = rc
	mc := cc >> 1
	for i := range p.columns {
		p.columns[i] = uint16(mc + columnSpacing*(2*i-3))
	}
	p.middle = uint16(mc)
	p.judgeRow = uint16(p.Row(p.settings.JudgeY))

	side := int(p.columns[0]) - 30
	if side < 2 {
		side = 2
	}
	p.sideCol = uint16(side)
}

// Row maps a world position onto a screen row, SpawnY being the top row
// and DespawnY the bottom one. Rows outside the screen are returned as is.
func (p *Playfield) Row(y float64) int {
	span := p.settings.SpawnY - p.settings.DespawnY
	return 1 + int(math.Round((p.settings.SpawnY-y)/span*float64(p.rows-1)))
}

func (p *Playfield) Column(lane game.Lane) uint16 {
	return p.columns[lane]
}

func (p *Playfield) JudgeRow() uint16 {
	return p.judgeRow
}

func (p *Playfield) Result() (score.Result, bool) {
	if nil == p.result {
		return score.Result{}, false
	}
	return *p.result, true
}

func (p *Playfield) Handle(e engine.Event) {
	switch e.Kind {
	case engine.NoteJudged:
		p.judgement(e.Judgement)
		p.r.AddDecoration(p.columns[e.Lane]-1, p.judgeRow+1, "\\|/", effectFrames)
	case engine.NoteMissed:
		p.judgement(game.Miss)
	case engine.HoldReleased:
		if !e.Automatic {
			p.r.AddDecoration(p.columns[e.Lane]-1, p.judgeRow+1, "   ", 0)
		}
	case engine.SessionEnded:
		res := e.Result
		p.result = &res
	}
}

func (p *Playfield) judgement(j game.Judgement) {
	p.r.AddDecoration(p.middle-4, p.judgeRow+3, p.th.RenderJudgement(j), judgementFrames)
}

func (p *Playfield) fill(row int, col uint16, message string) {
	if row < 1 || row > p.rows {
		return
	}
	c := cell{uint16(row), col}
	p.r.Fill(c.row, c.col, message)
	p.drawn = append(p.drawn, c)
}

// Draw clears the notes of the previous frame and draws the current ones.
func (p *Playfield) Draw(s *engine.Session, pressed [game.LaneCount]bool) {
	for _, c := range p.drawn {
		p.r.Fill(c.row, c.col, " ")
	}
	p.drawn = p.drawn[:0]

	for i := range p.columns {
		lane := game.Lane(i)
		p.r.Fill(p.judgeRow, p.columns[i], p.th.RenderHitField(lane, pressed[i]))
	}

	for _, n := range s.Live() {
		col := p.columns[n.Lane()]
		head := p.Row(n.Position)
		if n.State == engine.Holding && head > int(p.judgeRow) {
			head = int(p.judgeRow)
		}
		if n.Long {
			for row := p.Row(n.Trailing()); row < head; row++ {
				p.fill(row, col, p.th.RenderBody(n.Lane()))
			}
		}
		if n.State != engine.Holding {
			p.fill(head, col, p.th.RenderNote(n.Lane(), n.Long))
		}
	}

	res := s.Result()
	p.r.Fill(2, p.sideCol, fmt.Sprintf("      Score:  %6v", res.Score))
	p.r.Fill(3, p.sideCol, fmt.Sprintf("      Combo:  %6v", s.Combo()))
	p.r.Fill(4, p.sideCol, fmt.Sprintf("  Max Combo:  %6v", res.MaxCombo))
	p.r.Fill(6, p.sideCol, fmt.Sprintf("  Excellent:  %6v", res.Excellent))
	p.r.Fill(7, p.sideCol, fmt.Sprintf("       Good:  %6v", res.Good))
	p.r.Fill(8, p.sideCol, fmt.Sprintf("       Miss:  %6v", res.Bad))
}
