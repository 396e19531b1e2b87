package theme

import (
	"fmt"
	"image/color"

	"git.lost.host/meutraa/lanefall/internal/game"
)

type DefaultTheme struct {
}

func (t *DefaultTheme) RenderNote(lane game.Lane, long bool) string {
	sym := noteSym
	if long {
		sym = headSym
	}
	return paint(LaneColor(lane), sym)
}

func (t *DefaultTheme) RenderBody(lane game.Lane) string {
	return paint(LaneColor(lane), bodySym)
}

func (t *DefaultTheme) RenderHitField(lane game.Lane, pressed bool) string {
	if pressed {
		return paint(LaneColor(lane), pressedSym)
	}
	return barSym
}

func (t *DefaultTheme) RenderJudgement(j game.Judgement) string {
	return paint(JudgementColor(j), judgementNames[j])
}

const (
	noteSym    = "⬤"
	headSym    = "◉"
	bodySym    = "┃"
	barSym     = "-"
	pressedSym = "═"
)

var (
	laneColors = [game.LaneCount]color.RGBA{
		{236, 30, 0, 255},  // red
		{0, 118, 236, 255}, // blue
		{0, 118, 236, 255},
		{236, 30, 0, 255},
	}
	judgementColors = map[game.Judgement]color.RGBA{
		game.Excellent: {236, 195, 0, 255}, // yellow
		game.Good:      {0, 236, 128, 255}, // green
		game.Miss:      {236, 0, 106, 255}, // pink
	}
	judgementNames = map[game.Judgement]string{
		game.Excellent: "EXCELLENT",
		game.Good:      "  GOOD   ",
		game.Miss:      "  MISS   ",
	}
	white = color.RGBA{255, 255, 255, 255}
)

func LaneColor(lane game.Lane) color.RGBA {
	if !lane.Valid() {
		return white
	}
	return laneColors[lane]
}

func JudgementColor(j game.Judgement) color.RGBA {
	col, ok := judgementColors[j]
	if !ok {
		return white
	}
	return col
}

func paint(c color.RGBA, s string) string {
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", c.R, c.G, c.B, s)
}
