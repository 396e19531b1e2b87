package theme

import (
	"git.lost.host/meutraa/lanefall/internal/game"
)

type Theme interface {
	RenderNote(lane game.Lane, long bool) string
	RenderBody(lane game.Lane) string
	RenderHitField(lane game.Lane, pressed bool) string
	RenderJudgement(j game.Judgement) string
}
