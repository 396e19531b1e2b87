//go:build !linux

package input

import (
	"errors"

	"git.lost.host/meutraa/lanefall/internal/game"
)

var DefaultCodes = map[uint16]game.Lane{}

type EvdevProvider struct{}

func OpenEvdev(kbd string, codes map[uint16]game.Lane) (*EvdevProvider, error) {
	return nil, errors.New("evdev input is only available on linux")
}

func (p *EvdevProvider) Poll() ([]game.Input, bool) { return nil, true }
func (p *EvdevProvider) Close() error { return nil }
