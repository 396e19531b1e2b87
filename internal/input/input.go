package input

import (
	"fmt"

	"git.lost.host/meutraa/lanefall/internal/game"
)

// Provider collects key edges between ticks.
type Provider interface {
	// Poll returns the edges since the last call, and whether the player asked to quit.
	Poll() ([]game.Input, bool)
	Close() error
}

// Keymap binds one rune per lane.
type Keymap [game.LaneCount]rune

func ParseKeymap(keys string) (Keymap, error) {
	var k Keymap
	rs := []rune(keys)
	if len(rs) != game.LaneCount {
		return k, fmt.Errorf("expected %v keys, got %q", game.LaneCount, keys)
	}
	for i, r := range rs {
		for j := 0; j < i; j++ {
			if rs[j] == r {
				return k, fmt.Errorf("key %q bound twice", r)
			}
		}
		k[i] = r
	}
	return k, nil
}

func (k Keymap) Lane(r rune) (game.Lane, bool) {
	for i, c := range k {
		if r == c {
			return game.Lane(i), true
		}
	}
	return 0, false
}

func (k Keymap) String() string {
	return string(k[:])
}
