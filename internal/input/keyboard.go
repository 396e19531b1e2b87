package input

import (
	"time"

	"git.lost.host/meutraa/lanefall/internal/game"
	"github.com/eiannone/keyboard"
)

// KeyboardProvider reads the terminal. Terminals only report presses, so a
// lane counts as released once its key stops auto-repeating for releaseAfter.
type KeyboardProvider struct {
	keymap       Keymap
	events       <-chan keyboard.KeyEvent
	releaseAfter time.Duration
	now          func() time.Time
	closer       func() error

	down [game.LaneCount]bool
	seen [game.LaneCount]time.Time
}

func OpenKeyboard(keymap Keymap, releaseAfter time.Duration) (*KeyboardProvider, error) {
	events, err := keyboard.GetKeys(128)
	if nil != err {
		return nil, err
	}
	k := newKeyboard(events, keymap, releaseAfter, time.Now)
	k.closer = keyboard.Close
	return k, nil
}

func newKeyboard(events <-chan keyboard.KeyEvent, keymap Keymap, releaseAfter time.Duration, now func() time.Time) *KeyboardProvider {
	return &KeyboardProvider{
		keymap:       keymap,
		events:       events,
		releaseAfter: releaseAfter,
		now:          now,
	}
}

func (k *KeyboardProvider) Poll() ([]game.Input, bool) {
	now := k.now()
	var inputs []game.Input
	quit := false

	// get the key inputs that occured so far
	for drained := false; !drained; {
		select {
		case ev, ok := <-k.events:
			if !ok {
				drained = true
				quit = true
				break
			}
			if ev.Err != nil || ev.Key == keyboard.KeyEsc || ev.Key == keyboard.KeyCtrlC {
				quit = true
				continue
			}
			lane, ok := k.keymap.Lane(ev.Rune)
			if !ok {
				continue
			}
			// Repeats of a held key only extend the hold
			if !k.down[lane] {
				k.down[lane] = true
				inputs = append(inputs, game.Input{Lane: lane, Edge: game.Pressed})
			}
			k.seen[lane] = now
		default:
			drained = true
		}
	}

	for i := range k.down {
		if k.down[i] && now.Sub(k.seen[i]) > k.releaseAfter {
			k.down[i] = false
			inputs = append(inputs, game.Input{Lane: game.Lane(i), Edge: game.Released})
		}
	}
	return inputs, quit
}

func (k *KeyboardProvider) Close() error {
	if nil == k.closer {
		return nil
	}
	return k.closer()
}
