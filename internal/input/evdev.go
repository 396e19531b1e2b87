//go:build linux

package input

import (
	"encoding/binary"
	"io"
	"log"
	"os"

	"git.lost.host/meutraa/lanefall/internal/game"
	"golang.org/x/sys/unix"
)

// From linux/input-event-codes.h
const (
	evKey    = 0x01
	keyEsc   = 1
	released = 0
	pressed  = 1
)

// DefaultCodes binds D F J K
var DefaultCodes = map[uint16]game.Lane{32: 0, 33: 1, 36: 2, 37: 3}

type keyEvent struct {
	Time  unix.Timeval
	Type  uint16
	Code  uint16
	Value int32
}

type edge struct {
	input game.Input
	quit  bool
}

// EvdevProvider reads a keyboard device such as /dev/input/event3 and
// reports real press and release edges.
type EvdevProvider struct {
	file  *os.File
	edges chan edge
}

func OpenEvdev(kbd string, codes map[uint16]game.Lane) (*EvdevProvider, error) {
	file, err := os.Open(kbd)
	if err != nil {
		return nil, err
	}
	p := &EvdevProvider{file: file, edges: make(chan edge, 128)}
	go func() {
		if err := readEvents(file, codes, p.edges); nil != err {
			log.Println(err, "unable to read keyboard input")
		}
		close(p.edges)
	}()
	return p, nil
}

func readEvents(r io.Reader, codes map[uint16]game.Lane, edges chan<- edge) error {
	var ev keyEvent
	for {
		if err := binary.Read(r, binary.LittleEndian, &ev); nil != err {
			if err == io.EOF {
				return nil
			}
			return err
		}
		// Auto repeat is value 2
		if ev.Type != evKey || (ev.Value != pressed && ev.Value != released) {
			continue
		}
		if ev.Code == keyEsc {
			edges <- edge{quit: true}
			continue
		}
		lane, ok := codes[ev.Code]
		if !ok {
			continue
		}
		e := game.Input{Lane: lane, Edge: game.Pressed}
		if ev.Value == released {
			e.Edge = game.Released
		}
		edges <- edge{input: e}
	}
}

func (p *EvdevProvider) Poll() ([]game.Input, bool) {
	var inputs []game.Input
	for {
		select {
		case e, ok := <-p.edges:
			if !ok {
				return inputs, true
			}
			if e.quit {
				return inputs, true
			}
			inputs = append(inputs, e.input)
		default:
			return inputs, false
		}
	}
}

func (p *EvdevProvider) Close() error {
	return p.file.Close()
}
