package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"
	"github.com/faiface/beep/wav"
)

// Player plays a single track and reports its position as the session clock.
type Player struct {
	streamer beep.StreamSeekCloser
	format   beep.Format

	mu      sync.Mutex
	started bool
	done    bool
}

// Decode picks a decoder by file extension.
func Decode(file string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, beep.Format{}, err
	}
	var streamer beep.StreamSeekCloser
	var format beep.Format
	switch strings.ToLower(filepath.Ext(file)) {
	case ".ogg":
		streamer, format, err = vorbis.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	default:
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("unsupported audio file %v", file)
	}
	if err != nil {
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("unable to decode %v: %w", file, err)
	}
	return streamer, format, nil
}

// Open decodes file and initialises the speaker for its sample rate.
func Open(file string) (*Player, error) {
	streamer, format, err := Decode(file)
	if nil != err {
		return nil, err
	}
	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/60)); nil != err {
		streamer.Close()
		return nil, fmt.Errorf("unable to open speaker: %w", err)
	}
	return &Player{streamer: streamer, format: format}, nil
}

func (p *Player) Start() {
	p.mu.Lock()
	if p.started {
		p.mu.Unlock()
		return
	}
	p.started = true
	p.mu.Unlock()

	// The callback runs on the speaker goroutine
	speaker.Play(beep.Seq(p.streamer, beep.Callback(func() {
		p.mu.Lock()
		p.done = true
		p.mu.Unlock()
	})))
}

func (p *Player) Started() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.started
}

// Seconds is the playback position of the stream.
func (p *Player) Seconds() float64 {
	speaker.Lock()
	pos := p.streamer.Position()
	speaker.Unlock()
	return p.format.SampleRate.D(pos).Seconds()
}

func (p *Player) Ended() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.done
}

// Length is the duration of the whole track.
func (p *Player) Length() time.Duration {
	return p.format.SampleRate.D(p.streamer.Len())
}

// Stop silences the speaker, the track counts as ended.
func (p *Player) Stop() {
	speaker.Clear()
	p.mu.Lock()
	p.done = true
	p.mu.Unlock()
}

func (p *Player) Close() error {
	speaker.Clear()
	return p.streamer.Close()
}
