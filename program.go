package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"git.lost.host/meutraa/lanefall/internal/audio"
	"git.lost.host/meutraa/lanefall/internal/config"
	"git.lost.host/meutraa/lanefall/internal/engine"
	"git.lost.host/meutraa/lanefall/internal/game"
	"git.lost.host/meutraa/lanefall/internal/input"
	"git.lost.host/meutraa/lanefall/internal/parser"
	"git.lost.host/meutraa/lanefall/internal/render"
	"git.lost.host/meutraa/lanefall/internal/score"
	"git.lost.host/meutraa/lanefall/internal/theme"
)

type Program struct {
	Config *config.Config
	Store  score.Store
	Theme  theme.Theme

	audioFile, chartFile string

	charts []*game.Chart
	chart  *game.Chart
}

// findSong walks a song directory for a chart and an audio file.
func findSong(dir string) (chartFile, audioFile string, err error) {
	if err := filepath.Walk(dir, func(p string, info os.FileInfo, err error) error {
		if nil != err {
			return err
		}
		switch strings.ToLower(filepath.Ext(info.Name())) {
		case ".ogg", ".mp3", ".wav":
			audioFile = p
		case ".yaml", ".yml", ".sm":
			chartFile = p
		}
		return nil
	}); nil != err {
		return "", "", fmt.Errorf("unable to walk song directory: %w", err)
	}
	if chartFile == "" {
		return "", "", errors.New("unable to find a .yaml or .sm chart in the song directory")
	}
	return chartFile, audioFile, nil
}

// resolveAudio prefers the audio named by the chart, relative to the chart file.
func resolveAudio(chartFile, found string, chart *game.Chart) (string, error) {
	if chart.Audio != "" {
		if filepath.IsAbs(chart.Audio) {
			return chart.Audio, nil
		}
		return filepath.Join(filepath.Dir(chartFile), chart.Audio), nil
	}
	if found == "" {
		return "", fmt.Errorf("no audio for %v", chartFile)
	}
	return found, nil
}

func (p *Program) Init() error {
	info, err := os.Stat(p.Config.Path)
	if nil != err {
		return err
	}
	var found string
	if info.IsDir() {
		p.chartFile, found, err = findSong(p.Config.Path)
	} else {
		p.chartFile = p.Config.Path
		_, found, err = findSong(filepath.Dir(p.chartFile))
		if nil != err {
			// The chart itself is enough when it names its audio
			found, err = "", nil
		}
	}
	if nil != err {
		return err
	}

	p.charts, err = parser.Parse(p.chartFile)
	if nil != err {
		return err
	}
	for i, c := range p.charts {
		log.Printf("%2v) %3v  %5v  %v\n", i, c.Difficulty.Meter, len(c.Notes), c.Difficulty.Name)
	}
	if p.Config.Difficulty >= len(p.charts) {
		return fmt.Errorf("difficulty %v not in %v (%v charts)", p.Config.Difficulty, p.chartFile, len(p.charts))
	}
	p.chart = p.charts[p.Config.Difficulty]

	p.audioFile, err = resolveAudio(p.chartFile, found, p.chart)
	if nil != err {
		return err
	}
	log.Printf("Opening %v (%v)\n", p.audioFile, p.chartFile)

	return p.Store.Init()
}

func (p *Program) Deinit() {
	p.Store.Deinit()
}

func (p *Program) OpenInput() (input.Provider, error) {
	if p.Config.Device != "" {
		in, err := input.OpenEvdev(p.Config.Device, input.DefaultCodes)
		if nil != err {
			return nil, err
		}
		return in, nil
	}
	in, err := input.OpenKeyboard(p.Config.Keys, p.Config.ReleaseAfter)
	if nil != err {
		return nil, err
	}
	return in, nil
}

// Play runs one session and its results screen, and reports whether the
// player asked for another go.
func (p *Program) Play(r render.Renderer, in input.Provider) (bool, error) {
	player, err := audio.Open(p.audioFile)
	if nil != err {
		return false, err
	}
	defer func() {
		if err := player.Close(); nil != err {
			log.Println("unable to close audio", err)
		}
	}()

	s, err := engine.NewSession(p.chart, p.Config.Settings(), player)
	if nil != err {
		return false, err
	}
	field := render.NewPlayfield(r, p.Theme, s.Settings())

	var pressed [game.LaneCount]bool
	r.RenderLoop(p.Config.FramePeriod, func(elapsed time.Duration) bool {
		inputs, quit := in.Poll()
		for _, i := range inputs {
			if i.Lane.Valid() {
				pressed[i.Lane] = i.Edge == game.Pressed
			}
		}
		engine.Dispatch(field, s.Tick(elapsed.Seconds(), inputs))
		if quit {
			player.Stop()
			engine.Dispatch(field, s.Stop())
		}
		field.Draw(s, pressed)
		return !s.Ended()
	})

	res, _ := field.Result()
	log.Printf("Finished %v: %+v\n", p.chart.Beatmap.Title, res)

	var best *score.Result
	if h, err := p.Store.Best(p.chart); nil != err {
		log.Println("unable to load best play", err)
	} else if nil != h {
		best = &h.Result
	}
	if err := p.Store.Save(p.chart, res, s.Inputs()); nil != err {
		log.Println("unable to save play", err)
	}

	title := fmt.Sprintf("%v [%v]", p.chart.Beatmap.Title, p.chart.Difficulty.Name)
	reveal := render.Results(r, title, res, best, p.Config.Retry)
	retry := false
	r.RenderLoop(p.Config.FramePeriod, func(elapsed time.Duration) bool {
		inputs, quit := in.Poll()
		key := false
		for _, i := range inputs {
			key = key || i.Edge == game.Pressed
		}
		if !reveal.Advance(elapsed) {
			if key || quit {
				reveal.Skip()
			}
			return true
		}
		if quit {
			return false
		}
		if key {
			retry = p.Config.Retry
			return false
		}
		return true
	})
	return retry, nil
}
