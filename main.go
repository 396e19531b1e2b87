package main

import (
	"fmt"
	"log"
	"os"

	"git.lost.host/meutraa/lanefall/internal/config"
	"git.lost.host/meutraa/lanefall/internal/render"
	"git.lost.host/meutraa/lanefall/internal/score"
	"git.lost.host/meutraa/lanefall/internal/theme"
)

func main() {
	if err := run(os.Args[1:]); nil != err {
		log.Fatalln(err)
	}
}

func run(args []string) error {
	c, err := config.Parse(args)
	if nil != err {
		return err
	}

	// The terminal is raw while playing, so logs go to a file
	f, err := os.OpenFile(c.Log, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if nil != err {
		return fmt.Errorf("unable to open log file: %w", err)
	}
	defer f.Close()
	log.SetOutput(f)

	// Ensure our Default implementations are used as interfaces
	p := &Program{
		Config: c,
		Store:  &score.DefaultStore{},
		Theme:  &theme.DefaultTheme{},
	}
	if err := p.Init(); nil != err {
		return err
	}
	defer p.Deinit()

	in, err := p.OpenInput()
	if nil != err {
		return fmt.Errorf("unable to open input: %w", err)
	}
	defer func() {
		if err := in.Close(); nil != err {
			log.Println("unable to close input", err)
		}
	}()

	r := render.NewRenderer(os.Stdout)
	if err := r.Init(); nil != err {
		return err
	}
	defer r.Deinit()

	for {
		retry, err := p.Play(r, in)
		if nil != err || !retry {
			return err
		}
	}
}
