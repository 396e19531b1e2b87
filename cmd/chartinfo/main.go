package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"git.lost.host/meutraa/lanefall/internal/engine"
	"git.lost.host/meutraa/lanefall/internal/game"
	"git.lost.host/meutraa/lanefall/internal/parser"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/pflag"
)

var logger *log.Logger

func main() {
	logger = log.New(os.Stderr, "", log.Ldate|log.Ltime)
	if err := run(os.Args[1:], os.Stdout); nil != err {
		logger.Fatalln(err)
	}
}

func run(args []string, out io.Writer) error {
	flags := pflag.NewFlagSet("chartinfo", pflag.ContinueOnError)
	var (
		difficulty int
		snap       float64
		dump       bool
		convert    string
	)
	flags.IntVarP(&difficulty, "difficulty", "D", -1, "only this chart index")
	flags.Float64VarP(&snap, "snap", "s", -1, "print the step nearest to this chart time in seconds")
	flags.BoolVarP(&dump, "dump", "d", false, "dump the parsed charts")
	flags.StringVarP(&convert, "convert", "c", "", "write the charts as yaml to this file")
	if err := flags.Parse(args); nil != err {
		return err
	}
	if flags.NArg() != 1 {
		return fmt.Errorf("expected one chart file, got %v", flags.NArg())
	}
	file := flags.Arg(0)

	charts, err := parser.Parse(file)
	if nil != err {
		return err
	}
	if difficulty >= 0 {
		if difficulty >= len(charts) {
			return fmt.Errorf("difficulty %v not in %v (%v charts)", difficulty, file, len(charts))
		}
		charts = charts[difficulty : difficulty+1]
	}

	if dump {
		spew.Fdump(out, charts)
	}

	for i, c := range charts {
		if err := summary(out, i, c); nil != err {
			return err
		}
		if flags.Changed("snap") {
			step, err := game.StepFromTime(c.Beatmap, snap)
			if nil != err {
				return err
			}
			fmt.Fprintf(out, "        Snap:  %v s -> step %v\n", snap, step)
		}
	}

	if convert != "" {
		f, err := os.Create(convert)
		if nil != err {
			return fmt.Errorf("unable to create %v: %w", convert, err)
		}
		defer f.Close()
		if err := (&parser.YAMLParser{}).Encode(f, charts); nil != err {
			return err
		}
		logger.Printf("Wrote %v charts to %v", len(charts), convert)
	}
	return nil
}

func summary(out io.Writer, index int, c *game.Chart) error {
	timing, err := game.NewTiming(c.Beatmap)
	if nil != err {
		return err
	}
	best, err := engine.MaxScore(c, engine.DefaultSettings())
	if nil != err {
		return err
	}
	lanes := c.LaneCounts()

	fmt.Fprintf(out, "%2v) %v [%v %v]\n", index, c.Beatmap.Title, c.Difficulty.Name, c.Difficulty.Meter)
	fmt.Fprintf(out, "         BPM:  %v\n", c.Beatmap.BPM)
	fmt.Fprintf(out, "  Step (sec):  %.4f\n", timing.SecondsPerStep())
	fmt.Fprintf(out, "       Notes:  %v\n", len(c.Notes))
	fmt.Fprintf(out, "       Holds:  %v\n", c.LongCount(timing))
	fmt.Fprintf(out, "       Lanes:  %v\n", lanes)
	fmt.Fprintf(out, "    Duration:  %.3f s\n", c.Duration(timing))
	fmt.Fprintf(out, "   Max score:  %v\n", best.Score)
	fmt.Fprintf(out, "        Hash:  %v\n", c.Hash())
	return nil
}
