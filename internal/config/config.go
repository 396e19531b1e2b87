package config

import (
	"fmt"
	"time"

	"git.lost.host/meutraa/lanefall/internal/engine"
	"git.lost.host/meutraa/lanefall/internal/input"
	"gopkg.in/alecthomas/kingpin.v2"
)

const Version = "0.3.0"

type Config struct {
	Path         string // Chart file or song directory
	Difficulty   int
	Speed        float64
	SpawnY       float64
	JudgeY       float64
	DespawnY     float64
	Tolerance    float64
	GoodBand     float64
	Delay        time.Duration
	FramePeriod  time.Duration
	Keys         input.Keymap
	Device       string
	ReleaseAfter time.Duration
	Log          string
	Retry        bool
}

func newApp(c *Config, keys *string) *kingpin.Application {
	d := engine.DefaultSettings()
	app := kingpin.New("lanefall", "Four lane rhythm game for the terminal.")
	app.Version(Version)
	app.HelpFlag.Short('h')

	app.Arg("chart", "Chart file (.yaml, .sm) or song directory").Required().ExistingFileOrDirVar(&c.Path)
	app.Flag("difficulty", "Chart index within the file").Default("0").Short('D').IntVar(&c.Difficulty)
	app.Flag("speed", "Note speed in units per second").Default(fmt.Sprint(d.Speed)).Short('s').Float64Var(&c.Speed)
	app.Flag("spawn-y", "Position notes spawn at").Default(fmt.Sprint(d.SpawnY)).Float64Var(&c.SpawnY)
	app.Flag("judge-y", "Position of the judgement line").Default(fmt.Sprint(d.JudgeY)).Float64Var(&c.JudgeY)
	app.Flag("despawn-y", "Position missed notes disappear at").Default(fmt.Sprint(d.DespawnY)).Float64Var(&c.DespawnY)
	app.Flag("tolerance", "Excellent window in units").Default(fmt.Sprint(d.Tolerance)).Short('t').Float64Var(&c.Tolerance)
	app.Flag("good-band", "Good window beyond the excellent window").Default(fmt.Sprint(d.GoodBand)).Float64Var(&c.GoodBand)
	app.Flag("delay", "Start delay").Default("1.5s").Short('d').DurationVar(&c.Delay)
	app.Flag("frame-period", "Render frame period").Default("4ms").Short('p').DurationVar(&c.FramePeriod)
	app.Flag("keys", "Keys for the four lanes").Default("dfjk").Short('k').StringVar(keys)
	app.Flag("device", "Read keys from an evdev device instead of the terminal").StringVar(&c.Device)
	app.Flag("release-after", "Treat a terminal key as released when it stops repeating this long").Default("550ms").DurationVar(&c.ReleaseAfter)
	app.Flag("log", "Log file").Default("lanefall.log").StringVar(&c.Log)
	app.Flag("retry", "Offer another play after the results").Default("true").BoolVar(&c.Retry)
	return app
}

// Parse reads the command line, without the program name.
func Parse(args []string) (*Config, error) {
	c := &Config{}
	var keys string
	if _, err := newApp(c, &keys).Parse(args); nil != err {
		return nil, err
	}

	keymap, err := input.ParseKeymap(keys)
	if nil != err {
		return nil, err
	}
	c.Keys = keymap

	if c.Difficulty < 0 {
		return nil, fmt.Errorf("difficulty %v must not be negative", c.Difficulty)
	}
	if c.Delay < 0 || c.FramePeriod <= 0 {
		return nil, fmt.Errorf("delay and frame period must be positive")
	}
	if err := c.Settings().Validate(); nil != err {
		return nil, err
	}
	return c, nil
}

func (c *Config) Settings() engine.Settings {
	s := engine.DefaultSettings()
	s.Speed = c.Speed
	s.SpawnY = c.SpawnY
	s.JudgeY = c.JudgeY
	s.DespawnY = c.DespawnY
	s.Tolerance = c.Tolerance
	s.GoodBand = c.GoodBand
	s.Preroll = c.Delay.Seconds()
	return s
}
