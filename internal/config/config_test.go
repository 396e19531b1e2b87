package config

import (
	"errors"
	"testing"
	"time"

	"git.lost.host/meutraa/lanefall/internal/engine"
)

func TestParseDefaults(t *testing.T) {
	dir := t.TempDir()
	c, err := Parse([]string{dir})
	if nil != err {
		t.Fatal(err)
	}
	if c.Path != dir {
		t.Errorf("Expected path %v, got %v", dir, c.Path)
	}
	if c.Keys.String() != "dfjk" || c.Delay != 1500*time.Millisecond || !c.Retry {
		t.Errorf("Unexpected defaults %+v", c)
	}

	s := c.Settings()
	expected := engine.DefaultSettings()
	expected.Preroll = 1.5
	if s != expected {
		t.Errorf("Expected %+v, got %+v", expected, s)
	}
}

func TestParseFlags(t *testing.T) {
	dir := t.TempDir()
	c, err := Parse([]string{"-s", "20", "--tolerance=0.25", "--keys", "asdf", "-D", "2", "--delay", "0s", "--no-retry", dir})
	if nil != err {
		t.Fatal(err)
	}
	s := c.Settings()
	if s.Speed != 20 || s.Tolerance != 0.25 || s.Preroll != 0 {
		t.Errorf("Unexpected settings %+v", s)
	}
	if c.Keys.String() != "asdf" || c.Difficulty != 2 || c.Retry {
		t.Errorf("Unexpected config %+v", c)
	}
	if s.TravelTime() != 0.65 {
		t.Errorf("Expected travel time 0.65, got %v", s.TravelTime())
	}
}

func TestParseInvalid(t *testing.T) {
	dir := t.TempDir()
	cases := [][]string{
		{},
		{dir + "/missing"},
		{"--keys", "abc", dir},
		{"--speed", "0", dir},
		{"--judge-y", "20", dir},
		{"--difficulty", "-1", dir},
	}
	for _, args := range cases {
		if _, err := Parse(args); nil == err {
			t.Errorf("Expected %v to fail", args)
		}
	}
	if _, err := Parse([]string{"--despawn-y", "5", dir}); !errors.Is(err, engine.ErrInvalidSettings) {
		t.Errorf("Expected ErrInvalidSettings, got %v", err)
	}
}
