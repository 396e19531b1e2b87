package parser

import (
	"bytes"
	"io"
	"os"

	"git.lost.host/meutraa/lanefall/internal/game"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// YAMLParser reads the native chart format, one chart per YAML document.
type YAMLParser struct{}

func (p *YAMLParser) Parse(file string) ([]*game.Chart, error) {
	data, err := os.ReadFile(file)
	if nil != err {
		return nil, errors.Wrap(err, "unable to read chart")
	}
	return p.Decode(bytes.NewReader(data))
}

func (p *YAMLParser) Decode(r io.Reader) ([]*game.Chart, error) {
	charts := []*game.Chart{}
	dec := yaml.NewDecoder(r)
	for {
		var c game.Chart
		err := dec.Decode(&c)
		if err == io.EOF {
			break
		}
		if nil != err {
			return nil, errors.Wrapf(err, "unable to decode chart %v", len(charts))
		}
		// Length may be left out for taps
		for i := range c.Notes {
			if c.Notes[i].Length == 0 {
				c.Notes[i].Length = 1
			}
		}
		charts = append(charts, &c)
	}
	if len(charts) == 0 {
		return nil, errors.New("no charts found")
	}
	return charts, nil
}

// Encode writes charts as consecutive YAML documents.
func (p *YAMLParser) Encode(w io.Writer, charts []*game.Chart) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	for _, c := range charts {
		if err := enc.Encode(c); nil != err {
			return errors.Wrap(err, "unable to encode chart")
		}
	}
	return errors.Wrap(enc.Close(), "unable to flush charts")
}
