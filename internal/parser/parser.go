package parser

import (
	"path/filepath"
	"strings"

	"git.lost.host/meutraa/lanefall/internal/game"
	"github.com/pkg/errors"
)

type Parser interface {
	Parse(file string) ([]*game.Chart, error)
}

// ForFile picks a parser by file extension.
func ForFile(file string) (Parser, error) {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		return &YAMLParser{}, nil
	case ".sm":
		return &SMParser{}, nil
	}
	return nil, errors.Errorf("no parser for %v", file)
}

// Parse reads every chart in file. The notes of each chart are sorted and
// the chart validated.
func Parse(file string) ([]*game.Chart, error) {
	p, err := ForFile(file)
	if nil != err {
		return nil, err
	}
	charts, err := p.Parse(file)
	if nil != err {
		return nil, err
	}
	for i, c := range charts {
		c.Sort()
		if err := c.Validate(); nil != err {
			return nil, errors.Wrapf(err, "chart %v of %v", i, file)
		}
	}
	return charts, nil
}
