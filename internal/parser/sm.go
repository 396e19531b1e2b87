package parser

import (
	"os"
	"strconv"
	"strings"

	"git.lost.host/meutraa/lanefall/internal/game"
	"github.com/pkg/errors"
)

// StepMania measures are split into 192 steps, 48 per quarter note
const (
	smStepsPerMeasure = 192
	smBeatsPerMeasure = 4
)

// SMParser imports the dance-single charts of a StepMania file. Only a
// single BPM is supported.
type SMParser struct{}

type smBPM struct {
	StartingBeat float64
	Value        float64
}

// 0 – No note
// 1 – Normal note
// 2 – Hold head
// 3 – Hold/Roll tail
// 4 – Roll head
// M – Mine (or other negative note)
// K – Automatic keysound
// L – Lift note
// F – Fake note

func (p *SMParser) Parse(file string) ([]*game.Chart, error) {
	data, err := os.ReadFile(file)
	if nil != err {
		return nil, errors.Wrap(err, "unable to read chart")
	}
	return p.ParseString(string(data))
}

func (p *SMParser) ParseString(data string) ([]*game.Chart, error) {
	str := strings.ReplaceAll(data, "\r", "")
	sections := strings.Split(str, "#NOTES:")
	meta := sections[0]

	beatmap := game.Beatmap{
		BeatsPerMeasure: smBeatsPerMeasure,
		StepsPerMeasure: smStepsPerMeasure,
	}
	bpms := []smBPM{}

	for _, mdl := range strings.Split("\n"+meta, "\n#") {
		mdl = strings.TrimSpace(mdl)
		key, value, ok := strings.Cut(mdl, ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(value), ";"))
		switch key {
		case "TITLE":
			beatmap.Title = value
		case "MUSIC":
			beatmap.Audio = value
		case "OFFSET":
			offs, err := strconv.ParseFloat(value, 64)
			if nil != err {
				return nil, errors.Wrap(err, "unable to parse offset")
			}
			beatmap.Offset = -offs
		case "BPMS":
			value = strings.ReplaceAll(value, "\n", "")
			for _, bpm := range strings.Split(value, ",") {
				as := strings.Split(strings.TrimSpace(bpm), "=")
				if len(as) != 2 {
					return nil, errors.Errorf("malformed bpm %q", bpm)
				}
				sb, err := strconv.ParseFloat(as[0], 64)
				if nil != err {
					return nil, errors.Wrap(err, "unable to parse bpm beat")
				}
				v, err := strconv.ParseFloat(as[1], 64)
				if nil != err {
					return nil, errors.Wrap(err, "unable to parse bpm")
				}
				bpms = append(bpms, smBPM{StartingBeat: sb, Value: v})
			}
		}
	}

	if len(bpms) == 0 {
		return nil, errors.New("no bpm found")
	}
	for _, bpm := range bpms[1:] {
		if bpm.Value != bpms[0].Value {
			return nil, errors.Errorf("bpm changes are not supported, %v at beat %v", bpm.Value, bpm.StartingBeat)
		}
	}
	beatmap.BPM = bpms[0].Value

	charts := []*game.Chart{}
	for _, section := range sections[1:] {
		lines := strings.SplitN(section, "\n", 7)
		if len(lines) < 7 {
			return nil, errors.New("truncated notes section")
		}
		chartType := strings.TrimSuffix(strings.TrimSpace(lines[1]), ":")
		if _, ok := game.NKeyMap[chartType]; !ok {
			continue
		}
		notes, err := p.parseNotes(lines[6])
		if nil != err {
			return nil, errors.Wrapf(err, "unable to parse %v", strings.TrimSpace(lines[3]))
		}
		charts = append(charts, &game.Chart{
			Beatmap: beatmap,
			Difficulty: game.Difficulty{
				Name:  strings.TrimSuffix(strings.TrimSpace(lines[3]), ":"),
				Meter: strings.TrimSuffix(strings.TrimSpace(lines[4]), ":"),
			},
			Notes: notes,
		})
	}
	if len(charts) == 0 {
		return nil, errors.New("no dance-single charts found")
	}
	return charts, nil
}

// measureRows returns the note rows of one measure block.
func measureRows(block string) []string {
	rows := []string{}
	for _, l := range strings.Split(block, "\n") {
		if i := strings.Index(l, "//"); i >= 0 {
			l = l[:i]
		}
		l = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(l), ";"))
		if len(l) == game.LaneCount {
			rows = append(rows, l)
		}
	}
	return rows
}

func (p *SMParser) parseNotes(data string) ([]game.Note, error) {
	// Section ends at the first semicolon
	if i := strings.Index(data, ";"); i >= 0 {
		data = data[:i]
	}

	notes := []game.Note{}
	heads := [game.LaneCount]int{-1, -1, -1, -1}
	for m, block := range strings.Split(data, ",") {
		rows := measureRows(block)
		lineCount := len(rows)
		for i, row := range rows {
			// Rows that do not divide the measure evenly snap to the nearest step
			step := m*smStepsPerMeasure + (i*smStepsPerMeasure+lineCount/2)/lineCount
			for col, c := range []byte(row) {
				lane := game.Lane(col)
				switch c {
				case '1':
					notes = append(notes, game.Note{Lane: lane, Step: step, Length: 1})
				case '2', '4':
					heads[col] = len(notes)
					notes = append(notes, game.Note{Lane: lane, Step: step, Length: 1})
				case '3':
					// This is a release note of a previous head
					h := heads[col]
					if h < 0 {
						return nil, errors.Errorf("hold tail without head in measure %v lane %v", m, col)
					}
					if length := step - notes[h].Step; length > 0 {
						notes[h].Length = length
					}
					heads[col] = -1
				}
			}
		}
	}
	return notes, nil
}
