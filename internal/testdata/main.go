package testdata

import (
	"strings"

	"git.lost.host/meutraa/lanefall/internal/game"
	"gopkg.in/yaml.v3"
)

// Chart is a short 120 BPM chart with taps and long notes on every lane.
const Chart = `title: Fixture
audio: fixture.ogg
bpm: 120
beats_per_measure: 4
steps_per_measure: 16
offset: 0.25
difficulty:
  name: Normal
  meter: "3"
notes:
  - {lane: 0, step: 0}
  - {lane: 1, step: 4}
  - {lane: 2, step: 8, length: 8}
  - {lane: 3, step: 12}
  - {lane: 0, step: 16, length: 12}
  - {lane: 1, step: 24}
  - {lane: 3, step: 24}
  - {lane: 2, step: 32, length: 2}
`

// StepMania holds one dance-single chart and one chart of another type.
const StepMania = `#TITLE:Fixture;
#MUSIC:fixture.ogg;
#OFFSET:-0.100;
#BPMS:0.000=150.000;
#NOTES:
     dance-single:
     author:
     Hard:
     7:
     0.1,0.2,0.3,0.4,0.5:
1000
0100
0010
0001
,
2000
0000
3000
0M00
,  // measure 3
1001
0000
0000
0000
0000
0000
0000
0400
0000
0000
0000
0300
;
#NOTES:
     dance-double:
     author:
     Hard:
     7:
     0.1,0.2,0.3,0.4,0.5:
10000000
;
`

func GetChart() (*game.Chart, error) {
	var chart game.Chart
	if err := yaml.NewDecoder(strings.NewReader(Chart)).Decode(&chart); nil != err {
		return nil, err
	}
	for i := range chart.Notes {
		if chart.Notes[i].Length == 0 {
			chart.Notes[i].Length = 1
		}
	}
	return &chart, nil
}
