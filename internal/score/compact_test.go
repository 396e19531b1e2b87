package score

import (
	"testing"

	"git.lost.host/meutraa/lanefall/internal/game"
)

var (
	press   = game.Pressed
	release = game.Released
)

type compactTest struct {
	inputs  []game.Input
	compact []InputsCompact
}

var compactTests = []compactTest{
	{[]game.Input{}, []InputsCompact{}},
	{
		[]game.Input{{Lane: 0, Edge: press, Time: 1.0}, {Lane: 3, Edge: press, Time: 2.0}},
		[]InputsCompact{
			{Lane: 0, Times: []float64{1.0}, Edges: []game.Edge{press}},
			{Lane: 1},
			{Lane: 2},
			{Lane: 3, Times: []float64{2.0}, Edges: []game.Edge{press}},
		},
	},
	{
		[]game.Input{{Lane: 1, Edge: press, Time: 1.0}, {Lane: 1, Edge: release, Time: 1.5}, {Lane: 0, Edge: press, Time: 1.5}},
		[]InputsCompact{
			{Lane: 0, Times: []float64{1.5}, Edges: []game.Edge{press}},
			{Lane: 1, Times: []float64{1.0, 1.5}, Edges: []game.Edge{press, release}},
		},
	},
}

func equalCompact(p, q []InputsCompact) bool {
	if len(p) != len(q) {
		return false
	}
	for i := 0; i < len(p); i++ {
		pi, qi := p[i], q[i]
		if pi.Lane != qi.Lane {
			return false
		}
		if len(pi.Times) != len(qi.Times) || len(pi.Edges) != len(qi.Edges) {
			return false
		}
		for j := 0; j < len(pi.Times); j++ {
			if pi.Times[j] != qi.Times[j] || pi.Edges[j] != qi.Edges[j] {
				return false
			}
		}
	}
	return true
}

func TestCompactInputs(t *testing.T) {
	for _, test := range compactTests {
		out := compactInputs(test.inputs)
		if !equalCompact(out, test.compact) {
			t.Log("out     ", out)
			t.Log("expected", test.compact)
			t.Fail()
		}
	}
}

func TestUncompactInputs(t *testing.T) {
	// Uncompacting sorts by time, the first lane wins ties
	expected := [][]game.Input{
		{},
		{{Lane: 0, Edge: press, Time: 1.0}, {Lane: 3, Edge: press, Time: 2.0}},
		{{Lane: 1, Edge: press, Time: 1.0}, {Lane: 0, Edge: press, Time: 1.5}, {Lane: 1, Edge: release, Time: 1.5}},
	}
	for i, test := range compactTests {
		out := uncompactInputs(test.compact)
		if len(out) != len(expected[i]) {
			t.Log("in      ", test.compact)
			t.Log("expected", expected[i])
			t.FailNow()
		}
		for j := range out {
			if out[j] != expected[i][j] {
				t.Log("out     ", out)
				t.Log("expected", expected[i])
				t.Fail()
			}
		}
	}
}
