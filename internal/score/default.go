package score

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"sync/atomic"

	"git.lost.host/meutraa/lanefall/internal/game"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

// Every store gets its own private in-memory database which vanishes on Deinit.
var storeCounter uint64

type DefaultStore struct {
	db *sql.DB
}

type InputsCompact struct {
	Lane  game.Lane
	Times []float64
	Edges []game.Edge
}

func compactInputs(inputs []game.Input) []InputsCompact {
	laneCount := 0
	for _, i := range inputs {
		if int(i.Lane) >= laneCount {
			laneCount = int(i.Lane) + 1
		}
	}
	ins := make([]InputsCompact, laneCount)
	for i := range ins {
		ins[i].Lane = game.Lane(i)
	}
	for _, i := range inputs {
		ins[i.Lane].Times = append(ins[i.Lane].Times, i.Time)
		ins[i.Lane].Edges = append(ins[i.Lane].Edges, i.Edge)
	}
	return ins
}

// uncompactInputs restores time order. Lanes keep their recorded order.
func uncompactInputs(inputs []InputsCompact) []game.Input {
	ins := []game.Input{}
	for _, c := range inputs {
		for j, t := range c.Times {
			edge := game.Pressed
			if j < len(c.Edges) {
				edge = c.Edges[j]
			}
			ins = append(ins, game.Input{Lane: c.Lane, Edge: edge, Time: t})
		}
	}
	sort.SliceStable(ins, func(i, j int) bool {
		return ins[i].Time < ins[j].Time
	})
	return ins
}

func (s *DefaultStore) Init() error {
	name := fmt.Sprintf("file:plays%v?mode=memory&cache=shared", atomic.AddUint64(&storeCounter, 1))
	db, err := sql.Open("sqlite3", name)
	if err != nil {
		return errors.Wrap(err, "unable to open session store")
	}
	// The database lives as long as one connection does
	db.SetMaxOpenConns(1)

	initStatement := `
	create table if not exists plays
	  (
		  id integer not null primary key,
		  sum text,
		  score integer,
		  max_combo integer,
		  excellent integer,
		  good integer,
		  bad integer,
		  inputs blob
	  );
	`
	_, err = db.Exec(initStatement)
	if nil != err {
		db.Close()
		return errors.Wrap(err, "unable to create plays table")
	}

	s.db = db
	return nil
}

func (s *DefaultStore) Deinit() {
	if nil != s.db {
		s.db.Close()
		s.db = nil
	}
}

func (s *DefaultStore) Save(c *game.Chart, r Result, inputs []game.Input) error {
	if nil == s.db {
		return errors.New("session store is not initialised")
	}
	data, err := json.Marshal(compactInputs(inputs))
	if nil != err {
		return errors.Wrap(err, "unable to marshal inputs")
	}
	_, err = s.db.Exec(
		"insert into plays(sum, score, max_combo, excellent, good, bad, inputs) values(?, ?, ?, ?, ?, ?, ?)",
		c.Hash(), r.Score, r.MaxCombo, r.Excellent, r.Good, r.Bad, data,
	)
	return errors.Wrap(err, "unable to save play")
}

func (s *DefaultStore) query(q string, c *game.Chart) ([]History, error) {
	if nil == s.db {
		return nil, errors.New("session store is not initialised")
	}
	rows, err := s.db.Query(q, c.Hash())
	if nil != err {
		return nil, errors.Wrap(err, "unable to load plays")
	}
	defer rows.Close()

	histories := []History{}
	for rows.Next() {
		var h History
		var data []byte
		if err := rows.Scan(&h.Sum, &h.Result.Score, &h.Result.MaxCombo,
			&h.Result.Excellent, &h.Result.Good, &h.Result.Bad, &data); nil != err {
			return nil, errors.Wrap(err, "unable to scan play")
		}
		var ins []InputsCompact
		if err := json.Unmarshal(data, &ins); nil != err {
			return nil, errors.Wrapf(err, "unable to unmarshal inputs of %v", h.Sum)
		}
		h.Inputs = uncompactInputs(ins)
		histories = append(histories, h)
	}
	return histories, errors.Wrap(rows.Err(), "unable to read plays")
}

func (s *DefaultStore) Load(c *game.Chart) ([]History, error) {
	return s.query("select sum, score, max_combo, excellent, good, bad, inputs from plays where sum = ? order by id desc", c)
}

// Best returns nil when the chart has not been played this session.
func (s *DefaultStore) Best(c *game.Chart) (*History, error) {
	hs, err := s.query("select sum, score, max_combo, excellent, good, bad, inputs from plays where sum = ? order by score desc, id asc limit 1", c)
	if nil != err || len(hs) == 0 {
		return nil, err
	}
	return &hs[0], nil
}
