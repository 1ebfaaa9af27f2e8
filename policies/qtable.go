package policies

import (
	"encoding/json"
	"math"

	"github.com/HARPLab/human-ai-value-alignment/util"
)

// QTable maps (state hash, action hash) pairs to expected return
type QTable struct {
	table map[string]map[string]float64
}

func NewQTable() *QTable {
	return &QTable{
		table: make(map[string]map[string]float64),
	}
}

// NewQTableFrom builds a table from a snapshot, copying the values
func NewQTableFrom(snapshot map[string]map[string]float64) *QTable {
	q := NewQTable()
	for state, actions := range snapshot {
		q.table[state] = make(map[string]float64, len(actions))
		for action, val := range actions {
			q.table[state][action] = val
		}
	}
	return q
}

func (q *QTable) Get(state, action string, def float64) float64 {
	if _, ok := q.table[state]; !ok {
		q.table[state] = make(map[string]float64)
	}
	if _, ok := q.table[state][action]; !ok {
		q.table[state][action] = def
	}
	return q.table[state][action]
}

func (q *QTable) Set(state, action string, val float64) {
	if _, ok := q.table[state]; !ok {
		q.table[state] = make(map[string]float64)
	}
	q.table[state][action] = val
}

func (q *QTable) HasState(state string) bool {
	_, ok := q.table[state]
	return ok
}

// Max returns the best action recorded for the state along with its value
func (q *QTable) Max(state string, def float64) (string, float64) {
	if _, ok := q.table[state]; !ok {
		return "", def
	}
	maxAction := ""
	maxVal := math.Inf(-1)
	for a, val := range q.table[state] {
		if val > maxVal {
			maxAction = a
			maxVal = val
		}
	}
	if maxAction == "" {
		return "", def
	}
	return maxAction, maxVal
}

// MaxAmong restricts the maximization to the given actions,
// initializing unseen entries with the default value
func (q *QTable) MaxAmong(state string, actions []string, def float64) (string, float64) {
	if _, ok := q.table[state]; !ok {
		q.table[state] = make(map[string]float64)
	}
	maxAction := ""
	maxVal := math.Inf(-1)
	for _, a := range actions {
		if _, ok := q.table[state][a]; !ok {
			q.table[state][a] = def
		}
		if val := q.table[state][a]; val > maxVal {
			maxAction = a
			maxVal = val
		}
	}
	return maxAction, maxVal
}

// Snapshot copies the table out for persistence
func (q *QTable) Snapshot() map[string]map[string]float64 {
	out := make(map[string]map[string]float64, len(q.table))
	for state, actions := range q.table {
		out[state] = make(map[string]float64, len(actions))
		for action, val := range actions {
			out[state][action] = val
		}
	}
	return out
}

// Record dumps the table as JSON to the given path
func (q *QTable) Record(path string) error {
	bs, err := json.Marshal(q.table)
	if err != nil {
		return err
	}
	return util.WriteToFile(path, string(bs))
}
