package policies

import (
	"time"

	"github.com/HARPLab/human-ai-value-alignment/types"
	"golang.org/x/exp/rand"
)

// EpsilonGreedyPolicy is tabular Q-learning over the environment rewards.
// With probability epsilon a random action is taken, otherwise the action
// with the highest Q value among the available ones.
type EpsilonGreedyPolicy struct {
	qTable  *QTable
	alpha   float64
	gamma   float64
	epsilon float64
	rand    *rand.Rand
}

var _ types.Policy = &EpsilonGreedyPolicy{}
var _ types.Recorder = &EpsilonGreedyPolicy{}

func NewEpsilonGreedyPolicy(alpha, gamma, epsilon float64) *EpsilonGreedyPolicy {
	return &EpsilonGreedyPolicy{
		qTable:  NewQTable(),
		alpha:   alpha,
		gamma:   gamma,
		epsilon: epsilon,
		rand:    rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
}

// NewSeededEpsilonGreedyPolicy fixes the source for reproducible runs
func NewSeededEpsilonGreedyPolicy(alpha, gamma, epsilon float64, seed uint64) *EpsilonGreedyPolicy {
	p := NewEpsilonGreedyPolicy(alpha, gamma, epsilon)
	p.rand = rand.New(rand.NewSource(seed))
	return p
}

func (e *EpsilonGreedyPolicy) QTable() *QTable {
	return e.qTable
}

func (e *EpsilonGreedyPolicy) Reset() {
	e.qTable = NewQTable()
}

func (e *EpsilonGreedyPolicy) Record(path string) error {
	return e.qTable.Record(path)
}

func (e *EpsilonGreedyPolicy) NextAction(step int, state types.State, actions []types.Action) (types.Action, bool) {
	if len(actions) == 0 {
		return nil, false
	}
	if e.rand.Float64() < e.epsilon {
		return actions[e.rand.Intn(len(actions))], true
	}

	actionsMap := make(map[string]types.Action)
	availableActions := make([]string, len(actions))
	for i, a := range actions {
		aHash := a.Hash()
		actionsMap[aHash] = a
		availableActions[i] = aHash
	}
	maxAction, _ := e.qTable.MaxAmong(state.Hash(), availableActions, 0)
	if maxAction == "" {
		return nil, false
	}
	return actionsMap[maxAction], true
}

func (e *EpsilonGreedyPolicy) Update(step int, state types.State, action types.Action, reward float64, nextState types.State) {
	stateHash := state.Hash()
	actionHash := action.Hash()
	nextStateHash := nextState.Hash()

	curVal := e.qTable.Get(stateHash, actionHash, 0)
	nextStateVal := 0.0
	// value of a terminal state stays zero
	if len(nextState.Actions()) != 0 {
		_, nextStateVal = e.qTable.Max(nextStateHash, 0)
	}
	newVal := (1-e.alpha)*curVal + e.alpha*(reward+e.gamma*nextStateVal)
	e.qTable.Set(stateHash, actionHash, newVal)
}

func (e *EpsilonGreedyPolicy) UpdateIteration(_ int, _ *types.Trace) {
}

// GreedyPolicy exploits a fixed QTable without learning.
// Used to evaluate trained tables; unknown states fall back to a random pick.
type GreedyPolicy struct {
	qTable *QTable
	rand   *rand.Rand
}

var _ types.Policy = &GreedyPolicy{}

func NewGreedyPolicy(qTable *QTable) *GreedyPolicy {
	return &GreedyPolicy{
		qTable: qTable,
		rand:   rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
}

func (g *GreedyPolicy) NextAction(step int, state types.State, actions []types.Action) (types.Action, bool) {
	if len(actions) == 0 {
		return nil, false
	}
	stateHash := state.Hash()
	if !g.qTable.HasState(stateHash) {
		return actions[g.rand.Intn(len(actions))], true
	}
	actionsMap := make(map[string]types.Action)
	availableActions := make([]string, len(actions))
	for i, a := range actions {
		aHash := a.Hash()
		actionsMap[aHash] = a
		availableActions[i] = aHash
	}
	maxAction, _ := g.qTable.MaxAmong(stateHash, availableActions, 0)
	if maxAction == "" {
		return nil, false
	}
	return actionsMap[maxAction], true
}

func (g *GreedyPolicy) Update(_ int, _ types.State, _ types.Action, _ float64, _ types.State) {}

func (g *GreedyPolicy) UpdateIteration(_ int, _ *types.Trace) {}

func (g *GreedyPolicy) Reset() {}
