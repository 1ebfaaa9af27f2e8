package policies

import (
	"math"
	"time"

	"github.com/HARPLab/human-ai-value-alignment/types"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// SoftMaxPolicy samples actions from the Boltzmann distribution over the
// Q values, learning with the same Q-learning rule as the greedy policy
type SoftMaxPolicy struct {
	qTable      *QTable
	alpha       float64
	gamma       float64
	temperature float64
	rand        rand.Source
}

var _ types.Policy = &SoftMaxPolicy{}
var _ types.Recorder = &SoftMaxPolicy{}

func NewSoftMaxPolicy(alpha, gamma, temperature float64) *SoftMaxPolicy {
	// the Boltzmann weights need a positive temperature
	if temperature <= 0 {
		temperature = 1
	}
	return &SoftMaxPolicy{
		qTable:      NewQTable(),
		alpha:       alpha,
		gamma:       gamma,
		temperature: temperature,
		rand:        rand.NewSource(uint64(time.Now().UnixNano())),
	}
}

func (s *SoftMaxPolicy) QTable() *QTable {
	return s.qTable
}

func (s *SoftMaxPolicy) Reset() {
	s.qTable = NewQTable()
}

func (s *SoftMaxPolicy) Record(path string) error {
	return s.qTable.Record(path)
}

func (s *SoftMaxPolicy) NextAction(step int, state types.State, actions []types.Action) (types.Action, bool) {
	if len(actions) == 0 {
		return nil, false
	}
	stateHash := state.Hash()

	vals := make([]float64, len(actions))
	maxVal := math.Inf(-1)
	for i, action := range actions {
		vals[i] = s.qTable.Get(stateHash, action.Hash(), 0) / s.temperature
		if vals[i] > maxVal {
			maxVal = vals[i]
		}
	}

	// normalize before exponentiation to keep the weights finite
	sum := float64(0)
	weights := make([]float64, len(actions))
	for i, val := range vals {
		exp := math.Exp(val - maxVal)
		weights[i] = exp
		sum += exp
	}
	for i := range weights {
		weights[i] = weights[i] / sum
	}
	i, ok := sampleuv.NewWeighted(weights, s.rand).Take()
	if !ok {
		return nil, false
	}
	return actions[i], true
}

func (s *SoftMaxPolicy) Update(step int, state types.State, action types.Action, reward float64, nextState types.State) {
	stateHash := state.Hash()
	actionKey := action.Hash()

	curVal := s.qTable.Get(stateHash, actionKey, 0)
	nextStateVal := 0.0
	if len(nextState.Actions()) != 0 {
		_, nextStateVal = s.qTable.Max(nextState.Hash(), 0)
	}
	newVal := (1-s.alpha)*curVal + s.alpha*(reward+s.gamma*nextStateVal)
	s.qTable.Set(stateHash, actionKey, newVal)
}

func (s *SoftMaxPolicy) UpdateIteration(_ int, _ *types.Trace) {
}
