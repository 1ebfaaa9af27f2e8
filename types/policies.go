package types

import (
	"math/rand"
	"time"
)

// Policy chooses the next action and learns from the observed transitions
type Policy interface {
	// NextAction picks an action among the available ones
	NextAction(int, State, []Action) (Action, bool)
	// Update with the observed transition (step, state, action, reward, nextState)
	Update(int, State, Action, float64, State)
	// UpdateIteration called with the full trace at the end of each episode
	UpdateIteration(int, *Trace)
	// Reset wipes everything the policy learned
	Reset()
}

// Recorder is implemented by policies that can persist what they learned
type Recorder interface {
	Record(path string) error
}

type RandomPolicy struct {
	rand *rand.Rand
}

var _ Policy = &RandomPolicy{}

func NewRandomPolicy() *RandomPolicy {
	return &RandomPolicy{
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewSeededRandomPolicy fixes the source for reproducible runs
func NewSeededRandomPolicy(seed int64) *RandomPolicy {
	return &RandomPolicy{
		rand: rand.New(rand.NewSource(seed)),
	}
}

func (r *RandomPolicy) Reset() {
}

func (r *RandomPolicy) UpdateIteration(_ int, _ *Trace) {
}

func (r *RandomPolicy) NextAction(step int, state State, actions []Action) (Action, bool) {
	if len(actions) == 0 {
		return nil, false
	}
	i := r.rand.Intn(len(actions))
	return actions[i], true
}

func (r *RandomPolicy) Update(_ int, _ State, _ Action, _ float64, _ State) {}
