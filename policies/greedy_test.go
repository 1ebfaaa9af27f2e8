package policies

import (
	"testing"

	"github.com/HARPLab/human-ai-value-alignment/types"
)

type testState struct {
	hash    string
	actions []types.Action
}

func (s *testState) Hash() string {
	return s.hash
}

func (s *testState) Actions() []types.Action {
	return s.actions
}

type testAction struct {
	hash string
}

func (a *testAction) Hash() string {
	return a.hash
}

func TestEpsilonGreedyExploits(t *testing.T) {
	policy := NewSeededEpsilonGreedyPolicy(0.1, 0.95, 0, 42)
	left := &testAction{"left"}
	right := &testAction{"right"}
	state := &testState{hash: "s1", actions: []types.Action{left, right}}

	policy.QTable().Set("s1", "right", 1)
	for i := 0; i < 10; i++ {
		action, ok := policy.NextAction(i, state, state.actions)
		if !ok {
			t.Fatalf("expected an action")
		}
		if action != right {
			t.Errorf("expected the highest valued action, got %s", action.Hash())
		}
	}
}

func TestEpsilonGreedyUpdate(t *testing.T) {
	policy := NewSeededEpsilonGreedyPolicy(0.5, 1, 0, 42)
	act := &testAction{"a"}
	terminal := &testState{hash: "end"}
	state := &testState{hash: "s1", actions: []types.Action{act}}

	// terminal next state contributes no future value
	policy.Update(0, state, act, 10, terminal)
	if val := policy.QTable().Get("s1", "a", 0); val != 5 {
		t.Errorf("expected 5, got %v", val)
	}

	next := &testState{hash: "s2", actions: []types.Action{act}}
	policy.QTable().Set("s2", "a", 4)
	policy.Update(1, state, act, 10, next)
	// (1-0.5)*5 + 0.5*(10 + 1*4)
	if val := policy.QTable().Get("s1", "a", 0); val != 9.5 {
		t.Errorf("expected 9.5, got %v", val)
	}
}

func TestEpsilonGreedyReset(t *testing.T) {
	policy := NewSeededEpsilonGreedyPolicy(0.1, 0.95, 0.1, 42)
	policy.QTable().Set("s1", "a", 3)
	policy.Reset()
	if policy.QTable().HasState("s1") {
		t.Errorf("expected the table to be wiped")
	}
}

func TestGreedyFollowsTable(t *testing.T) {
	q := NewQTable()
	q.Set("s1", "right", 2)
	q.Set("s1", "left", 1)
	policy := NewGreedyPolicy(q)

	left := &testAction{"left"}
	right := &testAction{"right"}
	state := &testState{hash: "s1", actions: []types.Action{left, right}}

	action, ok := policy.NextAction(0, state, state.actions)
	if !ok || action != right {
		t.Errorf("expected the highest valued action, got %v", action)
	}

	// unknown states fall back to a random pick
	unknown := &testState{hash: "s2", actions: []types.Action{left, right}}
	if _, ok := policy.NextAction(0, unknown, unknown.actions); !ok {
		t.Errorf("expected a fallback action for an unknown state")
	}

	// evaluation must not grow the table
	policy.Update(0, state, right, 1, unknown)
	if q.HasState("s2") {
		t.Errorf("expected the table to stay fixed during evaluation")
	}
}
