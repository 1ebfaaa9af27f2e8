package policies

import (
	"testing"

	"github.com/HARPLab/human-ai-value-alignment/types"
)

func TestSoftMaxPrefersHigherValues(t *testing.T) {
	policy := NewSoftMaxPolicy(0.1, 0.95, 0.1)
	left := &testAction{"left"}
	right := &testAction{"right"}
	state := &testState{hash: "s1", actions: []types.Action{left, right}}

	// with a low temperature the distribution is close to greedy
	policy.QTable().Set("s1", "right", 5)
	policy.QTable().Set("s1", "left", 0)

	picks := 0
	for i := 0; i < 100; i++ {
		action, ok := policy.NextAction(i, state, state.actions)
		if !ok {
			t.Fatalf("expected an action")
		}
		if action == right {
			picks += 1
		}
	}
	if picks < 95 {
		t.Errorf("expected the high valued action nearly always, got %d/100", picks)
	}
}

func TestSoftMaxNonPositiveTemperature(t *testing.T) {
	left := &testAction{"left"}
	right := &testAction{"right"}
	state := &testState{hash: "s1", actions: []types.Action{left, right}}

	for _, temperature := range []float64{0, -1} {
		policy := NewSoftMaxPolicy(0.1, 0.95, temperature)
		policy.QTable().Set("s1", "right", 5)
		for i := 0; i < 20; i++ {
			if _, ok := policy.NextAction(i, state, state.actions); !ok {
				t.Fatalf("temperature %v: expected an action", temperature)
			}
		}
	}
}

func TestSoftMaxUpdate(t *testing.T) {
	policy := NewSoftMaxPolicy(0.5, 1, 1)
	act := &testAction{"a"}
	state := &testState{hash: "s1", actions: []types.Action{act}}
	terminal := &testState{hash: "end"}

	policy.Update(0, state, act, 10, terminal)
	if val := policy.QTable().Get("s1", "a", 0); val != 5 {
		t.Errorf("expected 5, got %v", val)
	}
}

func TestScriptedPolicyRules(t *testing.T) {
	left := &testAction{"left"}
	right := &testAction{"right"}

	policy := NewScriptedPolicy(types.NewSeededRandomPolicy(42))
	policy.AddRule(If(func(s types.State) bool {
		return s.Hash() == "s1"
	}).Then(func(actions []types.Action) (types.Action, bool) {
		return right, true
	}))

	matched := &testState{hash: "s1", actions: []types.Action{left, right}}
	if action, ok := policy.NextAction(0, matched, matched.actions); !ok || action != right {
		t.Errorf("expected the rule to fire, got %v", action)
	}

	// unmatched states defer to the fallback
	other := &testState{hash: "s2", actions: []types.Action{left}}
	if action, ok := policy.NextAction(0, other, other.actions); !ok || action != left {
		t.Errorf("expected the fallback to pick the only action, got %v", action)
	}
}
