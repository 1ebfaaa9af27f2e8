package policies

import "github.com/HARPLab/human-ai-value-alignment/types"

// StateAction maps a state and the available actions to a choice.
// Returning false defers to the next rule or the fallback policy.
type StateAction func(types.State, []types.Action) (types.Action, bool)

type IfThenStateAction struct {
	If func(types.State) bool
	T  func([]types.Action) (types.Action, bool)
}

func If(cond func(types.State) bool) *IfThenStateAction {
	return &IfThenStateAction{
		If: cond,
	}
}

func (i *IfThenStateAction) Then(action func([]types.Action) (types.Action, bool)) StateAction {
	i.T = action
	return func(s types.State, actions []types.Action) (types.Action, bool) {
		if i.If(s) {
			return i.T(actions)
		}
		return nil, false
	}
}

// ScriptedPolicy consults an ordered list of rules before deferring to the
// embedded fallback policy
type ScriptedPolicy struct {
	types.Policy
	rules []StateAction
}

var _ types.Policy = &ScriptedPolicy{}

func NewScriptedPolicy(fallback types.Policy) *ScriptedPolicy {
	return &ScriptedPolicy{
		Policy: fallback,
		rules:  make([]StateAction, 0),
	}
}

func (s *ScriptedPolicy) AddRule(sa StateAction) {
	s.rules = append(s.rules, sa)
}

func (s *ScriptedPolicy) NextAction(step int, state types.State, actions []types.Action) (types.Action, bool) {
	for _, rule := range s.rules {
		if a, ok := rule(state, actions); ok {
			return a, ok
		}
	}
	return s.Policy.NextAction(step, state, actions)
}
