package salad

import (
	"github.com/HARPLab/human-ai-value-alignment/policies"
	"github.com/HARPLab/human-ai-value-alignment/types"
)

// CookbookPolicy follows the recipe by hand: the next unapplied action of
// the current ingredient's checklist, then Mix, then Serve. Used as a
// learned-policy baseline. Unmatched states fall through to the fallback.
func CookbookPolicy(fallback types.Policy) *policies.ScriptedPolicy {
	policy := policies.NewScriptedPolicy(fallback)
	policy.AddRule(func(s types.State, actions []types.Action) (types.Action, bool) {
		state, ok := s.(*PrepState)
		if !ok {
			return nil, false
		}
		switch state.Stage {
		case StagePrep:
			if next, ok := state.NextFlowAction(); ok {
				return next, true
			}
		case StageMix:
			return Mix, true
		case StageServe:
			return Serve, true
		}
		return nil, false
	})
	return policy
}
