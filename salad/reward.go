package salad

// Reward shaping constants. Values carried over from the original
// experiments: checklist adherence dominates, constraint violations and
// redundant processing are penalized.
const (
	// taking the next action of the ingredient's checklist
	rewardValidStep = 10.0
	// any other action
	rewardInvalidStep = -5.0
	// washing something that is not a vegetable
	rewardWrongWash = -5.0
	// the processing action named by the recipe
	rewardCorrectPrep = 10.0
	// a processing action merely allowed for the type
	rewardAllowedPrep = 2.0
	// a second processing action on the same ingredient
	rewardDoubleProcess = -10.0
	// every action on an ingredient the eater is allergic to
	rewardAllergen = -10.0
	// per violation raised when an ingredient is combined
	rewardPerViolation = -2.0
)

// prepReward shapes the reward of a preparation action before it is applied
func (e *SaladEnvironment) prepReward(ing *ingredientPrep, action *PrepAction) float64 {
	var reward float64

	if ing.flowIdx < len(ing.flow) && action == ing.flow[ing.flowIdx] {
		reward += rewardValidStep
	} else {
		reward += rewardInvalidStep
	}

	if action == Wash && ing.item.Type != Vegetable {
		reward += rewardWrongWash
	}

	if action.Processing() {
		if action.Name == ing.item.PrepMethod {
			reward += rewardCorrectPrep
		} else if ing.item.Type.allowsProcessing(action) {
			reward += rewardAllowedPrep
		}
		if ing.processed >= 1 {
			reward += rewardDoubleProcess
		}
	}

	if ing.allergic {
		reward += rewardAllergen
	}
	return reward
}
