package salad

import (
	"fmt"

	"github.com/HARPLab/human-ai-value-alignment/types"
)

// ingredientPrep tracks the preparation of one recipe item
type ingredientPrep struct {
	item   RecipeItem
	pantry PantryItem
	// ordered checklist of required actions
	flow []*PrepAction
	// position in the checklist
	flowIdx int
	// bit-vector of actions applied
	taken uint16
	// number of processing actions applied
	processed int
	// the pantry restrictions intersect the constraint allergies
	allergic bool
	// violated restriction labels
	allergens []string
}

// SaladEnvironment is the constrained preparation process: each recipe
// item goes through its type's checklist, then the salad is mixed and
// served. Rewards shape the policy towards the checklist order and away
// from constraint violations.
type SaladEnvironment struct {
	recipe *Recipe
	pantry Pantry

	queue      []*ingredientPrep
	cur        int
	stage      Stage
	calories   int
	violations *Violations
}

var _ types.Environment = &SaladEnvironment{}

// NewSaladEnvironment validates the recipe against the preparation rules
func NewSaladEnvironment(recipe *Recipe, pantry Pantry) (*SaladEnvironment, error) {
	if err := recipe.Validate(); err != nil {
		return nil, fmt.Errorf("invalid recipe: %w", err)
	}
	env := &SaladEnvironment{
		recipe: recipe,
		pantry: pantry,
	}
	env.Reset()
	return env, nil
}

// Reset rebuilds the preparation queue from the recipe and the pantry.
// Items that are missing or short in the pantry are recorded as
// availability violations and skipped.
func (e *SaladEnvironment) Reset() types.State {
	e.queue = make([]*ingredientPrep, 0, len(e.recipe.Items))
	e.cur = 0
	e.calories = 0
	e.violations = NewViolations()

	for _, item := range e.recipe.Items {
		stock, ok := e.pantry[item.Name]
		if !ok {
			e.violations.Availability[item.Name] = item.Quantity
			continue
		}
		if item.Quantity > stock.Quantity {
			e.violations.Availability[item.Name] = item.Quantity - stock.Quantity
			continue
		}
		prep := &ingredientPrep{
			item:   item,
			pantry: stock,
			flow:   prepFlow(item.Type, item.prepAction()),
		}
		for _, restriction := range stock.Restrictions {
			for _, allergy := range e.recipe.Constraints.Allergies {
				if restriction == allergy {
					prep.allergic = true
					prep.allergens = append(prep.allergens, restriction)
				}
			}
		}
		e.queue = append(e.queue, prep)
	}

	e.stage = StagePrep
	if len(e.queue) == 0 {
		e.stage = StageMix
	}
	return e.state()
}

// Step applies the action, returning the next state and the shaped reward
func (e *SaladEnvironment) Step(a types.Action) (types.State, float64) {
	action, ok := a.(*PrepAction)
	if !ok || e.stage == StageDone {
		return e.state(), 0
	}

	var reward float64
	switch e.stage {
	case StagePrep:
		reward = e.stepPrep(action)
	case StageMix:
		if action == Mix {
			reward = rewardValidStep
			e.stage = StageServe
		} else {
			reward = rewardInvalidStep
		}
	case StageServe:
		if action == Serve {
			reward = rewardValidStep
			e.stage = StageDone
		} else {
			reward = rewardInvalidStep
		}
	}
	return e.state(), reward
}

// stepPrep applies a preparation action to the current ingredient
func (e *SaladEnvironment) stepPrep(action *PrepAction) float64 {
	ing := e.queue[e.cur]
	reward := e.prepReward(ing, action)

	if ing.flowIdx < len(ing.flow) && action == ing.flow[ing.flowIdx] {
		ing.flowIdx += 1
	}
	ing.taken |= action.bit
	if action.Processing() {
		ing.processed += 1
	}

	// Combine always finalizes the ingredient, finished or not
	if action == Combine {
		reward += e.completeIngredient(ing)
	}
	return reward
}

// completeIngredient adds the calories, runs the constraint check and
// advances the queue. New violations give a -2 penalty each.
func (e *SaladEnvironment) completeIngredient(ing *ingredientPrep) float64 {
	e.calories += ing.item.Quantity * ing.pantry.Calories

	newViolations := 0
	if over := e.calories - e.recipe.Constraints.Calories; over > 0 && e.violations.Calories == 0 {
		e.violations.Calories = over
		newViolations += 1
	} else if over > 0 {
		e.violations.Calories = over
	}
	for _, label := range ing.allergens {
		if e.violations.addAllergy(label) {
			newViolations += 1
		}
	}

	e.cur += 1
	if e.cur >= len(e.queue) {
		e.stage = StageMix
	}
	return rewardPerViolation * float64(newViolations)
}

// state snapshots the current observation
func (e *SaladEnvironment) state() *PrepState {
	s := &PrepState{
		Index:      e.cur,
		Stage:      e.stage,
		Violations: e.violations.Count(),
	}
	if e.stage == StagePrep {
		ing := e.queue[e.cur]
		s.Ingredient = ing.item.Name
		s.Type = ing.item.Type
		s.PrepMethod = ing.item.PrepMethod
		s.Taken = ing.taken
	}
	return s
}

// Violations accumulated in the current episode
func (e *SaladEnvironment) Violations() *Violations {
	return e.violations.Clone()
}

// Calories of the combined ingredients so far
func (e *SaladEnvironment) Calories() int {
	return e.calories
}
