package salad

// IngredientType gates which preparation actions an ingredient goes through
type IngredientType string

const (
	Vegetable IngredientType = "Vegetable"
	Nuts      IngredientType = "Nuts"
	Dressing  IngredientType = "Dressing"
	Grain     IngredientType = "Grain"
	Dairy     IngredientType = "Dairy"
)

// AllowedProcessing is the set of processing actions valid for the type.
// Types without an entry are added whole.
func (t IngredientType) AllowedProcessing() []*PrepAction {
	switch t {
	case Vegetable:
		return []*PrepAction{Chop, Dice, Shred}
	case Nuts:
		return []*PrepAction{Crush, Dice, Grind}
	}
	return nil
}

func (t IngredientType) allowsProcessing(a *PrepAction) bool {
	for _, p := range t.AllowedProcessing() {
		if p == a {
			return true
		}
	}
	return false
}

// prepFlow is the ordered checklist of actions required to prepare an
// ingredient of the given type. prep may be nil for ingredients added whole.
//
//	Vegetable: Measure, Wash, <prep>, Combine
//	Nuts:      Measure, <prep>, Roast, Combine
//	others:    Measure, Combine
func prepFlow(t IngredientType, prep *PrepAction) []*PrepAction {
	switch t {
	case Vegetable:
		if prep != nil {
			return []*PrepAction{Measure, Wash, prep, Combine}
		}
		return []*PrepAction{Measure, Wash, Combine}
	case Nuts:
		if prep != nil {
			return []*PrepAction{Measure, prep, Roast, Combine}
		}
		return []*PrepAction{Measure, Roast, Combine}
	}
	return []*PrepAction{Measure, Combine}
}

// PantryItem is an available ingredient with its stock, calorie density
// and dietary restriction labels
type PantryItem struct {
	Quantity     int
	Calories     int
	Restrictions []string
}

// Pantry maps ingredient names to what is available
type Pantry map[string]PantryItem

// DefaultPantry holds the ingredient bank used throughout the experiments
func DefaultPantry() Pantry {
	return Pantry{
		"tomato":          {Quantity: 4, Calories: 20},
		"carrot":          {Quantity: 4, Calories: 25},
		"lettuce":         {Quantity: 2, Calories: 10},
		"spinach":         {Quantity: 3, Calories: 15},
		"cucumber":        {Quantity: 4, Calories: 12},
		"onion":           {Quantity: 4, Calories: 30},
		"almonds":         {Quantity: 100, Calories: 50, Restrictions: []string{"nut"}},
		"walnuts":         {Quantity: 50, Calories: 55, Restrictions: []string{"nut"}},
		"peanuts":         {Quantity: 100, Calories: 60, Restrictions: []string{"peanut", "nut"}},
		"sesame_dressing": {Quantity: 100, Calories: 60},
		"croutons":        {Quantity: 20, Calories: 35},
		"cheese":          {Quantity: 20, Calories: 80, Restrictions: []string{"dairy", "cheese"}},
	}
}
