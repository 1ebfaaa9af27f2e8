package salad

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RecipeItem is one requested ingredient.
// PrepMethod is optional; when empty the ingredient is added whole.
type RecipeItem struct {
	Name       string         `yaml:"name"`
	Type       IngredientType `yaml:"type"`
	Quantity   int            `yaml:"quantity"`
	PrepMethod string         `yaml:"prep_method,omitempty"`
}

// Constraints that the prepared salad must satisfy
type Constraints struct {
	Calories  int      `yaml:"calories"`
	Allergies []string `yaml:"allergies"`
}

// Recipe is an ordered list of items with the constraints to respect.
// Items are a slice, not a map: preparation order is part of the recipe.
type Recipe struct {
	Items       []RecipeItem `yaml:"items"`
	Constraints Constraints  `yaml:"constraints"`
}

// LoadRecipe reads a recipe from a YAML file and validates it
func LoadRecipe(path string) (*Recipe, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read recipe: %w", err)
	}
	recipe := &Recipe{}
	if err := yaml.Unmarshal(bs, recipe); err != nil {
		return nil, fmt.Errorf("parse recipe: %w", err)
	}
	if err := recipe.Validate(); err != nil {
		return nil, err
	}
	return recipe, nil
}

// Validate checks quantities, duplicate names and that each prep method
// is a processing action allowed for the item's type
func (r *Recipe) Validate() error {
	if len(r.Items) == 0 {
		return fmt.Errorf("recipe has no items")
	}
	seen := make(map[string]bool)
	for _, item := range r.Items {
		if item.Name == "" {
			return fmt.Errorf("recipe item with empty name")
		}
		if seen[item.Name] {
			return fmt.Errorf("duplicate recipe item %q", item.Name)
		}
		seen[item.Name] = true
		if item.Quantity <= 0 {
			return fmt.Errorf("item %q: quantity must be positive", item.Name)
		}
		if item.PrepMethod != "" {
			action, ok := ActionByName(item.PrepMethod)
			if !ok {
				return fmt.Errorf("item %q: unknown prep method %q", item.Name, item.PrepMethod)
			}
			if !action.Processing() {
				return fmt.Errorf("item %q: %q is not a processing action", item.Name, item.PrepMethod)
			}
			if !item.Type.allowsProcessing(action) {
				return fmt.Errorf("item %q: prep method %q not allowed for %s", item.Name, item.PrepMethod, item.Type)
			}
		}
	}
	return nil
}

// prepAction resolves the item's prep method, nil when added whole
func (i RecipeItem) prepAction() *PrepAction {
	if i.PrepMethod == "" {
		return nil
	}
	action, _ := ActionByName(i.PrepMethod)
	return action
}

// DefaultRecipe is the training recipe: a diced tomato, ground almonds
// and a measured dressing under a nut allergy
func DefaultRecipe() *Recipe {
	return &Recipe{
		Items: []RecipeItem{
			{Name: "tomato", Type: Vegetable, Quantity: 2, PrepMethod: "Dice"},
			{Name: "almonds", Type: Nuts, Quantity: 10, PrepMethod: "Grind"},
			{Name: "sesame_dressing", Type: Dressing, Quantity: 1},
		},
		Constraints: Constraints{Calories: 300, Allergies: []string{"nut"}},
	}
}

// EvaluationRecipes are the held-out recipes used to evaluate a trained table
func EvaluationRecipes() []*Recipe {
	return []*Recipe{
		{
			Items: []RecipeItem{
				{Name: "tomato", Type: Vegetable, Quantity: 2, PrepMethod: "Dice"},
				{Name: "almonds", Type: Nuts, Quantity: 10, PrepMethod: "Grind"},
				{Name: "sesame_dressing", Type: Dressing, Quantity: 1},
				{Name: "peanuts", Type: Nuts, Quantity: 10, PrepMethod: "Grind"},
			},
			Constraints: Constraints{Calories: 300, Allergies: []string{"peanut"}},
		},
		{
			Items: []RecipeItem{
				{Name: "carrot", Type: Vegetable, Quantity: 2, PrepMethod: "Shred"},
				{Name: "cucumber", Type: Vegetable, Quantity: 1, PrepMethod: "Dice"},
				{Name: "onion", Type: Vegetable, Quantity: 1, PrepMethod: "Chop"},
				{Name: "croutons", Type: Grain, Quantity: 5},
			},
			Constraints: Constraints{Calories: 250},
		},
		{
			Items: []RecipeItem{
				{Name: "spinach", Type: Vegetable, Quantity: 2},
				{Name: "cheese", Type: Dairy, Quantity: 10},
				{Name: "tomato", Type: Vegetable, Quantity: 1, PrepMethod: "Dice"},
			},
			Constraints: Constraints{Calories: 200, Allergies: []string{"cheese"}},
		},
	}
}
