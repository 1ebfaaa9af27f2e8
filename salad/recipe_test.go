package salad

import (
	"os"
	"path"
	"testing"
)

func TestLoadRecipe(t *testing.T) {
	contents := `items:
  - name: tomato
    type: Vegetable
    quantity: 2
    prep_method: Dice
  - name: almonds
    type: Nuts
    quantity: 10
    prep_method: Grind
  - name: sesame_dressing
    type: Dressing
    quantity: 1
constraints:
  calories: 300
  allergies:
    - nut
`
	recipePath := path.Join(t.TempDir(), "recipe.yaml")
	if err := os.WriteFile(recipePath, []byte(contents), 0644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	recipe, err := LoadRecipe(recipePath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recipe.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(recipe.Items))
	}
	if recipe.Items[0].Name != "tomato" || recipe.Items[0].PrepMethod != "Dice" {
		t.Errorf("unexpected first item: %+v", recipe.Items[0])
	}
	if recipe.Items[2].PrepMethod != "" {
		t.Errorf("expected the dressing to be added whole")
	}
	if recipe.Constraints.Calories != 300 {
		t.Errorf("expected a 300 calorie limit, got %d", recipe.Constraints.Calories)
	}
	if len(recipe.Constraints.Allergies) != 1 || recipe.Constraints.Allergies[0] != "nut" {
		t.Errorf("unexpected allergies: %v", recipe.Constraints.Allergies)
	}
}

func TestLoadRecipeMissingFile(t *testing.T) {
	if _, err := LoadRecipe(path.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Errorf("expected an error for a missing file")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		recipe *Recipe
	}{
		{"empty", &Recipe{}},
		{"unnamed item", &Recipe{Items: []RecipeItem{{Type: Vegetable, Quantity: 1}}}},
		{"duplicate item", &Recipe{Items: []RecipeItem{
			{Name: "tomato", Type: Vegetable, Quantity: 1},
			{Name: "tomato", Type: Vegetable, Quantity: 2},
		}}},
		{"zero quantity", &Recipe{Items: []RecipeItem{{Name: "tomato", Type: Vegetable}}}},
		{"unknown prep method", &Recipe{Items: []RecipeItem{
			{Name: "tomato", Type: Vegetable, Quantity: 1, PrepMethod: "Julienne"},
		}}},
		{"non-processing prep method", &Recipe{Items: []RecipeItem{
			{Name: "tomato", Type: Vegetable, Quantity: 1, PrepMethod: "Wash"},
		}}},
		{"prep method wrong for type", &Recipe{Items: []RecipeItem{
			{Name: "almonds", Type: Nuts, Quantity: 1, PrepMethod: "Shred"},
		}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if err := c.recipe.Validate(); err == nil {
				t.Errorf("expected a validation error")
			}
		})
	}

	if err := DefaultRecipe().Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	for i, recipe := range EvaluationRecipes() {
		if err := recipe.Validate(); err != nil {
			t.Errorf("evaluation recipe %d: unexpected error: %v", i+1, err)
		}
	}
}
