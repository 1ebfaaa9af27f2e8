package experiments

import (
	"fmt"
	"path"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/HARPLab/human-ai-value-alignment/policies"
	"github.com/HARPLab/human-ai-value-alignment/salad"
	"github.com/HARPLab/human-ai-value-alignment/store"
	"github.com/HARPLab/human-ai-value-alignment/types"
)

// recipeResult aggregates the trials of one evaluation recipe
type recipeResult struct {
	name       string
	rewards    []float64
	violations map[string]int
}

// Evaluate loads a trained table and runs the greedy policy over the
// held-out recipes, tallying rewards and constraint violations
func Evaluate(horizon int, dbPath, name string, trials int, saveDir string) error {
	s, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	qTable, rec, err := s.LoadPolicy(name)
	if err != nil {
		return err
	}
	fmt.Printf("Loaded policy %q (%s, trained for %d episodes)\n", rec.Name, rec.Algorithm, rec.Episodes)

	results := make([]recipeResult, 0)
	for i, recipe := range salad.EvaluationRecipes() {
		env, err := salad.NewSaladEnvironment(recipe, salad.DefaultPantry())
		if err != nil {
			return fmt.Errorf("recipe %d: %w", i+1, err)
		}
		result := recipeResult{
			name:       fmt.Sprintf("Recipe %d", i+1),
			rewards:    make([]float64, 0, trials),
			violations: make(map[string]int),
		}

		policy := policies.NewGreedyPolicy(qTable)
		agent := types.NewAgent(&types.AgentConfig{
			Episodes:    trials,
			Horizon:     horizon,
			Policy:      policy,
			Environment: env,
		})
		for t := 0; t < trials; t++ {
			trace := agent.RunEpisode(t)
			result.rewards = append(result.rewards, trace.TotalReward())
			countViolations(env.Violations(), result.violations)
		}
		results = append(results, result)
		printResult(recipe, result)
	}

	if saveDir != "" {
		if err := plotRewards(results, path.Join(saveDir, "eval_rewards.png")); err != nil {
			return err
		}
		if err := plotViolations(results, path.Join(saveDir, "eval_violations.png")); err != nil {
			return err
		}
	}
	return nil
}

// countViolations tallies one trial's violations into the running totals
func countViolations(v *salad.Violations, totals map[string]int) {
	if v.Calories > 0 {
		totals["calories"] += 1
	}
	totals["allergies"] += len(v.Allergies)
	totals["availability"] += len(v.Availability)
}

func printResult(recipe *salad.Recipe, result recipeResult) {
	mean := stat.Mean(result.rewards, nil)
	stddev := stat.StdDev(result.rewards, nil)

	fmt.Println(aurora.Bold(fmt.Sprintf("\n%s (calorie limit %d, allergies: %s)",
		result.name, recipe.Constraints.Calories, strings.Join(recipe.Constraints.Allergies, ", "))))
	fmt.Printf("Avg reward: %s (stddev %.2f)\n", aurora.Green(fmt.Sprintf("%.2f", mean)), stddev)
	total := 0
	for _, count := range result.violations {
		total += count
	}
	if total == 0 {
		fmt.Println(aurora.Green("No violations"))
		return
	}
	for _, kind := range []string{"calories", "allergies", "availability"} {
		if count := result.violations[kind]; count > 0 {
			fmt.Printf("%s: %s\n", kind, aurora.Red(fmt.Sprintf("%d", count)))
		}
	}
}

// plotRewards draws the average trial reward of each recipe
func plotRewards(results []recipeResult, savePath string) error {
	p := plot.New()
	p.Title.Text = "Policy performance on held-out recipes"
	p.Y.Label.Text = "Average total reward"

	means := make(plotter.Values, len(results))
	labels := make([]string, len(results))
	for i, r := range results {
		means[i] = stat.Mean(r.rewards, nil)
		labels[i] = r.name
	}
	bars, err := plotter.NewBarChart(means, vg.Points(30))
	if err != nil {
		return err
	}
	bars.Color = plotutil.Color(0)
	p.Add(bars)
	p.NominalX(labels...)
	return p.Save(8*vg.Inch, 6*vg.Inch, savePath)
}

// plotViolations draws the violation counts per recipe, one bar group per kind
func plotViolations(results []recipeResult, savePath string) error {
	p := plot.New()
	p.Title.Text = "Constraint violations on held-out recipes"
	p.Y.Label.Text = "Violation count"

	kinds := []string{"calories", "allergies", "availability"}
	width := vg.Points(15)
	labels := make([]string, len(results))
	for i, r := range results {
		labels[i] = r.name
	}
	for k, kind := range kinds {
		values := make(plotter.Values, len(results))
		for i, r := range results {
			values[i] = float64(r.violations[kind])
		}
		bars, err := plotter.NewBarChart(values, width)
		if err != nil {
			return err
		}
		bars.Color = plotutil.Color(k)
		bars.Offset = width * vg.Length(k-1)
		p.Add(bars)
		p.Legend.Add(kind, bars)
	}
	p.NominalX(labels...)
	return p.Save(8*vg.Inch, 6*vg.Inch, savePath)
}

func EvalCommand() *cobra.Command {
	var dbPath string
	var name string
	var trials int

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate a trained policy on the held-out recipes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return Evaluate(horizon, dbPath, name, trials, saveDir)
		},
	}
	cmd.PersistentFlags().StringVar(&dbPath, "db", "policies.db", "Path of the policy database")
	cmd.PersistentFlags().StringVar(&name, "name", "salad", "Name of the trained policy")
	cmd.PersistentFlags().IntVar(&trials, "trials", 10, "Number of evaluation trials per recipe")
	return cmd
}
