package experiments

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/HARPLab/human-ai-value-alignment/policies"
	"github.com/HARPLab/human-ai-value-alignment/salad"
	"github.com/HARPLab/human-ai-value-alignment/types"
)

// SaladCompare pits the learners against the random and scripted baselines
// on the training recipe
func SaladCompare(episodes, horizon int, saveDir string, runs int, recipePath string, ctx context.Context) error {
	recipe := salad.DefaultRecipe()
	if recipePath != "" {
		loaded, err := salad.LoadRecipe(recipePath)
		if err != nil {
			return err
		}
		recipe = loaded
	}

	c := types.NewComparison(&types.ComparisonConfig{
		Runs:       runs,
		Episodes:   episodes,
		Horizon:    horizon,
		RecordPath: saveDir,
	})
	c.AddAnalysis("Coverage", types.NewCoverageAnalyzer(), types.CoveragePlotter(saveDir))
	c.AddAnalysis("Reward", types.NewRewardAnalyzer(), types.RewardPlotter(saveDir))
	c.AddAnalysis("RewardHTML", types.NewRewardAnalyzer(), types.HTMLRewardComparator(saveDir))

	experiments := []struct {
		name   string
		policy types.Policy
	}{
		{"Random", types.NewRandomPolicy()},
		{"EpsilonGreedy", policies.NewEpsilonGreedyPolicy(0.1, 0.95, 0.1)},
		{"SoftMax", policies.NewSoftMaxPolicy(0.1, 0.95, 1)},
		{"Cookbook", salad.CookbookPolicy(types.NewRandomPolicy())},
	}
	for _, e := range experiments {
		env, err := salad.NewSaladEnvironment(recipe, salad.DefaultPantry())
		if err != nil {
			return fmt.Errorf("experiment %s: %w", e.name, err)
		}
		experiment := types.NewExperiment(e.name, e.policy, env)
		experiment.AddProperty(salad.Served())
		experiment.AddProperty(salad.ConstraintFree())
		c.AddExperiment(experiment)
	}

	c.Run(ctx)
	return nil
}

func SaladCompareCommand() *cobra.Command {
	var recipePath string

	cmd := &cobra.Command{
		Use:   "salad",
		Short: "Compare policies on the salad preparation environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt)

			doneCh := make(chan struct{})

			ctx, cancel := context.WithCancel(context.Background())
			go func() {
				select {
				case <-sigCh:
				case <-doneCh:
				}
				cancel()
			}()
			defer close(doneCh)

			return SaladCompare(episodes, horizon, saveDir, runs, recipePath, ctx)
		},
	}
	cmd.PersistentFlags().StringVar(&recipePath, "recipe", "", "Recipe YAML file (defaults to the built-in recipe)")
	return cmd
}
