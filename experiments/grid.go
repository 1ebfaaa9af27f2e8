package experiments

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/HARPLab/human-ai-value-alignment/grid"
	"github.com/HARPLab/human-ai-value-alignment/policies"
	"github.com/HARPLab/human-ai-value-alignment/types"
)

// GridCompare pits the learning policies against a random baseline on
// the small gridworld, a sanity check for the learning machinery
func GridCompare(episodes, horizon, runs int, height, width int, savePath string, ctx context.Context) {
	c := types.NewComparison(&types.ComparisonConfig{
		Runs:       runs,
		Episodes:   episodes,
		Horizon:    horizon,
		RecordPath: savePath,
	})
	c.AddAnalysis("Coverage", types.NewCoverageAnalyzer(), types.CoveragePlotter(savePath))
	c.AddAnalysis("Reward", types.NewRewardAnalyzer(), types.RewardPlotter(savePath))

	experiments := []struct {
		name   string
		policy types.Policy
	}{
		{"Random", types.NewRandomPolicy()},
		{"EpsilonGreedy", policies.NewEpsilonGreedyPolicy(0.1, 0.95, 0.1)},
		{"SoftMax", policies.NewSoftMaxPolicy(0.1, 0.95, 1)},
	}
	for _, e := range experiments {
		env := grid.NewGridEnvironment(height, width, grid.Position{I: height - 1, J: width - 1})
		experiment := types.NewExperiment(e.name, e.policy, env)
		experiment.AddProperty(grid.GoalReached())
		c.AddExperiment(experiment)
	}

	c.Run(ctx)
}

func GridCommand() *cobra.Command {
	var height int
	var width int

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Compare the policies on a simple gridworld",
		Run: func(cmd *cobra.Command, args []string) {
			GridCompare(episodes, horizon, runs, height, width, saveDir, context.Background())
		},
	}
	cmd.PersistentFlags().IntVar(&height, "height", 10, "Height of the grid")
	cmd.PersistentFlags().IntVar(&width, "width", 10, "Width of the grid")
	return cmd
}
