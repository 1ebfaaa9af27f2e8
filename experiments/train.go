package experiments

import (
	"fmt"

	"github.com/logrusorgru/aurora"
	"github.com/spf13/cobra"

	"github.com/HARPLab/human-ai-value-alignment/policies"
	"github.com/HARPLab/human-ai-value-alignment/salad"
	"github.com/HARPLab/human-ai-value-alignment/store"
	"github.com/HARPLab/human-ai-value-alignment/types"
)

// Train runs Q-learning on the recipe and persists the resulting table
func Train(episodes, horizon int, recipePath, dbPath, name string, alpha, gamma, epsilon float64) error {
	recipe := salad.DefaultRecipe()
	if recipePath != "" {
		loaded, err := salad.LoadRecipe(recipePath)
		if err != nil {
			return err
		}
		recipe = loaded
	}
	env, err := salad.NewSaladEnvironment(recipe, salad.DefaultPantry())
	if err != nil {
		return err
	}

	policy := policies.NewEpsilonGreedyPolicy(alpha, gamma, epsilon)
	agent := types.NewAgent(&types.AgentConfig{
		Episodes:    episodes,
		Horizon:     horizon,
		Policy:      policy,
		Environment: env,
	})

	totalReward := float64(0)
	for i := 0; i < episodes; i++ {
		fmt.Printf("\rTraining: Episode %d/%d", i+1, episodes)
		trace := agent.RunEpisode(i)
		totalReward += trace.TotalReward()
	}
	fmt.Println("")
	fmt.Printf("Average episode reward: %.2f\n", totalReward/float64(episodes))

	s, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	id, err := s.SavePolicy(name, "epsilon-greedy", episodes, horizon, policy.QTable())
	if err != nil {
		return err
	}
	fmt.Println(aurora.Green(fmt.Sprintf("Saved policy %q as %s", name, id)))
	return nil
}

func TrainCommand() *cobra.Command {
	var recipePath string
	var dbPath string
	var name string
	var alpha float64
	var gamma float64
	var epsilon float64

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train a Q-learning policy and persist its table",
		RunE: func(cmd *cobra.Command, args []string) error {
			return Train(episodes, horizon, recipePath, dbPath, name, alpha, gamma, epsilon)
		},
	}
	cmd.PersistentFlags().StringVar(&recipePath, "recipe", "", "Recipe YAML file (defaults to the built-in recipe)")
	cmd.PersistentFlags().StringVar(&dbPath, "db", "policies.db", "Path of the policy database")
	cmd.PersistentFlags().StringVar(&name, "name", "salad", "Name to save the trained policy under")
	cmd.PersistentFlags().Float64Var(&alpha, "alpha", 0.1, "Learning rate")
	cmd.PersistentFlags().Float64Var(&gamma, "gamma", 0.95, "Discount factor")
	cmd.PersistentFlags().Float64Var(&epsilon, "epsilon", 0.1, "Exploration rate")
	return cmd
}
