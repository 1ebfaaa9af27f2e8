package experiments

import "github.com/spf13/cobra"

var (
	episodes int
	horizon  int
	saveDir  string
	runs     int
)

func GetRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:   "salad-rl",
		Short: "Constrained salad-preparation experiments for tabular RL",
	}
	rootCommand.PersistentFlags().IntVarP(&episodes, "episodes", "e", 10000, "Number of episodes to run")
	rootCommand.PersistentFlags().IntVar(&horizon, "horizon", 50, "Horizon of each episode")
	rootCommand.PersistentFlags().StringVarP(&saveDir, "save", "s", "results", "Save the result data in the specified folder")
	rootCommand.PersistentFlags().IntVar(&runs, "runs", 1, "Number of experiment runs")
	// adding the subcommands here
	rootCommand.AddCommand(SaladCompareCommand())
	rootCommand.AddCommand(TrainCommand())
	rootCommand.AddCommand(EvalCommand())
	rootCommand.AddCommand(GridCommand())
	return rootCommand
}
