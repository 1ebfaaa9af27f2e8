package grid

import "github.com/HARPLab/human-ai-value-alignment/types"

// GoalReached is satisfied once the agent steps onto the goal cell
func GoalReached() *types.Monitor {
	monitor := types.NewMonitor()
	cond := types.MonitorCondition(func(_ types.State, _ types.Action, ns types.State) bool {
		position, ok := ns.(*Position)
		return ok && position.AtGoal
	})
	monitor.Build().On(cond, "reached").MarkSuccess()
	return monitor
}

// InPosition holds on transitions into the given cell
func InPosition(i, j int) types.MonitorCondition {
	return func(_ types.State, _ types.Action, ns types.State) bool {
		position, ok := ns.(*Position)
		if !ok {
			return false
		}
		return position.I == i && position.J == j
	}
}
