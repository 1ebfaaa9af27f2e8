package salad

import "github.com/HARPLab/human-ai-value-alignment/types"

// Served is satisfied once the salad reaches the terminal stage
func Served() *types.Monitor {
	monitor := types.NewMonitor()
	monitor.Build().On(Reached(StageDone), "served").MarkSuccess()
	return monitor
}

// ConstraintFree is satisfied when the salad is served without a single
// violation along the way
func ConstraintFree() *types.Monitor {
	monitor := types.NewMonitor()
	cond := Reached(StageDone).And(func(_ types.State, _ types.Action, ns types.State) bool {
		state, ok := ns.(*PrepState)
		return ok && state.Violations == 0
	})
	monitor.Build().On(cond, "clean").MarkSuccess()
	return monitor
}

// Reached holds on transitions entering the given stage
func Reached(stage Stage) types.MonitorCondition {
	return func(_ types.State, _ types.Action, ns types.State) bool {
		state, ok := ns.(*PrepState)
		return ok && state.Stage == stage
	}
}
