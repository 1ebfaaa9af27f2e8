package types

import (
	"context"
	"os"
	"path"
	"testing"
)

func TestExperimentCountsProperties(t *testing.T) {
	env := newCountingEnvironment(3)
	e := NewExperiment("test", NewSeededRandomPolicy(42), env)

	threeSteps := NewMonitor()
	cond := MonitorCondition(func(s State, _ Action, ns State) bool {
		return len(ns.Actions()) == 0
	})
	threeSteps.Build().On(cond, "done").MarkSuccess()
	e.AddProperty(threeSteps)

	e.Run(&experimentRunConfig{
		Episodes: 4,
		Horizon:  10,
		Context:  context.Background(),
	})

	if len(e.Result) != 4 {
		t.Fatalf("expected 4 traces, got %d", len(e.Result))
	}
	// every episode terminates, so the property holds each time
	if e.PropertyStats[0] != 4 {
		t.Errorf("expected the property in all 4 episodes, got %d", e.PropertyStats[0])
	}
}

func TestComparisonRunsAnalyzersAndComparators(t *testing.T) {
	recordPath := path.Join(t.TempDir(), "results")
	c := NewComparison(&ComparisonConfig{
		Runs:         2,
		Episodes:     3,
		Horizon:      10,
		RecordPath:   recordPath,
		RecordTraces: true,
	})

	comparatorCalls := 0
	var lastNames []string
	c.AddAnalysis("Reward", NewRewardAnalyzer(), func(run int, names []string, ds []DataSet) {
		comparatorCalls += 1
		lastNames = names
		for i, d := range ds {
			rewards := d.([]float64)
			if len(rewards) != 3 {
				t.Errorf("experiment %s: expected 3 episode rewards, got %d", names[i], len(rewards))
			}
		}
	})

	c.AddExperiment(NewExperiment("first", NewSeededRandomPolicy(1), newCountingEnvironment(3)))
	c.AddExperiment(NewExperiment("second", NewSeededRandomPolicy(2), newCountingEnvironment(5)))
	c.Run(context.Background())

	if comparatorCalls != 2 {
		t.Errorf("expected one comparator call per run, got %d", comparatorCalls)
	}
	if len(lastNames) != 2 || lastNames[0] != "first" || lastNames[1] != "second" {
		t.Errorf("unexpected experiment names: %v", lastNames)
	}

	if _, err := os.Stat(path.Join(recordPath, "comparison_config.json")); err != nil {
		t.Errorf("expected the comparison config to be recorded: %v", err)
	}
	if _, err := os.Stat(path.Join(recordPath, "traces", "first_0.jsonl")); err != nil {
		t.Errorf("expected the traces to be recorded: %v", err)
	}
}

func TestComparisonStopsOnCancel(t *testing.T) {
	c := NewComparison(&ComparisonConfig{
		Runs:       3,
		Episodes:   3,
		Horizon:    10,
		RecordPath: t.TempDir(),
	})
	e := NewExperiment("test", NewSeededRandomPolicy(42), newCountingEnvironment(3))
	c.AddExperiment(e)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c.Run(ctx)

	if len(e.Result) != 0 {
		t.Errorf("expected no episodes after cancellation, got %d", len(e.Result))
	}
}
