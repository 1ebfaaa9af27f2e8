package types

import "testing"

// countingEnvironment walks a fixed number of steps and then terminates
type countingEnvironment struct {
	steps    int
	terminal int
	action   Action
}

func newCountingEnvironment(terminal int) *countingEnvironment {
	return &countingEnvironment{
		terminal: terminal,
		action:   &testAction{"step"},
	}
}

func (c *countingEnvironment) Reset() State {
	c.steps = 0
	return c.state()
}

func (c *countingEnvironment) state() State {
	s := &testState{hash: "s"}
	if c.steps < c.terminal {
		s.actions = []Action{c.action}
	}
	return s
}

func (c *countingEnvironment) Step(a Action) (State, float64) {
	c.steps += 1
	return c.state(), 1
}

type countingPolicy struct {
	RandomPolicy
	updates    int
	iterations int
}

func (c *countingPolicy) Update(_ int, _ State, _ Action, _ float64, _ State) {
	c.updates += 1
}

func (c *countingPolicy) UpdateIteration(_ int, _ *Trace) {
	c.iterations += 1
}

func TestAgentStopsAtHorizon(t *testing.T) {
	env := newCountingEnvironment(100)
	policy := &countingPolicy{RandomPolicy: *NewSeededRandomPolicy(42)}
	agent := NewAgent(&AgentConfig{
		Episodes:    1,
		Horizon:     10,
		Policy:      policy,
		Environment: env,
	})
	trace := agent.RunEpisode(0)
	if trace.Len() != 10 {
		t.Errorf("expected the horizon to cap the episode, got %d steps", trace.Len())
	}
	if policy.updates != 10 {
		t.Errorf("expected one update per step, got %d", policy.updates)
	}
	if policy.iterations != 1 {
		t.Errorf("expected one iteration update, got %d", policy.iterations)
	}
}

func TestAgentStopsAtTerminalState(t *testing.T) {
	env := newCountingEnvironment(3)
	policy := &countingPolicy{RandomPolicy: *NewSeededRandomPolicy(42)}
	agent := NewAgent(&AgentConfig{
		Episodes:    1,
		Horizon:     50,
		Policy:      policy,
		Environment: env,
	})
	trace := agent.RunEpisode(0)
	if trace.Len() != 3 {
		t.Errorf("expected the terminal state to end the episode, got %d steps", trace.Len())
	}
	if trace.TotalReward() != 3 {
		t.Errorf("expected a total reward of 3, got %v", trace.TotalReward())
	}
}

func TestAgentRunCollectsTraces(t *testing.T) {
	env := newCountingEnvironment(3)
	agent := NewAgent(&AgentConfig{
		Episodes:    5,
		Horizon:     50,
		Policy:      NewSeededRandomPolicy(42),
		Environment: env,
	})
	agent.Run()
	traces := agent.Traces()
	if len(traces) != 5 {
		t.Fatalf("expected 5 traces, got %d", len(traces))
	}
	for i, trace := range traces {
		if trace == nil || trace.Len() != 3 {
			t.Errorf("episode %d: unexpected trace", i)
		}
	}
}
