package types

import "testing"

func stateIs(hash string) MonitorCondition {
	return func(_ State, _ Action, ns State) bool {
		return ns.Hash() == hash
	}
}

func monitorTrace(stateHashes ...string) *Trace {
	trace := NewTrace()
	act := &testAction{"a"}
	cur := &testState{hash: "start"}
	for i, h := range stateHashes {
		next := &testState{hash: h}
		trace.Append(i, cur, act, 0, next)
		cur = next
	}
	return trace
}

func TestMonitorSingleStep(t *testing.T) {
	m := NewMonitor()
	m.Build().On(stateIs("goal"), "reached").MarkSuccess()

	if _, ok := m.Check(monitorTrace("a", "b", "goal", "c")); !ok {
		t.Errorf("expected the monitor to accept the trace")
	}
	if _, ok := m.Check(monitorTrace("a", "b", "c")); ok {
		t.Errorf("expected the monitor to reject the trace")
	}
	if _, ok := m.Check(NewTrace()); ok {
		t.Errorf("expected the monitor to reject an empty trace")
	}
}

func TestMonitorChain(t *testing.T) {
	m := NewMonitor()
	m.Build().On(stateIs("one"), "saw-one").On(stateIs("two"), "saw-two").MarkSuccess()

	if _, ok := m.Check(monitorTrace("one", "x", "two")); !ok {
		t.Errorf("expected the ordered occurrence to be accepted")
	}
	// out of order
	if _, ok := m.Check(monitorTrace("two", "x", "one")); ok {
		t.Errorf("expected the reversed occurrence to be rejected")
	}
}

func TestMonitorReturnsPrefix(t *testing.T) {
	m := NewMonitor()
	m.Build().On(stateIs("goal"), "reached").MarkSuccess()

	prefix, ok := m.Check(monitorTrace("a", "goal", "b", "c"))
	if !ok {
		t.Fatalf("expected the monitor to accept the trace")
	}
	if prefix.Len() != 1 {
		t.Errorf("expected the prefix up to the accepting step, got %d steps", prefix.Len())
	}
}

func TestMonitorConditionOperators(t *testing.T) {
	s := &testState{hash: "s"}
	a := &testAction{"a"}
	yes := MonitorCondition(func(State, Action, State) bool { return true })
	no := MonitorCondition(func(State, Action, State) bool { return false })

	if yes.And(no)(s, a, s) {
		t.Errorf("expected And to be false")
	}
	if !yes.Or(no)(s, a, s) {
		t.Errorf("expected Or to be true")
	}
	if !no.Not()(s, a, s) {
		t.Errorf("expected Not to be true")
	}
}
