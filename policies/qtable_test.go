package policies

import (
	"encoding/json"
	"os"
	"path"
	"testing"
)

func TestQTableGetSet(t *testing.T) {
	q := NewQTable()
	if val := q.Get("s1", "a1", 0.5); val != 0.5 {
		t.Errorf("expected the default value, got %v", val)
	}
	q.Set("s1", "a1", 2)
	if val := q.Get("s1", "a1", 0.5); val != 2 {
		t.Errorf("expected 2, got %v", val)
	}
	if !q.HasState("s1") {
		t.Errorf("expected s1 to be known after Get")
	}
	if q.HasState("s2") {
		t.Errorf("expected s2 to be unknown")
	}
}

func TestQTableMax(t *testing.T) {
	q := NewQTable()
	if _, val := q.Max("s1", -1); val != -1 {
		t.Errorf("expected the default for an unknown state, got %v", val)
	}
	q.Set("s1", "a1", 1)
	q.Set("s1", "a2", 3)
	q.Set("s1", "a3", 2)
	action, val := q.Max("s1", 0)
	if action != "a2" || val != 3 {
		t.Errorf("expected a2 with value 3, got %s with %v", action, val)
	}
}

func TestQTableMaxAmong(t *testing.T) {
	q := NewQTable()
	q.Set("s1", "a1", 5)
	q.Set("s1", "a2", 1)

	// a1 has the highest value overall but is not available
	action, val := q.MaxAmong("s1", []string{"a2", "a3"}, 0)
	if action != "a2" || val != 1 {
		t.Errorf("expected a2 with value 1, got %s with %v", action, val)
	}
	// a3 was initialized with the default
	if got := q.Get("s1", "a3", -1); got != 0 {
		t.Errorf("expected a3 to hold the default 0, got %v", got)
	}
}

func TestQTableSnapshotCopies(t *testing.T) {
	q := NewQTable()
	q.Set("s1", "a1", 1)
	snapshot := q.Snapshot()
	snapshot["s1"]["a1"] = 9

	if val := q.Get("s1", "a1", 0); val != 1 {
		t.Errorf("expected the table to be unaffected, got %v", val)
	}

	restored := NewQTableFrom(snapshot)
	if val := restored.Get("s1", "a1", 0); val != 9 {
		t.Errorf("expected the restored table to hold 9, got %v", val)
	}
}

func TestQTableRecord(t *testing.T) {
	q := NewQTable()
	q.Set("s1", "a1", 1.5)
	recordPath := path.Join(t.TempDir(), "policies", "table.json")
	if err := q.Record(recordPath); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bs, err := os.ReadFile(recordPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	recorded := make(map[string]map[string]float64)
	if err := json.Unmarshal(bs, &recorded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if recorded["s1"]["a1"] != 1.5 {
		t.Errorf("expected the recorded table to hold 1.5, got %v", recorded["s1"]["a1"])
	}
}
