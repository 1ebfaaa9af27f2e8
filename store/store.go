package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/HARPLab/human-ai-value-alignment/policies"
)

const schema = `
CREATE TABLE IF NOT EXISTS policies (
	policy_id   TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	algorithm   TEXT NOT NULL,
	episodes    INTEGER NOT NULL,
	horizon     INTEGER NOT NULL,
	created_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS qvalues (
	policy_id   TEXT NOT NULL,
	state       TEXT NOT NULL,
	action      TEXT NOT NULL,
	value       REAL NOT NULL,
	PRIMARY KEY (policy_id, state, action),
	FOREIGN KEY (policy_id) REFERENCES policies(policy_id)
);
`

// PolicyRecord describes a persisted Q-table
type PolicyRecord struct {
	ID        string
	Name      string
	Algorithm string
	Episodes  int
	Horizon   int
	CreatedAt time.Time
}

// timestamps are stored fixed width so that the lexicographic order
// matches the chronological one
const timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// Store persists trained Q-tables in SQLite
type Store struct {
	db *sql.DB
}

// Open the database and run the migrations
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SavePolicy inserts the Q-table under a fresh id
func (s *Store) SavePolicy(name, algorithm string, episodes, horizon int, qTable *policies.QTable) (string, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO policies (policy_id, name, algorithm, episodes, horizon, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, name, algorithm, episodes, horizon, now.Format(timeFormat),
	)
	if err != nil {
		return "", fmt.Errorf("insert policy: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO qvalues (policy_id, state, action, value) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for state, actions := range qTable.Snapshot() {
		for action, value := range actions {
			if _, err := stmt.Exec(id, state, action, value); err != nil {
				return "", fmt.Errorf("insert qvalue: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	return id, nil
}

// LoadPolicy reads back the most recently saved Q-table with the name
func (s *Store) LoadPolicy(name string) (*policies.QTable, PolicyRecord, error) {
	rec, err := s.latestRecord(name)
	if err != nil {
		return nil, PolicyRecord{}, err
	}

	rows, err := s.db.Query(`SELECT state, action, value FROM qvalues WHERE policy_id = ?`, rec.ID)
	if err != nil {
		return nil, PolicyRecord{}, fmt.Errorf("load qvalues: %w", err)
	}
	defer rows.Close()

	snapshot := make(map[string]map[string]float64)
	for rows.Next() {
		var state, action string
		var value float64
		if err := rows.Scan(&state, &action, &value); err != nil {
			return nil, PolicyRecord{}, fmt.Errorf("scan qvalue: %w", err)
		}
		if _, ok := snapshot[state]; !ok {
			snapshot[state] = make(map[string]float64)
		}
		snapshot[state][action] = value
	}
	if err := rows.Err(); err != nil {
		return nil, PolicyRecord{}, fmt.Errorf("iterate qvalues: %w", err)
	}
	return policies.NewQTableFrom(snapshot), rec, nil
}

func (s *Store) latestRecord(name string) (PolicyRecord, error) {
	var rec PolicyRecord
	var createdStr string
	err := s.db.QueryRow(
		`SELECT policy_id, name, algorithm, episodes, horizon, created_at
		 FROM policies WHERE name = ? ORDER BY created_at DESC LIMIT 1`, name,
	).Scan(&rec.ID, &rec.Name, &rec.Algorithm, &rec.Episodes, &rec.Horizon, &createdStr)
	if err == sql.ErrNoRows {
		return PolicyRecord{}, fmt.Errorf("no policy named %q", name)
	}
	if err != nil {
		return PolicyRecord{}, fmt.Errorf("load policy %q: %w", name, err)
	}
	rec.CreatedAt, _ = time.Parse(timeFormat, createdStr)
	return rec, nil
}

// ListPolicies returns the saved policies, most recent first
func (s *Store) ListPolicies() ([]PolicyRecord, error) {
	rows, err := s.db.Query(
		`SELECT policy_id, name, algorithm, episodes, horizon, created_at
		 FROM policies ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list policies: %w", err)
	}
	defer rows.Close()

	var records []PolicyRecord
	for rows.Next() {
		var rec PolicyRecord
		var createdStr string
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Algorithm, &rec.Episodes, &rec.Horizon, &createdStr); err != nil {
			return nil, fmt.Errorf("scan policy: %w", err)
		}
		rec.CreatedAt, _ = time.Parse(timeFormat, createdStr)
		records = append(records, rec)
	}
	return records, rows.Err()
}
