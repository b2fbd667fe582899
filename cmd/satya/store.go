// cmd/satya/store.go
package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const createSchema = `
CREATE TABLE IF NOT EXISTS cache (
	key       TEXT PRIMARY KEY,
	value     TEXT NOT NULL,
	timestamp INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS checks (
	id           TEXT PRIMARY KEY,
	input_type   TEXT NOT NULL,
	input_url    TEXT NOT NULL DEFAULT '',
	text_snippet TEXT NOT NULL DEFAULT '',
	result_json  TEXT NOT NULL,
	created_at   DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_checks_created ON checks(created_at DESC);
`

// openDatabase opens the sqlite database and initializes the schema.
// A single connection keeps writers serialized, which is all the
// last-writer-wins cache contract needs.
func openDatabase(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, NewStoreError(ErrStoreQuery, "failed to create data directory", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, NewStoreError(ErrStoreQuery, "failed to open database", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(createSchema); err != nil {
		db.Close()
		return nil, NewStoreError(ErrStoreQuery, "failed to initialize schema", err)
	}
	return db, nil
}

// CheckStore persists verification requests and their verdicts
type CheckStore struct {
	db  *sql.DB
	now func() time.Time
}

// NewCheckStore creates a check store over an opened database
func NewCheckStore(db *sql.DB) *CheckStore {
	return &CheckStore{db: db, now: time.Now}
}

// Save persists one completed check and returns it with its assigned id
func (s *CheckStore) Save(inputType, inputURL, text string, verdict *Verdict) (*Check, error) {
	result, err := json.Marshal(verdict)
	if err != nil {
		return nil, NewStoreError(ErrStoreInsert, "failed to encode verdict", err)
	}

	check := &Check{
		ID:          uuid.NewString(),
		InputType:   inputType,
		InputURL:    inputURL,
		TextSnippet: truncate(text, 4000),
		Result:      verdict,
		CreatedAt:   s.now().UTC(),
	}

	_, err = s.db.Exec(`
		INSERT INTO checks (id, input_type, input_url, text_snippet, result_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, check.ID, check.InputType, check.InputURL, check.TextSnippet, string(result), check.CreatedAt)
	if err != nil {
		return nil, NewStoreError(ErrStoreInsert, "failed to insert check", err)
	}
	return check, nil
}

// Get returns one stored check by id, or nil when not found
func (s *CheckStore) Get(id string) (*Check, error) {
	row := s.db.QueryRow(`
		SELECT id, input_type, input_url, text_snippet, result_json, created_at
		FROM checks WHERE id = ?
	`, id)

	check, err := scanCheck(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, NewStoreError(ErrStoreQuery, fmt.Sprintf("failed to load check %s", id), err)
	}
	return check, nil
}

// Recent returns the most recent checks, newest first
func (s *CheckStore) Recent(limit int) ([]*Check, error) {
	rows, err := s.db.Query(`
		SELECT id, input_type, input_url, text_snippet, result_json, created_at
		FROM checks ORDER BY created_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, NewStoreError(ErrStoreQuery, "failed to list checks", err)
	}
	defer rows.Close()

	var checks []*Check
	for rows.Next() {
		check, err := scanCheck(rows)
		if err != nil {
			return nil, NewStoreError(ErrStoreQuery, "failed to scan check", err)
		}
		checks = append(checks, check)
	}
	return checks, rows.Err()
}

// StatusCounts aggregates stored verdicts by status
func (s *CheckStore) StatusCounts() (*StatusCounts, error) {
	counts := &StatusCounts{}

	if err := s.db.QueryRow(`SELECT COUNT(*) FROM checks`).Scan(&counts.Total); err != nil {
		return nil, NewStoreError(ErrStoreQuery, "failed to count checks", err)
	}
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM checks WHERE json_extract(result_json, '$.status') = ?`, StatusFake).Scan(&counts.Fake); err != nil {
		return nil, NewStoreError(ErrStoreQuery, "failed to count fake checks", err)
	}
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM checks WHERE json_extract(result_json, '$.status') = ?`, StatusTrue).Scan(&counts.True); err != nil {
		return nil, NewStoreError(ErrStoreQuery, "failed to count true checks", err)
	}

	counts.Unknown = counts.Total - counts.Fake - counts.True
	return counts, nil
}

// PurgeOlderThan deletes checks older than the retention window and
// returns how many rows were removed
func (s *CheckStore) PurgeOlderThan(age time.Duration) (int64, error) {
	cutoff := s.now().UTC().Add(-age)
	res, err := s.db.Exec(`DELETE FROM checks WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, NewStoreError(ErrStoreQuery, "failed to purge old checks", err)
	}
	return res.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCheck(row rowScanner) (*Check, error) {
	var (
		check      Check
		resultJSON string
	)
	if err := row.Scan(&check.ID, &check.InputType, &check.InputURL, &check.TextSnippet, &resultJSON, &check.CreatedAt); err != nil {
		return nil, err
	}

	var verdict Verdict
	if err := json.Unmarshal([]byte(resultJSON), &verdict); err != nil {
		// A corrupt row still surfaces as a well-formed check
		check.Result = fallbackVerdict("")
		return &check, nil
	}
	check.Result = &verdict
	return &check, nil
}
