// internal/runs/store.go
//
// SQLite persistence for solve-run history. Rows are summaries; the full
// Result lives only in the in-memory store for the process lifetime.

package runs

import (
	"context"
	"database/sql"
	"time"
)

// Store wraps the solve_runs table.
type Store struct{ db *sql.DB }

// NewStore returns a Store over db.
func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Insert records a finished run owned by a user or an anonymous ID
// (exactly one of userID/anonID should be non-empty).
func (s *Store) Insert(ctx context.Context, r *Run, userID, anonID string) error {
	var user, anon sql.NullString
	if userID != "" {
		user = sql.NullString{String: userID, Valid: true}
	} else {
		anon = sql.NullString{String: anonID, Valid: true}
	}
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO solve_runs
            (id, user_id, anonymous_id, status, answer_count, depth, nodes, path, started_at, finished_at, elapsed_ms)
        VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		r.ID, user, anon, r.Status, r.AnswerCount,
		r.Result.Depth, r.Result.NodesExpanded, r.PathString(),
		r.StartedAt.UTC().Format(time.RFC3339),
		r.FinishedAt.UTC().Format(time.RFC3339),
		r.ElapsedMs,
	)
	return err
}

// HistoryRow is the summary shape returned for run listings.
type HistoryRow struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	AnswerCount int    `json:"answerCount"`
	Depth       int    `json:"depth"`
	Nodes       int    `json:"nodes"`
	Path        string `json:"path,omitempty"`
	StartedAt   string `json:"startedAt"`
	ElapsedMs   int64  `json:"elapsedMs"`
}

// RecentByUser fetches a user's most recent runs, newest first.
// Default limit is 50 if not specified.
func (s *Store) RecentByUser(ctx context.Context, userID string, limit int) ([]HistoryRow, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, status, answer_count, depth, nodes, path, started_at, elapsed_ms
        FROM solve_runs
        WHERE user_id=?
        ORDER BY started_at DESC
        LIMIT ?`, userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]HistoryRow, 0, limit)
	for rows.Next() {
		var r HistoryRow
		if err := rows.Scan(&r.ID, &r.Status, &r.AnswerCount, &r.Depth, &r.Nodes, &r.Path, &r.StartedAt, &r.ElapsedMs); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// ClaimAnonRuns transfers anonymous runs to a user account after auth.
func (s *Store) ClaimAnonRuns(ctx context.Context, anonID, userID string) error {
	if anonID == "" || userID == "" {
		return nil
	}
	_, err := s.db.ExecContext(ctx,
		`UPDATE solve_runs SET user_id=?, anonymous_id=NULL WHERE anonymous_id=?`,
		userID, anonID)
	return err
}
