package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bnema/vr-therapy-cli/internal/domain"
	"github.com/bnema/vr-therapy-cli/internal/ports"

	_ "modernc.org/sqlite"
)

type HistoryRepository struct {
	db *sql.DB
}

var _ ports.HistoryRepository = (*HistoryRepository)(nil)

func NewHistoryRepository(dbPath string) (*HistoryRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o700); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	r := &HistoryRepository{db: db}
	if err := r.ensureSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return r, nil
}

func (r *HistoryRepository) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS sessions (
  seq INTEGER PRIMARY KEY AUTOINCREMENT,
  id TEXT NOT NULL,
  user_id TEXT NOT NULL,
  pattern_id TEXT NOT NULL,
  start_time TEXT NOT NULL,
  end_time TEXT NOT NULL,
  planned_ms INTEGER NOT NULL DEFAULT 0,
  outcome TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id);
`
	if _, err := r.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create sessions table: %w", err)
	}
	return nil
}

func (r *HistoryRepository) Append(ctx context.Context, record domain.SessionRecord) error {
	const stmt = `
INSERT INTO sessions (id, user_id, pattern_id, start_time, end_time, planned_ms, outcome)
VALUES (?, ?, ?, ?, ?, ?, ?);
`
	_, err := r.db.ExecContext(ctx, stmt,
		record.ID,
		record.UserID,
		string(record.PatternID),
		record.StartTime.UTC().Format(time.RFC3339Nano),
		record.EndTime.UTC().Format(time.RFC3339Nano),
		record.Planned.Milliseconds(),
		string(record.Outcome),
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (r *HistoryRepository) All(ctx context.Context) ([]domain.SessionRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, user_id, pattern_id, start_time, end_time, planned_ms, outcome
FROM sessions
ORDER BY seq ASC;
`)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	out := make([]domain.SessionRecord, 0)
	for rows.Next() {
		var (
			record           domain.SessionRecord
			patternID        string
			startRaw, endRaw string
			plannedMS        int64
			outcome          string
		)
		if err := rows.Scan(&record.ID, &record.UserID, &patternID, &startRaw, &endRaw, &plannedMS, &outcome); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		record.PatternID = domain.PatternID(patternID)
		record.Outcome = domain.Outcome(outcome)
		record.Planned = time.Duration(plannedMS) * time.Millisecond
		if record.StartTime, err = time.Parse(time.RFC3339Nano, startRaw); err != nil {
			return nil, fmt.Errorf("parse start time of session %s: %w", record.ID, err)
		}
		if record.EndTime, err = time.Parse(time.RFC3339Nano, endRaw); err != nil {
			return nil, fmt.Errorf("parse end time of session %s: %w", record.ID, err)
		}
		out = append(out, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return out, nil
}

func (r *HistoryRepository) Close() error {
	return r.db.Close()
}
