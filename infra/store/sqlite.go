package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists schedules to a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens or creates the database at path and ensures schema.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	schema := `CREATE TABLE IF NOT EXISTS schedules (
        id TEXT PRIMARY KEY,
        ts INTEGER,
        race_id TEXT,
        lanes INTEGER,
        cars INTEGER,
        record TEXT
    );
    CREATE INDEX IF NOT EXISTS schedules_ts ON schedules (ts);
    CREATE INDEX IF NOT EXISTS schedules_race ON schedules (race_id);`
	if _, err := db.Exec(schema); err != nil {
		if cerr := db.Close(); cerr != nil {
			return nil, fmt.Errorf("close db: %v (schema err: %w)", cerr, err)
		}
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

// Append writes the record to the database.
func (s *SQLiteStore) Append(ctx context.Context, rec ScheduleRecord) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO schedules (id, ts, race_id, lanes, cars, record) VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Timestamp.UnixNano(), rec.RaceID, rec.Lanes, rec.Cars, string(b))
	return err
}

// Query returns records matching q ordered by timestamp.
func (s *SQLiteStore) Query(ctx context.Context, q ScheduleQuery) ([]ScheduleRecord, error) {
	var args []any
	query := `SELECT record FROM schedules WHERE 1=1`
	if !q.Start.IsZero() {
		query += ` AND ts >= ?`
		args = append(args, q.Start.UnixNano())
	}
	if !q.End.IsZero() {
		query += ` AND ts <= ?`
		args = append(args, q.End.UnixNano())
	}
	if q.RaceID != "" {
		query += ` AND race_id = ?`
		args = append(args, q.RaceID)
	}
	if q.Lanes != 0 {
		query += ` AND lanes = ?`
		args = append(args, q.Lanes)
	}
	query += ` ORDER BY ts`
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var res []ScheduleRecord
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var r ScheduleRecord
		if err := json.Unmarshal([]byte(data), &r); err != nil {
			return nil, fmt.Errorf("unmarshal record: %w", err)
		}
		res = append(res, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error { return s.db.Close() }
