package store

import (
	"context"
	"fmt"
	"time"

	"github.com/kilianp07/derby/core/ppn"
)

// ScheduleRecord is one generated heat schedule.
type ScheduleRecord struct {
	ID        string      `json:"id"`
	Timestamp time.Time   `json:"timestamp"`
	RaceID    string      `json:"race_id,omitempty"`
	Title     string      `json:"title,omitempty"`
	Lanes     int         `json:"lanes"`
	Cars      int         `json:"cars"`
	Rounds    int         `json:"rounds"`
	Weights   ppn.Weights `json:"weights"`
	Heats     []ppn.Heat  `json:"heats"`
	Quality   ppn.Quality `json:"quality"`
}

// ScheduleQuery filters stored records. Zero fields match everything.
type ScheduleQuery struct {
	Start  time.Time
	End    time.Time
	RaceID string
	Lanes  int
}

// Match reports whether r satisfies q.
func (q ScheduleQuery) Match(r ScheduleRecord) bool {
	if !q.Start.IsZero() && r.Timestamp.Before(q.Start) {
		return false
	}
	if !q.End.IsZero() && r.Timestamp.After(q.End) {
		return false
	}
	if q.RaceID != "" && r.RaceID != q.RaceID {
		return false
	}
	if q.Lanes != 0 && r.Lanes != q.Lanes {
		return false
	}
	return true
}

// Store persists schedule records.
type Store interface {
	Append(ctx context.Context, rec ScheduleRecord) error
	Query(ctx context.Context, q ScheduleQuery) ([]ScheduleRecord, error)
	Close() error
}

// NopStore discards records.
type NopStore struct{}

func (NopStore) Append(context.Context, ScheduleRecord) error { return nil }
func (NopStore) Query(context.Context, ScheduleQuery) ([]ScheduleRecord, error) {
	return nil, nil
}
func (NopStore) Close() error { return nil }

// New opens the backend selected by cfg.
func New(cfg Config) (Store, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Backend {
	case "sqlite":
		return NewSQLiteStore(cfg.Path)
	case "jsonl":
		return NewRotatingJSONLStore(cfg.Path, cfg.MaxSizeMB, cfg.MaxBackups, cfg.MaxAgeDays)
	case "none":
		return NopStore{}, nil
	default:
		return nil, fmt.Errorf("unknown backend %s", cfg.Backend)
	}
}
