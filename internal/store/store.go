// Package store records samples and actuations in SQLite.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"proximity.klederson.com/internal/monitor"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS samples (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		at_ns INTEGER NOT NULL,
		value INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS actions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		at_ns INTEGER NOT NULL,
		average REAL NOT NULL,
		action TEXT NOT NULL
	)`,
}

// Sample is one recorded reading.
type Sample struct {
	ID    int64 `db:"id"`
	AtNs  int64 `db:"at_ns"`
	Value int   `db:"value"`
}

// At returns when the sample was pushed.
func (s Sample) At() time.Time {
	return time.Unix(0, s.AtNs)
}

// ActionRecord is one recorded actuation.
type ActionRecord struct {
	ID      int64   `db:"id"`
	AtNs    int64   `db:"at_ns"`
	Average float64 `db:"average"`
	Action  string  `db:"action"`
}

// Recorder is a monitor.Sink persisting pushed samples and actuations.
type Recorder struct {
	db *sqlx.DB
}

// Open opens (or creates) the database at path and applies the schema.
func Open(ctx context.Context, path string) (*Recorder, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	r := &Recorder{db: db}
	if err := r.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return r, nil
}

func (r *Recorder) migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// Emit records EventPushed and EventActed; other events are ignored.
func (r *Recorder) Emit(ctx context.Context, ev monitor.Event) {
	var err error
	switch ev.Kind {
	case monitor.EventPushed:
		_, err = r.db.ExecContext(ctx, `INSERT INTO samples (at_ns, value) VALUES (?, ?)`,
			ev.At.UnixNano(), ev.Value)
	case monitor.EventActed:
		_, err = r.db.ExecContext(ctx, `INSERT INTO actions (at_ns, average, action) VALUES (?, ?, ?)`,
			ev.At.UnixNano(), ev.Average, ev.Action.String())
	default:
		return
	}
	if err != nil && ctx.Err() == nil {
		logctx.Error(ctx, "recording event", zap.Stringer("kind", ev.Kind), zap.Error(err))
	}
}

// Recent returns up to n of the latest samples, oldest first.
func (r *Recorder) Recent(ctx context.Context, n int) ([]Sample, error) {
	var out []Sample
	if err := r.db.SelectContext(ctx, &out,
		`SELECT id, at_ns, value FROM samples ORDER BY id DESC LIMIT ?`, n); err != nil {
		return nil, err
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

// RecentActions returns up to n of the latest actuations, oldest first.
func (r *Recorder) RecentActions(ctx context.Context, n int) ([]ActionRecord, error) {
	var out []ActionRecord
	if err := r.db.SelectContext(ctx, &out,
		`SELECT id, at_ns, average, action FROM actions ORDER BY id DESC LIMIT ?`, n); err != nil {
		return nil, err
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

// Count returns the number of recorded samples.
func (r *Recorder) Count(ctx context.Context) (n int, err error) {
	err = r.db.GetContext(ctx, &n, `SELECT count(*) FROM samples`)
	return n, err
}

func (r *Recorder) Close() error {
	return r.db.Close()
}
