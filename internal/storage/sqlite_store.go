package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"questlog/internal/logging"
	"questlog/internal/model"
)

// SQLiteStore keeps each collection as a single JSON-array record. Every
// save is a full rewrite of the record; there is no incremental diffing.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		return nil, fmt.Errorf("set journal mode: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// OpenSQLite opens the database file, applies pending migrations and
// returns a ready store.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	store, err := NewSQLiteStore(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) LoadCompleted(ctx context.Context) ([]model.CompletedTask, error) {
	raw, ok, err := s.loadRecord(ctx, KeyCompleted)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []model.CompletedTask{}, nil
	}
	tasks, decodeErr := decodeCompleted(raw)
	if decodeErr != nil {
		// Malformed stored data is not fatal: log it and start empty.
		logging.Warn("discarding malformed record", "key", KeyCompleted, "error", decodeErr)
		return []model.CompletedTask{}, nil
	}
	return tasks, nil
}

func (s *SQLiteStore) SaveCompleted(ctx context.Context, tasks []model.CompletedTask) error {
	payload, err := encodeCompleted(tasks)
	if err != nil {
		return fmt.Errorf("encode completed tasks: %w", err)
	}
	return s.saveRecord(ctx, KeyCompleted, payload)
}

func (s *SQLiteStore) LoadPlanning(ctx context.Context) ([]model.PlanningTask, error) {
	raw, ok, err := s.loadRecord(ctx, KeyPlanning)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []model.PlanningTask{}, nil
	}
	tasks, decodeErr := decodePlanning(raw)
	if decodeErr != nil {
		logging.Warn("discarding malformed record", "key", KeyPlanning, "error", decodeErr)
		return []model.PlanningTask{}, nil
	}
	return tasks, nil
}

func (s *SQLiteStore) SavePlanning(ctx context.Context, tasks []model.PlanningTask) error {
	payload, err := encodePlanning(tasks)
	if err != nil {
		return fmt.Errorf("encode planning tasks: %w", err)
	}
	return s.saveRecord(ctx, KeyPlanning, payload)
}

func (s *SQLiteStore) loadRecord(ctx context.Context, key string) ([]byte, bool, error) {
	row := s.db.QueryRowContext(ctx, `SELECT value FROM records WHERE key = ?`, key)
	var value string
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return []byte(value), true, nil
}

func (s *SQLiteStore) saveRecord(ctx context.Context, key string, payload []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO records (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(payload), time.Now().UTC().Format(recordTimeLayout),
	)
	return err
}
