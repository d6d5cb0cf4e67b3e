// Package sqlite implements a WorldStore that keeps named save slots in SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/geocache/internal/adapters/storage/sqlite/migrations"
	"go.trai.ch/geocache/internal/core/domain"
	"go.trai.ch/geocache/internal/core/ports"
	"go.trai.ch/zerr"
	_ "modernc.org/sqlite" // registers the "sqlite" database/sql driver
)

var _ ports.WorldStore = (*Store)(nil)

// Store persists world saves in a SQLite database, one row per slot.
type Store struct {
	db   *sql.DB
	slot string
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens the database at path, applies embedded migrations and
// binds the store to slot.
func Open(ctx context.Context, path, slot string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, zerr.Wrap(zerr.New("database path is required"), domain.ErrStoreOpenFailed.Error())
	}
	slot = strings.TrimSpace(slot)
	if slot == "" {
		slot = domain.DefaultSlot
	}

	cleanPath := filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(cleanPath), domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "path", cleanPath)
	}

	dsn := cleanPath + "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreOpenFailed.Error()), "path", cleanPath)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreOpenFailed.Error()), "path", cleanPath)
	}
	if err := applyMigrations(ctx, db, migrations.FS); err != nil {
		_ = db.Close()
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreOpenFailed.Error()), "path", cleanPath)
	}

	return &Store{db: db, slot: slot}, nil
}

// Slot returns the save slot this store reads and writes.
func (s *Store) Slot() string {
	return s.slot
}

// Load returns the record saved in the slot, or nil when the slot is empty.
func (s *Store) Load(ctx context.Context) (*domain.SaveRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		payload string
		savedAt int64
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT payload, saved_at FROM world_saves WHERE slot = ?", s.slot,
	).Scan(&payload, &savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSaveReadFailed.Error()), "slot", s.slot)
	}

	var rec domain.SaveRecord
	if err := json.Unmarshal([]byte(payload), &rec); err != nil {
		return nil, errors.Join(domain.ErrSaveCorrupt,
			zerr.With(zerr.Wrap(err, domain.ErrSaveUnmarshalFailed.Error()), "slot", s.slot))
	}
	if rec.SavedAt.IsZero() {
		rec.SavedAt = fromMillis(savedAt)
	}
	return &rec, nil
}

// Save upserts the record into the slot.
func (s *Store) Save(ctx context.Context, rec *domain.SaveRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.Marshal(rec)
	if err != nil {
		return zerr.Wrap(err, domain.ErrSaveMarshalFailed.Error())
	}

	savedAt := rec.SavedAt
	if savedAt.IsZero() {
		savedAt = time.Now()
	}

	if _, err := s.db.ExecContext(ctx, `
INSERT INTO world_saves (slot, version, payload, saved_at) VALUES (?, ?, ?, ?)
ON CONFLICT(slot) DO UPDATE SET
    version = excluded.version,
    payload = excluded.payload,
    saved_at = excluded.saved_at`,
		s.slot, rec.Version, string(payload), toMillis(savedAt),
	); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSaveWriteFailed.Error()), "slot", s.slot)
	}
	return nil
}

// Clear removes the slot. Other slots are untouched.
func (s *Store) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, "DELETE FROM world_saves WHERE slot = ?", s.slot); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSaveWriteFailed.Error()), "slot", s.slot)
	}
	return nil
}

// Close closes the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
