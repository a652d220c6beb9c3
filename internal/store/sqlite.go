package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

type sqliteStore struct {
	db  *sql.DB
	log *zap.Logger
}

// NewSQLite opens a file-backed stats store for local runs.
func NewSQLite(path string, logger *zap.Logger) (Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open sqlite: %w", err)
	}

	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: set WAL: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS stats (
			name    TEXT PRIMARY KEY,
			hp      INTEGER NOT NULL,
			attack  INTEGER NOT NULL,
			defense INTEGER NOT NULL,
			sp_atk  INTEGER NOT NULL,
			sp_def  INTEGER NOT NULL,
			speed   INTEGER NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: create stats table: %w", err)
	}

	logger.Info("sqlite stats store opened", zap.String("path", path))
	return &sqliteStore{db: db, log: logger}, nil
}

func (s *sqliteStore) StatsByName(ctx context.Context, name string) ([]int, error) {
	var hp, atk, def, spAtk, spDef, speed int
	err := s.db.QueryRowContext(ctx, statsQuery, name).
		Scan(&hp, &atk, &def, &spAtk, &spDef, &speed)
	if errors.Is(err, sql.ErrNoRows) {
		s.log.Warn("no stats row", zap.String("name", name))
		return []int{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: query stats: %w", err)
	}
	return []int{hp, atk, def, spAtk, spDef, speed}, nil
}

func (s *sqliteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *sqliteStore) Close() error {
	s.log.Info("sqlite stats store closed")
	return s.db.Close()
}
