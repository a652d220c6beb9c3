package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
)

type mysqlStore struct {
	db  *sql.DB
	log *zap.Logger
}

// NewMySQL opens the managed MySQL stats store. When the DSN carries no
// password the store API key is injected as the connection credential,
// which is how managed MySQL providers hand out access tokens.
func NewMySQL(dsn, apiKey string, logger *zap.Logger) (Store, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("store: parse DSN: %w", err)
	}
	if cfg.Passwd == "" {
		cfg.Passwd = apiKey
	}

	db, err := sql.Open("mysql", cfg.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("store: open mysql: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: ping mysql: %w", err)
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS stats (
			name    VARCHAR(64) PRIMARY KEY,
			hp      INT NOT NULL,
			attack  INT NOT NULL,
			defense INT NOT NULL,
			sp_atk  INT NOT NULL,
			sp_def  INT NOT NULL,
			speed   INT NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: create stats table: %w", err)
	}

	logger.Info("mysql stats store opened", zap.String("database", cfg.DBName))
	return &mysqlStore{db: db, log: logger}, nil
}

func (s *mysqlStore) StatsByName(ctx context.Context, name string) ([]int, error) {
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

func (s *mysqlStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *mysqlStore) Close() error {
	s.log.Info("mysql stats store closed")
	return s.db.Close()
}
