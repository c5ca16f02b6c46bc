// Package postgres persists the ledger document in a single-row table keyed
// by the state key, for deployments that already run PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"cascosjhc/ledger/internal/storage"
)

type Slot struct {
	db  *sql.DB
	key string
}

func New(ctx context.Context, databaseURL string, key string) (*Slot, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, err
	}

	db.SetMaxIdleConns(2)
	db.SetMaxOpenConns(4)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 6*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, err
	}

	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS app_state (
			state_key  text PRIMARY KEY,
			-- text, not jsonb: the slot must hand back the exact bytes it was
			-- given, and jsonb normalizes key order and whitespace.
			document   text NOT NULL,
			updated_at timestamptz NOT NULL DEFAULT now()
		)
	`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Slot{db: db, key: key}, nil
}

func (s *Slot) Load(ctx context.Context) ([]byte, error) {
	var doc []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT document FROM app_state WHERE state_key = $1
	`, s.key).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", s.key, storage.ErrNoState)
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *Slot) Save(ctx context.Context, doc []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO app_state (state_key, document, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (state_key)
		DO UPDATE SET document = EXCLUDED.document, updated_at = now()
	`, s.key, doc)
	return err
}

func (s *Slot) Close() error {
	return s.db.Close()
}
