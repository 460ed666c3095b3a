package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type execQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *Store) SetAppState(ctx context.Context, key, value string) error {
	return setAppState(ctx, s.db, key, value)
}

func (s *Store) GetAppState(ctx context.Context, key string) (string, bool, error) {
	return getAppState(ctx, s.db, key)
}

func setAppState(ctx context.Context, q execQuerier, key, value string) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	if _, err := q.ExecContext(ctx, `
		INSERT INTO app_state (key, value, updated_utc)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_utc=excluded.updated_utc
	`, key, value, now); err != nil {
		return fmt.Errorf("set app state: %w", err)
	}
	return nil
}

func getAppState(ctx context.Context, q execQuerier, key string) (string, bool, error) {
	var value string
	row := q.QueryRowContext(ctx, `SELECT value FROM app_state WHERE key = ?`, key)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get app state: %w", err)
	}
	return value, true, nil
}
