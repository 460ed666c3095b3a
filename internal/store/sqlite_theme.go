package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sonicdash/sonic/internal/theme"
)

const themeConfigKey = "theme_config"

// LoadThemeConfig returns the persisted theme snapshot. ok is false when
// nothing has been stored yet.
func (s *Store) LoadThemeConfig(ctx context.Context) (theme.Config, bool, error) {
	return loadThemeConfig(ctx, s.db)
}

func loadThemeConfig(ctx context.Context, q execQuerier) (theme.Config, bool, error) {
	raw, ok, err := getAppState(ctx, q, themeConfigKey)
	if err != nil || !ok {
		return theme.Config{}, false, err
	}
	var cfg theme.Config
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		return theme.Config{}, true, fmt.Errorf("decode theme config: %w", err)
	}
	return cfg, true, nil
}

func saveThemeConfig(ctx context.Context, q execQuerier, cfg theme.Config) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode theme config: %w", err)
	}
	return setAppState(ctx, q, themeConfigKey, string(data))
}

// SaveThemeConfig replaces the stored snapshot wholesale.
func (s *Store) SaveThemeConfig(ctx context.Context, cfg theme.Config) error {
	s.themeMu.Lock()
	defer s.themeMu.Unlock()
	return saveThemeConfig(ctx, s.db, cfg)
}

// SeedThemeConfig stores cfg only if no snapshot exists yet.
func (s *Store) SeedThemeConfig(ctx context.Context, cfg theme.Config) (bool, error) {
	s.themeMu.Lock()
	defer s.themeMu.Unlock()

	_, ok, err := getAppState(ctx, s.db, themeConfigKey)
	if err != nil {
		return false, err
	}
	if ok {
		return false, nil
	}
	if err := saveThemeConfig(ctx, s.db, cfg); err != nil {
		return false, err
	}
	return true, nil
}

// UpdateThemeConfig loads the snapshot, hands a private copy to fn and stores
// the result as the new snapshot, all in one transaction. If fn returns an
// error nothing is written.
func (s *Store) UpdateThemeConfig(ctx context.Context, fn func(cfg *theme.Config) error) (theme.Config, error) {
	s.themeMu.Lock()
	defer s.themeMu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return theme.Config{}, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	current, _, err := loadThemeConfig(ctx, tx)
	if err != nil {
		return theme.Config{}, err
	}
	next := current.Clone()
	if err := fn(&next); err != nil {
		return theme.Config{}, err
	}
	if err := saveThemeConfig(ctx, tx, next); err != nil {
		return theme.Config{}, err
	}
	if err := tx.Commit(); err != nil {
		return theme.Config{}, fmt.Errorf("commit theme config: %w", err)
	}
	return next, nil
}
