package server

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/sonicdash/sonic/internal/config"
	"github.com/sonicdash/sonic/internal/store"
	"github.com/sonicdash/sonic/internal/theme"
)

type stateStore struct {
	db        *store.Store
	staticDir string
	assets    theme.AssetResolver
	pages     *template.Template
}

func newStateStore(db *store.Store, staticDir string) *stateStore {
	return &stateStore{
		db:        db,
		staticDir: staticDir,
		assets:    theme.StaticAssets{Prefix: staticURLPrefix},
		pages:     mustParsePages(),
	}
}

func Run(ctx context.Context, cfg config.File) error {
	addr := cfg.Server.Addr

	db, err := store.Open(cfg.Server.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	for _, warning := range cfg.Theme.Lint() {
		slog.Warn("theme config", "problem", warning)
	}
	seeded, err := db.SeedThemeConfig(ctx, cfg.Theme)
	if err != nil {
		return fmt.Errorf("seed theme config: %w", err)
	}
	if seeded {
		slog.Info("theme config seeded from config file", "profiles", len(cfg.Theme.Profiles), "selected_profile", cfg.Theme.SelectedProfile)
	}

	s := newStateStore(db, cfg.Server.StaticDir)
	s.recordOperation(ctx, store.Operation{
		Message: "Launch Pad - Started",
		Source:  "System Start-up",
		Type:    store.OperationServerStarted,
	})

	srv := &http.Server{
		Addr:              addr,
		Handler:           buildRouter(s),
		ReadHeaderTimeout: 10 * time.Second,
	}

	stopMDNS := func() {}
	if cfg.Server.MDNSEnabled() {
		stopMDNS = startMDNSAdvertiser(addr, cfg.Server.MDNSInstance)
	}
	defer stopMDNS()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("sonic server started", "addr", addr, "db", cfg.Server.DBPath, "static_dir", cfg.Server.StaticDir)
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("listen and serve: %w", err)
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown server: %w", err)
		}
		slog.Info("sonic server stopped")
		return nil
	case err := <-errCh:
		if err != nil {
			return err
		}
		slog.Info("sonic server stopped")
		return nil
	}
}

func (s *stateStore) recordOperation(ctx context.Context, op store.Operation) {
	if _, err := s.db.AppendOperation(ctx, op); err != nil {
		slog.Error("record operation", "operation_type", op.Type, "error", err)
	}
}
