package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"todo/internal/backend/googletasks"
	"todo/internal/config"
	"todo/internal/kv"
	"todo/internal/kv/filekv"
	"todo/internal/kv/memkv"
	"todo/internal/kv/sqlkv"
	"todo/internal/service"
	"todo/internal/store"
)

// OpenBackend builds the kv.Backend selected by cfg.Backend.
// The close function is nil when there is nothing to release.
func OpenBackend(ctx context.Context, cfg *config.Config) (kv.Backend, func() error, error) {
	switch cfg.Backend {
	case config.BackendFile:
		return filekv.New(cfg.DataDir), nil, nil
	case config.BackendMemory:
		return memkv.New(), nil, nil
	case config.BackendSQL:
		s, err := sqlkv.Open(ctx, cfg.SQLDriver, cfg.SQLDSN)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown backend: %s", cfg.Backend)
	}
}

// OpenStore is the production StoreFactory.
func OpenStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (*store.TaskListStore, func() error, error) {
	backend, closeBackend, err := OpenBackend(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	log.Debug("opened backend", "backend", cfg.Backend, "slot", cfg.Slot)

	st := store.New(backend, store.WithSlot(cfg.Slot), store.WithLogger(log))
	st.Load(ctx)
	return st, closeBackend, nil
}

// GoogleService is the production ServiceFactory. It checks for the OAuth
// files first so the user gets a pointer to `todo login`.
func GoogleService(ctx context.Context, cfg *config.Config) (service.Service, error) {
	if !cfg.HasOAuthClient() {
		return nil, fmt.Errorf("oauth_client.json not found in %s (run: todo login)", cfg.Dir)
	}
	if !cfg.HasToken() {
		return nil, errors.New("not logged in (run: todo login)")
	}
	return googletasks.New(ctx, cfg)
}
