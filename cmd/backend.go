package cmd

import (
	"context"
	"fmt"

	"chest-sorter/core/config"
	"chest-sorter/core/database"
	"chest-sorter/core/server"
	"chest-sorter/core/storage"
	"chest-sorter/feature/container"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// backends holds the connections of the configured container backend.
// db and client are nil unless the backend needs them.
type backends struct {
	store  container.Store
	db     *gorm.DB
	client storage.Client
}

// openBackends connects whatever cfg.Server.Backend needs and opens the store.
func openBackends(ctx context.Context, cfg *config.Config, logg *zap.Logger) (*backends, error) {
	if !cfg.Server.IsValidBackend() {
		return nil, fmt.Errorf("unknown container backend %q", cfg.Server.Backend)
	}

	b := &backends{}
	switch cfg.Server.Backend {
	case server.BackendDatabase:
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("database connection required: %w", err)
		}
		b.db = db
		logg.Info("Connected to container database", zap.String("driver", cfg.Database.Driver))

	case server.BackendStorage:
		client, err := storage.Open(ctx, cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to open storage: %w", err)
		}
		b.client = client
		logg.Info("Connected to container bucket", zap.String("bucket", cfg.Storage.Bucket))
	}

	store, err := container.OpenStore(cfg.Server.Backend, b.db, b.client, cfg.Storage)
	if err != nil {
		return nil, err
	}
	b.store = store
	return b, nil
}
