package integrity

import (
	"context"
	"fmt"

	"chest-sorter/core/server"
	"chest-sorter/core/storage"
	"chest-sorter/feature/container"
	"chest-sorter/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks. The storage client and database are
// optional; checks needing a missing one report an error.
type Service struct {
	client storage.Client
	bucket string
	logger *zap.Logger
	db     *gorm.DB
	store  container.Store
}

// NewService creates a new integrity service.
func NewService(client storage.Client, bucket string, logger *zap.Logger, db *gorm.DB, store container.Store) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client: client,
		bucket: bucket,
		logger: logger,
		db:     db,
		store:  store,
	}
}

// CheckStructure returns a list of missing folders.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	if s.client == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	return checks.CheckStructure(ctx, s.client, s.bucket)
}

// FixStructure creates the missing folders.
func (s *Service) FixStructure(ctx context.Context, missing []string) error {
	if s.client == nil {
		return fmt.Errorf("storage is not configured")
	}
	return checks.FixStructure(ctx, s.client, s.bucket, s.logger, missing)
}

// CheckServer verifies the container tables.
func (s *Service) CheckServer() (*checks.ServerReport, error) {
	return checks.CheckServerIntegrity(s.db)
}

// CheckContents inspects every stored container of the active backend.
func (s *Service) CheckContents(ctx context.Context) (*checks.ContentsReport, error) {
	if s.store == nil {
		return nil, fmt.Errorf("no container store configured")
	}
	report, err := checks.CheckContents(ctx, s.store)
	if err != nil {
		return nil, err
	}

	// Orphaned rows are invisible to the store, so the database is scanned directly.
	if s.db != nil && s.store.Name() == server.BackendDatabase {
		orphans, err := checks.CheckOrphanSlots(s.db.WithContext(ctx))
		if err != nil {
			return nil, err
		}
		report.Issues = append(report.Issues, orphans...)
	}
	return report, nil
}
