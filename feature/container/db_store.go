package container

import (
	"context"
	"errors"
	"fmt"
	"time"

	"chest-sorter/core/reconcile"
	"chest-sorter/core/server"
	"chest-sorter/feature/container/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DBStore keeps containers in the 'containers' and 'container_slots' tables.
type DBStore struct {
	db *gorm.DB
}

// NewDBStore creates a database backed store.
func NewDBStore(db *gorm.DB) *DBStore {
	return &DBStore{db: db}
}

// Migrate creates or updates the container tables.
func (s *DBStore) Migrate() error {
	return s.db.AutoMigrate(&models.ContainerRecord{}, &models.ContainerSlot{})
}

func (s *DBStore) Name() string {
	return server.BackendDatabase
}

func (s *DBStore) Load(ctx context.Context, id string) (*models.ContainerDocument, error) {
	db := s.db.WithContext(ctx)

	var rec models.ContainerRecord
	if err := db.Where("id = ?", id).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load container %s: %w", id, err)
	}

	if rec.Size <= 0 {
		return nil, fmt.Errorf("container %s has invalid size %d", id, rec.Size)
	}

	var rows []models.ContainerSlot
	if err := db.Where("container_id = ?", id).Order("slot").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load slots of %s: %w", id, err)
	}

	doc := &models.ContainerDocument{
		ID:        rec.ID,
		Size:      rec.Size,
		Slots:     make([]*reconcile.ItemStack, rec.Size),
		Unloaded:  rec.Unloaded,
		UpdatedAt: rec.UpdatedAt,
	}
	for _, row := range rows {
		// Rows outside the declared size make the container unusable rather
		// than silently disappearing from the sort.
		if row.Slot < 0 || row.Slot >= rec.Size {
			return nil, fmt.Errorf("container %s has slot %d outside size %d", id, row.Slot, rec.Size)
		}
		stack, err := row.ToStack()
		if err != nil {
			return nil, fmt.Errorf("container %s: %w", id, err)
		}
		doc.Slots[row.Slot] = stack
	}
	if err := doc.Normalize(); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *DBStore) Save(ctx context.Context, doc *models.ContainerDocument) error {
	cp := doc.Clone()
	if err := cp.Normalize(); err != nil {
		return err
	}

	rows := make([]models.ContainerSlot, 0, len(cp.Slots))
	for i, stack := range cp.Slots {
		if stack == nil {
			continue
		}
		row, err := models.NewSlot(cp.ID, i, stack)
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}

	rec := models.ContainerRecord{
		ID:        cp.ID,
		Size:      cp.Size,
		Unloaded:  cp.Unloaded,
		UpdatedAt: time.Now().UTC(),
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rec).Error; err != nil {
			return fmt.Errorf("failed to save container %s: %w", cp.ID, err)
		}
		if err := tx.Where("container_id = ?", cp.ID).Delete(&models.ContainerSlot{}).Error; err != nil {
			return fmt.Errorf("failed to clear slots of %s: %w", cp.ID, err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to write slots of %s: %w", cp.ID, err)
		}
		return nil
	})
}

func (s *DBStore) List(ctx context.Context) ([]string, error) {
	var ids []string
	if err := s.db.WithContext(ctx).Model(&models.ContainerRecord{}).Order("id").Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list containers: %w", err)
	}
	return ids, nil
}
