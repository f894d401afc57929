package container

import (
	"context"
	"errors"

	"chest-sorter/feature/container/models"
)

var (
	// ErrNotFound is returned when a container id is unknown to the store.
	ErrNotFound = errors.New("container not found")
	// ErrNoJournal is returned when the backend keeps no rollback journal.
	ErrNoJournal = errors.New("backend keeps no journal")
)

// Store persists container documents.
type Store interface {
	// Name identifies the backend in logs and reports.
	Name() string
	// Load returns a normalized copy of the stored document.
	Load(ctx context.Context, id string) (*models.ContainerDocument, error)
	// Save replaces the stored document.
	Save(ctx context.Context, doc *models.ContainerDocument) error
	// List returns the ids of every stored container.
	List(ctx context.Context) ([]string, error)
}

// Journal is implemented by stores that keep pre-sort snapshots.
type Journal interface {
	// Record stores entry as the newest snapshot of its container.
	Record(ctx context.Context, entry models.JournalEntry) error
	// Latest returns the newest snapshot of a container.
	Latest(ctx context.Context, id string) (*models.JournalEntry, error)
}
