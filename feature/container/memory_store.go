package container

import (
	"context"
	"slices"
	"sync"
	"time"

	"chest-sorter/core/server"
	"chest-sorter/feature/container/models"
)

// MemoryStore keeps containers in process memory.
// It is the default backend and the one used by tests.
type MemoryStore struct {
	mu      sync.RWMutex
	docs    map[string]*models.ContainerDocument
	journal map[string][]models.JournalEntry
	depth   int
}

// NewMemoryStore creates an empty store keeping depth journal entries per container.
func NewMemoryStore(depth int) *MemoryStore {
	if depth <= 0 {
		depth = 1
	}
	return &MemoryStore{
		docs:    make(map[string]*models.ContainerDocument),
		journal: make(map[string][]models.JournalEntry),
		depth:   depth,
	}
}

func (s *MemoryStore) Name() string {
	return server.BackendMemory
}

func (s *MemoryStore) Load(_ context.Context, id string) (*models.ContainerDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return doc.Clone(), nil
}

func (s *MemoryStore) Save(_ context.Context, doc *models.ContainerDocument) error {
	cp := doc.Clone()
	if err := cp.Normalize(); err != nil {
		return err
	}
	cp.UpdatedAt = time.Now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[cp.ID] = cp
	return nil
}

func (s *MemoryStore) List(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.docs))
	for id := range s.docs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids, nil
}

func (s *MemoryStore) Record(_ context.Context, entry models.JournalEntry) error {
	entry.Slots = entry.Slots.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	entries := append(s.journal[entry.ContainerID], entry)
	if len(entries) > s.depth {
		entries = entries[len(entries)-s.depth:]
	}
	s.journal[entry.ContainerID] = entries
	return nil
}

func (s *MemoryStore) Latest(_ context.Context, id string) (*models.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.journal[id]
	if len(entries) == 0 {
		return nil, ErrNotFound
	}
	latest := entries[len(entries)-1]
	latest.Slots = latest.Slots.Clone()
	return &latest, nil
}
