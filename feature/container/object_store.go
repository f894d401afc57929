package container

import (
	"context"
	"errors"
	"fmt"
	"path"
	"slices"
	"strings"
	"time"

	"chest-sorter/core/server"
	"chest-sorter/core/storage"
	"chest-sorter/feature/container/models"
)

const (
	// ContainersPrefix holds one compressed document per container.
	ContainersPrefix = "containers/"
	// JournalPrefix holds pre-sort snapshots, one folder per container.
	JournalPrefix = "journal/"

	objectSuffix = ".json.zst"
	contentType  = "application/zstd"
)

// ContainerKey returns the object key of a container document.
func ContainerKey(id string) string {
	return ContainersPrefix + id + objectSuffix
}

// journalKey returns a journal object key. The zero-padded timestamp keeps
// lexical and chronological order identical.
func journalKey(id string, t time.Time) string {
	return fmt.Sprintf("%s%s/%020d%s", JournalPrefix, id, t.UnixNano(), objectSuffix)
}

// ObjectStore keeps containers as zstd-compressed JSON documents in a bucket.
type ObjectStore struct {
	client storage.Client
	bucket string
	depth  int
}

// NewObjectStore creates an object storage backed store keeping depth
// journal entries per container.
func NewObjectStore(client storage.Client, bucket string, depth int) *ObjectStore {
	if depth <= 0 {
		depth = 1
	}
	return &ObjectStore{client: client, bucket: bucket, depth: depth}
}

func (s *ObjectStore) Name() string {
	return server.BackendStorage
}

func (s *ObjectStore) Load(ctx context.Context, id string) (*models.ContainerDocument, error) {
	data, err := storage.GetBytes(ctx, s.client, s.bucket, ContainerKey(id))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var doc models.ContainerDocument
	if err := decodeCompressed(data, &doc); err != nil {
		return nil, fmt.Errorf("container %s: %w", id, err)
	}
	doc.ID = id
	if err := doc.Normalize(); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (s *ObjectStore) Save(ctx context.Context, doc *models.ContainerDocument) error {
	cp := doc.Clone()
	if err := cp.Normalize(); err != nil {
		return err
	}
	cp.UpdatedAt = time.Now().UTC()

	data, err := encodeCompressed(cp)
	if err != nil {
		return fmt.Errorf("container %s: %w", cp.ID, err)
	}
	return storage.PutBytes(ctx, s.client, s.bucket, ContainerKey(cp.ID), data, contentType)
}

func (s *ObjectStore) List(ctx context.Context) ([]string, error) {
	keys, err := storage.ListKeys(ctx, s.client, s.bucket, ContainersPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list containers: %w", err)
	}
	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		if !strings.HasSuffix(k, objectSuffix) {
			continue
		}
		ids = append(ids, strings.TrimSuffix(strings.TrimPrefix(k, ContainersPrefix), objectSuffix))
	}
	slices.Sort(ids)
	return ids, nil
}

// Record uploads entry and prunes entries beyond the configured depth.
func (s *ObjectStore) Record(ctx context.Context, entry models.JournalEntry) error {
	data, err := encodeCompressed(entry)
	if err != nil {
		return fmt.Errorf("journal %s: %w", entry.ContainerID, err)
	}
	if err := storage.PutBytes(ctx, s.client, s.bucket, journalKey(entry.ContainerID, entry.TakenAt), data, contentType); err != nil {
		return err
	}

	keys, err := s.journalKeys(ctx, entry.ContainerID)
	if err != nil {
		return err
	}
	if len(keys) <= s.depth {
		return nil
	}
	return storage.RemoveKeys(ctx, s.client, s.bucket, keys[:len(keys)-s.depth])
}

// Latest downloads the newest journal entry of a container.
func (s *ObjectStore) Latest(ctx context.Context, id string) (*models.JournalEntry, error) {
	keys, err := s.journalKeys(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, ErrNotFound
	}

	data, err := storage.GetBytes(ctx, s.client, s.bucket, keys[len(keys)-1])
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var entry models.JournalEntry
	if err := decodeCompressed(data, &entry); err != nil {
		return nil, fmt.Errorf("journal %s: %w", id, err)
	}
	return &entry, nil
}

func (s *ObjectStore) journalKeys(ctx context.Context, id string) ([]string, error) {
	keys, err := storage.ListKeys(ctx, s.client, s.bucket, path.Join(JournalPrefix, id)+"/")
	if err != nil {
		return nil, fmt.Errorf("failed to list journal of %s: %w", id, err)
	}
	slices.Sort(keys)
	return keys, nil
}
