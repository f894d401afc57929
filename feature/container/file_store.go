package container

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"chest-sorter/feature/container/models"

	"gopkg.in/yaml.v3"
)

// FileStore exposes a single YAML or JSON container file as a store.
// The CLI uses it to sort fixtures and exported chests offline.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// ID is the container id of the file: its base name without extension,
// sanitized so that names like "my chest.yaml" still yield a valid id.
func (s *FileStore) ID() string {
	base := filepath.Base(s.path)
	return SanitizeID(strings.TrimSuffix(base, filepath.Ext(base)))
}

func (s *FileStore) Name() string {
	return "file"
}

func (s *FileStore) Load(_ context.Context, id string) (*models.ContainerDocument, error) {
	doc, err := ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	if id != "" && id != doc.ID {
		return nil, ErrNotFound
	}
	return doc, nil
}

func (s *FileStore) Save(_ context.Context, doc *models.ContainerDocument) error {
	return WriteFile(s.path, doc)
}

func (s *FileStore) List(_ context.Context) ([]string, error) {
	doc, err := ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	return []string{doc.ID}, nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// ReadFile decodes a container document from a YAML or JSON file.
// A document without an id takes the file's base name.
func ReadFile(path string) (*models.ContainerDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var doc models.ContainerDocument
	if isYAML(path) {
		err = yaml.Unmarshal(data, &doc)
	} else {
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if doc.ID == "" {
		doc.ID = NewFileStore(path).ID()
	}
	if err := doc.Normalize(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// WriteFile encodes doc in the format implied by the file extension.
func WriteFile(path string, doc *models.ContainerDocument) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(doc)
	} else {
		data, err = json.MarshalIndent(doc, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
