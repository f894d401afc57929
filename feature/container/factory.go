package container

import (
	"fmt"

	"chest-sorter/core/server"
	"chest-sorter/core/storage"

	"gorm.io/gorm"
)

// OpenStore builds the backend selected by backend. The database backend needs
// db and migrates it; the storage backend needs a client from storage.Open,
// whose bucket already exists.
func OpenStore(backend string, db *gorm.DB, client storage.Client, storageCfg storage.Config) (Store, error) {
	switch backend {
	case server.BackendMemory:
		return NewMemoryStore(storageCfg.JournalDepth), nil

	case server.BackendDatabase:
		if db == nil {
			return nil, fmt.Errorf("backend %s needs a database connection", backend)
		}
		store := NewDBStore(db)
		if err := store.Migrate(); err != nil {
			return nil, fmt.Errorf("failed to migrate container tables: %w", err)
		}
		return store, nil

	case server.BackendStorage:
		if client == nil {
			return nil, fmt.Errorf("backend %s needs a storage client", backend)
		}
		if storageCfg.Bucket == "" {
			return nil, fmt.Errorf("backend %s needs a bucket", backend)
		}
		return NewObjectStore(client, storageCfg.Bucket, storageCfg.JournalDepth), nil
	}
	return nil, fmt.Errorf("unknown container backend %q", backend)
}
