// Package container exposes stored chests to the reconcile engine.
//
// It provides the container backends, the service that serializes sorts per
// container, and the HTTP endpoints that trigger them.
//
// # Backends
//
//   - MemoryStore: process memory, the default.
//   - DBStore: the 'containers' and 'container_slots' tables through GORM.
//   - ObjectStore: zstd-compressed JSON documents in an S3/MinIO bucket.
//   - FileStore: a single YAML or JSON file, used by the CLI.
//
// Every backend is wrapped in a StoredContainer, which stages writes and only
// persists them on Commit. After committing it reloads the container, so the
// engine verifies what the backend actually stored.
//
// # Journal
//
// Backends implementing Journal (memory and object storage) receive a copy of
// the container before every sort. POST /containers/:id/restore writes the
// newest copy back.
//
// # Concurrency
//
// Sorts of one container are serialized by a keyed mutex. Identical requests
// that arrive while a sort is running share its result through singleflight.
//
// # Endpoints
//
//   - GET  /containers
//   - GET  /containers/:id
//   - PUT  /containers/:id
//   - POST /containers/:id/sort?mode=&dry_run=
//   - POST /containers/:id/interact
//   - POST /containers/:id/restore
package container
