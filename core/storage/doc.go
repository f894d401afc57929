// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the Client interface so container documents
// and the rollback journal can live in AWS S3 or a self-hosted MinIO instance,
// and so tests can swap in the mock from core/storage/mocks.
//
// # Helpers
//
//   - Open / Prepare: validate the Config (endpoint and bucket), create the
//     client and make sure the container bucket exists.
//   - Config.Host: strips the endpoint scheme; https:// implies TLS.
//   - EnsureBucket: creates the target bucket when missing.
//   - PutBytes / GetBytes: whole-object upload and download; GetBytes maps
//     NoSuchKey to ErrNotFound.
//   - ListKeys / RemoveKeys: prefix listing and batch deletion, used for
//     journal pruning and the structure integrity check.
//
// # Usage
//
//	client, err := storage.Open(ctx, cfg.Storage)
package storage
