// Package storage provides an abstraction layer for the object storage the corpus is
// published to.
//
// It wraps the MinIO Go client behind a small interface covering bucket checks,
// uploads, listings and bulk deletes. Both AWS S3 and self-hosted MinIO work.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - MakeBucket: Creates the bucket on first publish.
//   - PutObject: Uploads a corpus file.
//   - ListObjects: Lists objects under a prefix.
//   - RemoveObjects: Prunes objects no longer present locally.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
//	key := cfg.Storage.ObjectKey("maps/100000000_henesys.json")
package storage
