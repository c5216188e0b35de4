package publish

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"corpus-builder/core/storage"
	"corpus-builder/feature/persist"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// RequiredFolders lists the corpus folders that must exist under the bucket prefix.
var RequiredFolders = []string{
	string(persist.KindMap), string(persist.KindMonster), string(persist.KindItem),
}

// CheckStructure returns the required folders missing from the bucket.
func CheckStructure(ctx context.Context, client storage.Client, cfg storage.Config) ([]string, error) {
	var missing []string

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", cfg.Bucket)
	}

	for _, folder := range RequiredFolders {
		found := false
		err := listFolder(ctx, client, cfg, folder, minio.ListObjectsOptions{MaxKeys: 1}, func(minio.ObjectInfo) bool {
			found = true
			return false
		})
		if err != nil {
			return nil, err
		}
		if !found {
			missing = append(missing, folder)
		}
	}

	return missing, nil
}

// FixStructure creates folder markers for the missing folders.
func FixStructure(ctx context.Context, client storage.Client, cfg storage.Config, logger *zap.Logger, missing []string) error {
	for _, folder := range missing {
		_, err := client.PutObject(ctx, cfg.Bucket, folderKey(cfg, folder), bytes.NewReader([]byte{}), 0, minio.PutObjectOptions{})
		if err != nil {
			logger.Error("Failed to create folder", zap.String("folder", folder), zap.Error(err))
			return fmt.Errorf("failed to create folder %s: %w", folder, err)
		}
		logger.Info("Created missing folder", zap.String("folder", folder))
	}
	return nil
}

// listFolder calls fn for each object under folder until fn returns false. The
// listing is cancelled when listFolder returns, which stops the lister goroutine.
func listFolder(ctx context.Context, client storage.Client, cfg storage.Config, folder string, opts minio.ListObjectsOptions, fn func(minio.ObjectInfo) bool) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts.Prefix = folderKey(cfg, folder)
	for obj := range client.ListObjects(ctx, cfg.Bucket, opts) {
		if obj.Err != nil {
			return fmt.Errorf("failed to list %s: %w", folder, obj.Err)
		}
		if !fn(obj) {
			return nil
		}
	}
	return nil
}

func folderKey(cfg storage.Config, folder string) string {
	key := cfg.ObjectKey(folder)
	if !strings.HasSuffix(key, "/") {
		key += "/"
	}
	return key
}
