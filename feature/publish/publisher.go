package publish

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"corpus-builder/core/storage"
	"corpus-builder/feature/persist"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Options controls a publish run.
type Options struct {
	// CreateBucket creates the bucket when it does not exist yet.
	CreateBucket bool
	// Prune removes remote corpus files that no longer exist locally.
	Prune bool
	// DryRun lists what would change without touching the bucket contents.
	DryRun bool
}

// Report summarizes a publish run.
type Report struct {
	Uploaded []string `json:"uploaded"`
	Pruned   []string `json:"pruned"`
	Failed   []string `json:"failed"`
}

// Publisher mirrors a corpus directory into object storage.
type Publisher struct {
	client storage.Client
	cfg    storage.Config
	root   string
	logger *zap.Logger
}

// NewPublisher creates a publisher for the corpus rooted at root.
func NewPublisher(client storage.Client, cfg storage.Config, root string, logger *zap.Logger) *Publisher {
	return &Publisher{client: client, cfg: cfg, root: root, logger: logger}
}

// Publish uploads every corpus file, optionally pruning stale remote files.
// Individual upload failures are collected in the report; bucket-level failures abort.
func (p *Publisher) Publish(ctx context.Context, opts Options) (*Report, error) {
	if err := p.ensureBucket(ctx, opts); err != nil {
		return nil, err
	}

	files, err := p.localFiles()
	if err != nil {
		return nil, err
	}

	report := &Report{}
	local := make(map[string]struct{}, len(files))
	for _, rel := range files {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		key := p.cfg.ObjectKey(rel)
		local[key] = struct{}{}

		if opts.DryRun {
			report.Uploaded = append(report.Uploaded, key)
			continue
		}
		if err := p.upload(ctx, rel, key); err != nil {
			p.logger.Warn("Upload failed", zap.String("key", key), zap.Error(err))
			report.Failed = append(report.Failed, key)
			continue
		}
		report.Uploaded = append(report.Uploaded, key)
	}

	if opts.Prune {
		pruned, err := p.prune(ctx, local, opts.DryRun)
		if err != nil {
			return report, err
		}
		report.Pruned = pruned
	}

	p.logger.Info("Corpus published",
		zap.String("bucket", p.cfg.Bucket),
		zap.Int("uploaded", len(report.Uploaded)),
		zap.Int("pruned", len(report.Pruned)),
		zap.Int("failed", len(report.Failed)),
		zap.Bool("dry_run", opts.DryRun))
	return report, nil
}

func (p *Publisher) ensureBucket(ctx context.Context, opts Options) error {
	exists, err := p.client.BucketExists(ctx, p.cfg.Bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}
	if !opts.CreateBucket || opts.DryRun {
		return fmt.Errorf("bucket %s does not exist", p.cfg.Bucket)
	}
	if err := p.client.MakeBucket(ctx, p.cfg.Bucket, minio.MakeBucketOptions{Region: p.cfg.Region}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", p.cfg.Bucket, err)
	}
	p.logger.Info("Created bucket", zap.String("bucket", p.cfg.Bucket))
	return nil
}

// localFiles returns slash-separated paths of the corpus files, sorted.
// Only files following the corpus naming scheme are published.
func (p *Publisher) localFiles() ([]string, error) {
	var files []string
	for _, folder := range RequiredFolders {
		dir := filepath.Join(p.root, folder)
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if os.IsNotExist(err) && path == dir {
					return fs.SkipDir
				}
				return err
			}
			if d.IsDir() {
				return nil
			}
			if _, ok := persist.ParseFileName(d.Name()); !ok {
				return nil
			}
			rel, err := filepath.Rel(p.root, path)
			if err != nil {
				return err
			}
			files = append(files, filepath.ToSlash(rel))
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
		}
	}
	sort.Strings(files)
	return files, nil
}

func (p *Publisher) upload(ctx context.Context, rel, key string) error {
	f, err := os.Open(filepath.Join(p.root, filepath.FromSlash(rel)))
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	_, err = p.client.PutObject(ctx, p.cfg.Bucket, key, f, info.Size(), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	return err
}

// prune removes remote corpus files under the required folders that are not in local.
func (p *Publisher) prune(ctx context.Context, local map[string]struct{}, dryRun bool) ([]string, error) {
	var stale []minio.ObjectInfo
	for _, folder := range RequiredFolders {
		err := listFolder(ctx, p.client, p.cfg, folder, minio.ListObjectsOptions{Recursive: true}, func(obj minio.ObjectInfo) bool {
			if strings.HasSuffix(obj.Key, "/") {
				return true
			}
			if _, ok := local[obj.Key]; !ok {
				stale = append(stale, obj)
			}
			return true
		})
		if err != nil {
			return nil, err
		}
	}

	keys := make([]string, 0, len(stale))
	for _, obj := range stale {
		keys = append(keys, obj.Key)
	}
	if dryRun || len(stale) == 0 {
		return keys, nil
	}

	objectsCh := make(chan minio.ObjectInfo)
	go func() {
		defer close(objectsCh)
		for _, obj := range stale {
			select {
			case objectsCh <- obj:
			case <-ctx.Done():
				return
			}
		}
	}()

	var failed int
	for rErr := range p.client.RemoveObjects(ctx, p.cfg.Bucket, objectsCh, minio.RemoveObjectsOptions{}) {
		failed++
		p.logger.Warn("Prune failed", zap.String("key", rErr.ObjectName), zap.Error(rErr.Err))
	}
	if failed > 0 {
		return keys, fmt.Errorf("failed to prune %d objects", failed)
	}
	return keys, nil
}
