package bundle

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ODNZSL/nzsl-dictionary-scripts/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Publisher uploads the distribution artifacts (the flat file, the SQLite
// database, and the processed image bundle) to object storage, where the
// app build jobs pick them up.
type Publisher struct {
	client storage.Client
	bucket string
	log    *zap.Logger
}

// NewPublisher creates a publisher targeting bucket.
func NewPublisher(client storage.Client, bucket string, log *zap.Logger) *Publisher {
	return &Publisher{client: client, bucket: bucket, log: log}
}

// Publish uploads datFile and dbFile plus every file under assetsDir.
// The bucket is created if it does not exist. Returns the number of objects
// uploaded.
func (p *Publisher) Publish(ctx context.Context, datFile, dbFile, assetsDir string) (int, error) {
	exists, err := p.client.BucketExists(ctx, p.bucket)
	if err != nil {
		return 0, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := p.client.MakeBucket(ctx, p.bucket, minio.MakeBucketOptions{}); err != nil {
			return 0, fmt.Errorf("failed to create bucket %s: %w", p.bucket, err)
		}
		p.log.Info("created bucket", zap.String("bucket", p.bucket))
	}

	uploaded := 0
	for _, path := range []string{datFile, dbFile} {
		if err := p.uploadFile(ctx, path, filepath.Base(path)); err != nil {
			return uploaded, err
		}
		uploaded++
	}

	entries, err := os.ReadDir(assetsDir)
	if err != nil {
		return uploaded, fmt.Errorf("failed to list assets folder: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		object := "assets/" + e.Name()
		if err := p.uploadFile(ctx, filepath.Join(assetsDir, e.Name()), object); err != nil {
			return uploaded, err
		}
		uploaded++
	}

	p.log.Info("published artifact bundle",
		zap.String("bucket", p.bucket),
		zap.Int("objects", uploaded),
	)
	return uploaded, nil
}

func (p *Publisher) uploadFile(ctx context.Context, path, object string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	if _, err := p.client.PutObject(ctx, p.bucket, object, f, info.Size(), minio.PutObjectOptions{}); err != nil {
		return fmt.Errorf("failed to upload %s: %w", object, err)
	}
	p.log.Info("uploaded object", zap.String("object", object), zap.Int64("bytes", info.Size()))
	return nil
}
