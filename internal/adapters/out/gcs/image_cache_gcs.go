// internal/adapters/out/gcs/image_cache_gcs.go
package gcs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
)

// ImageCacheGCS persists cached product images in a GCS bucket so cache
// warm-up survives instance restarts. Object name = cache key.
type ImageCacheGCS struct {
	Client *storage.Client
	Bucket string
}

func NewImageCacheGCS(client *storage.Client, bucket string) *ImageCacheGCS {
	return &ImageCacheGCS{Client: client, Bucket: strings.TrimSpace(bucket)}
}

func (r *ImageCacheGCS) bucketName() (string, error) {
	if r == nil || r.Client == nil {
		return "", errors.New("image_cache_gcs: storage client is nil")
	}
	if r.Bucket == "" {
		return "", errors.New("image_cache_gcs: bucket is empty")
	}
	return r.Bucket, nil
}

// Get reads a cached image. A missing object is a miss, not an error.
func (r *ImageCacheGCS) Get(ctx context.Context, key string) ([]byte, string, bool, error) {
	b, err := r.bucketName()
	if err != nil {
		return nil, "", false, err
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return nil, "", false, errors.New("image_cache_gcs: key is empty")
	}

	obj := r.Client.Bucket(b).Object(key)

	rd, err := obj.NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, "", false, nil
		}
		return nil, "", false, fmt.Errorf("image_cache_gcs: open %q: %w", key, err)
	}
	defer rd.Close()

	data, err := io.ReadAll(rd)
	if err != nil {
		return nil, "", false, fmt.Errorf("image_cache_gcs: read %q: %w", key, err)
	}

	ct := rd.Attrs.ContentType
	if ct == "" {
		ct = "application/octet-stream"
	}
	return data, ct, true, nil
}

// Put stores an image under key with its content type.
func (r *ImageCacheGCS) Put(ctx context.Context, key string, data []byte, contentType string) error {
	b, err := r.bucketName()
	if err != nil {
		return err
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("image_cache_gcs: key is empty")
	}

	w := r.Client.Bucket(b).Object(key).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return fmt.Errorf("image_cache_gcs: write %q: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("image_cache_gcs: close %q: %w", key, err)
	}
	return nil
}
