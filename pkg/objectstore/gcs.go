package objectstore

import (
	"context"
	"fmt"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
)

// GCSStore implements Store on top of a Google Cloud Storage bucket.
// Object ids are the generated bucket keys; URLs are public object URLs.
type GCSStore struct {
	client *storage.Client
	bucket string
}

// NewGCSStore creates a GCS-backed object store for the given bucket.
func NewGCSStore(ctx context.Context, bucket string) (*GCSStore, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	return &GCSStore{client: client, bucket: bucket}, nil
}

func (s *GCSStore) Store(ctx context.Context, data []byte, contentType string) (*Object, error) {
	key := uuid.NewString()

	w := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := w.Write(data); err != nil {
		w.Close()
		return nil, fmt.Errorf("write object %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finalize object %s: %w", key, err)
	}

	return &Object{
		URL: fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, key),
		ID:  key,
	}, nil
}

func (s *GCSStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Bucket(s.bucket).Object(id).Delete(ctx); err != nil {
		return fmt.Errorf("delete object %s: %w", id, err)
	}
	return nil
}
