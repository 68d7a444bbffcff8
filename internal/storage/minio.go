package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"path"
	"time"

	"emoquiz-service/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// EvidenceStore keeps user-submitted evidence blobs (audio/video) in a
// MinIO bucket. Files are opaque to the service; it only hands back a
// durable public URL.
type EvidenceStore struct {
	client         *minio.Client
	bucket         string
	publicEndpoint string
}

func NewEvidenceStore(cfg config.MinIOConfig) (*EvidenceStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize MinIO client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.EvidenceBucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", cfg.EvidenceBucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.EvidenceBucket, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", cfg.EvidenceBucket, err)
		}
		log.Printf("Created bucket: %s", cfg.EvidenceBucket)
	}

	return &EvidenceStore{
		client:         client,
		bucket:         cfg.EvidenceBucket,
		publicEndpoint: cfg.PublicEndpoint,
	}, nil
}

// Upload stores one evidence file under the owner's prefix and returns its
// public URL. Object names are unique per upload; nothing is ever
// overwritten.
func (s *EvidenceStore) Upload(ctx context.Context, userID, filename, contentType string, reader io.Reader, size int64) (string, error) {
	objectName := fmt.Sprintf("%s/%s%s", userID, uuid.New().String(), path.Ext(filename))

	_, err := s.client.PutObject(ctx, s.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload evidence file: %w", err)
	}

	return fmt.Sprintf("%s/%s/%s", s.publicEndpoint, s.bucket, objectName), nil
}
