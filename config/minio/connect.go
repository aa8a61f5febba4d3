package minio

import (
	"context"
	"fmt"
	"time"

	"ticketdesk/config"

	minioclient "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const connectTimeout = 5 * time.Second

// Connect creates a MinIO client and verifies connectivity by listing buckets.
func Connect(ctx context.Context, cfg config.StorageConfig) (*minioclient.Client, error) {
	client, err := minioclient.New(cfg.Endpoint, &minioclient.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	checkCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if _, err := client.ListBuckets(checkCtx); err != nil {
		return nil, fmt.Errorf("failed to connect to MinIO: %w", err)
	}

	return client, nil
}
