// Package s3 stores uploaded e-book files in S3-compatible object storage.
package s3

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/heartmarshall/lingoreader-backend/internal/config"
	"github.com/heartmarshall/lingoreader-backend/internal/provider"
)

// Storage wraps an S3 client bound to one bucket.
type Storage struct {
	client     *s3.Client
	presign    *s3.PresignClient
	bucket     string
	presignTTL time.Duration
	log        *slog.Logger
}

// New loads AWS credentials from the default chain and returns a Storage for
// cfg.Bucket. A non-empty cfg.Endpoint targets an S3-compatible service.
func New(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (*Storage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("s3: load aws config: %w", err)
	}

	return NewWithConfig(awsCfg, cfg, logger), nil
}

// NewWithConfig builds a Storage from an explicit aws.Config.
func NewWithConfig(awsCfg aws.Config, cfg config.StorageConfig, logger *slog.Logger) *Storage {
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.PathStyle
	})

	return &Storage{
		client:     client,
		presign:    s3.NewPresignClient(client),
		bucket:     cfg.Bucket,
		presignTTL: cfg.PresignTTL,
		log:        logger.With("adapter", "s3"),
	}
}

// Put uploads body under key.
func (s *Storage) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return fmt.Errorf("s3: put %s: %w", key, err)
	}

	s.log.InfoContext(ctx, "object stored", slog.String("key", key), slog.Int64("bytes", size))
	return nil
}

// Delete removes the object under key. Deleting a missing key is not an error.
func (s *Storage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("s3: delete %s: %w", key, err)
	}
	return nil
}

// PresignURL returns a time-limited download URL for key.
func (s *Storage) PresignURL(ctx context.Context, key string) (string, error) {
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.presignTTL))
	if err != nil {
		return "", fmt.Errorf("s3: presign %s: %w", key, err)
	}
	return req.URL, nil
}

// List returns every object whose key starts with prefix, following
// continuation tokens until the listing is complete.
func (s *Storage) List(ctx context.Context, prefix string) ([]provider.StoredObject, error) {
	p := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(prefix),
	})

	var out []provider.StoredObject
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("s3: list %s: %w", prefix, err)
		}
		for _, obj := range page.Contents {
			out = append(out, provider.StoredObject{
				Key:          aws.ToString(obj.Key),
				Size:         aws.ToInt64(obj.Size),
				LastModified: aws.ToTime(obj.LastModified),
			})
		}
	}

	return out, nil
}
