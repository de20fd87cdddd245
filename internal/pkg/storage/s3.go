package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Lupao-eth/trip-task/internal/pkg/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// BlobStore uploads binary content under booking-scoped keys and returns
// durable retrieval URLs
type BlobStore interface {
	Upload(ctx context.Context, bookingID uuid.UUID, filename, contentType string, body io.Reader) (string, error)
}

// S3Client is an S3-compatible blob store client
type S3Client struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

// NewS3Client creates a new blob store client from configuration
func NewS3Client(cfg models.StorageConfig) (*S3Client, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("storage bucket is required")
	}

	client := s3.New(s3.Options{
		Region:       cfg.Region,
		BaseEndpoint: aws.String(cfg.Endpoint),
		UsePathStyle: true,
		Credentials:  credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
	})

	return &S3Client{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
	}, nil
}

// Upload stores the blob under a booking-scoped key and returns its URL
func (s *S3Client) Upload(ctx context.Context, bookingID uuid.UUID, filename, contentType string, body io.Reader) (string, error) {
	key := objectKey(bookingID, filename)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload blob: %w", err)
	}

	return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, key), nil
}

// objectKey builds a booking-scoped object key. The timestamp prefix keeps
// keys unique when the same filename is uploaded twice.
func objectKey(bookingID uuid.UUID, filename string) string {
	return fmt.Sprintf("bookings/%s/%d-%s", bookingID, time.Now().UnixNano(), sanitizeFilename(filename))
}

// sanitizeFilename strips path separators from user-supplied filenames
func sanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	if name == "" {
		name = "upload"
	}
	return name
}
