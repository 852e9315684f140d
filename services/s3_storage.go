// Package services holds the application's business logic.
// File: services/s3_storage.go
package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"courtside/logger"
	"courtside/models"
)

// ObjectPutter is the one S3 call the storage backend makes. *s3.S3
// satisfies it; tests substitute a fake.
type ObjectPutter interface {
	PutObjectWithContext(ctx aws.Context, input *s3.PutObjectInput, opts ...request.Option) (*s3.PutObjectOutput, error)
}

// S3PhotoStorage uploads photos to a public S3 bucket.
type S3PhotoStorage struct {
	client        ObjectPutter
	bucket        string
	region        string
	prefix        string
	publicBaseURL string
}

// NewS3Client builds the shared S3 client. Static credentials are used
// when configured, otherwise the SDK's default provider chain applies.
func NewS3Client(region, accessKeyID, secretAccessKey string) (*s3.S3, error) {
	cfg := aws.NewConfig().WithRegion(region)
	if accessKeyID != "" {
		cfg = cfg.WithCredentials(credentials.NewStaticCredentials(accessKeyID, secretAccessKey, ""))
	}

	sess, err := session.NewSession(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating aws session: %w", err)
	}
	return s3.New(sess), nil
}

// NewS3PhotoStorage creates an S3 storage backend writing under the
// given key prefix. The bucket must not be blank.
func NewS3PhotoStorage(client ObjectPutter, bucket, region, prefix, publicBaseURL string) (*S3PhotoStorage, error) {
	if bucket == "" {
		return nil, fmt.Errorf("s3 bucket is not configured")
	}
	return &S3PhotoStorage{
		client:        client,
		bucket:        bucket,
		region:        region,
		prefix:        prefix,
		publicBaseURL: publicBaseURL,
	}, nil
}

// Store uploads the photo as a public-read object and returns its URL.
func (s *S3PhotoStorage) Store(ctx context.Context, content []byte, originalFilename, contentType string) (string, error) {
	if len(content) == 0 {
		return "", models.ErrEmptyUpload
	}

	key := s.prefix + randomFilename(originalFilename)

	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(content),
		ContentType: aws.String(contentType),
		ACL:         aws.String(s3.ObjectCannedACLPublicRead),
	}
	if _, err := s.client.PutObjectWithContext(ctx, input); err != nil {
		logger.Error.Printf("Failed to store photo in S3 bucket %s: %v", s.bucket, err)
		return "", fmt.Errorf("storing photo in s3: %w", err)
	}

	url := s.publicURL(key)
	logger.Info.Printf("Stored photo in S3 at key %s (url=%s)", key, url)
	return url, nil
}

// publicURL prefers the configured base URL (CloudFront or a custom
// domain); otherwise it falls back to the virtual-hosted-style bucket URL.
func (s *S3PhotoStorage) publicURL(key string) string {
	if s.publicBaseURL != "" {
		return strings.TrimSuffix(s.publicBaseURL, "/") + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
