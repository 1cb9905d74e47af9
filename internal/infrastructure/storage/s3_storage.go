// Package storage provides object storage implementations for ledger documents.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/erp/ledger/internal/domain/ledger"
	infraconfig "github.com/erp/ledger/internal/infrastructure/config"
	"github.com/erp/ledger/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// Ensure S3DocumentStorage implements DocumentStorage
var _ ledger.DocumentStorage = (*S3DocumentStorage)(nil)

// ErrNoBucket is returned when Upload is given no bucket to try
var ErrNoBucket = errors.New("no storage bucket given")

// S3DocumentStorage stores ledger files in S3-compatible object storage
// (AWS S3, MinIO, RustFS). Logical bucket names map to configured ones.
type S3DocumentStorage struct {
	client        *s3.Client
	buckets       map[string]string
	publicBaseURL string
	logger        *zap.Logger
}

// S3DocumentStorageOption is a functional option for configuring S3DocumentStorage
type S3DocumentStorageOption func(*S3DocumentStorage)

// WithLogger sets a custom logger for S3DocumentStorage
func WithLogger(logger *zap.Logger) S3DocumentStorageOption {
	return func(s *S3DocumentStorage) {
		s.logger = logger
	}
}

// NewS3DocumentStorage creates a new S3DocumentStorage from configuration
func NewS3DocumentStorage(cfg *infraconfig.StorageConfig, opts ...S3DocumentStorageOption) (*S3DocumentStorage, error) {
	if cfg == nil {
		return nil, errors.New("storage configuration is required")
	}
	if cfg.PrimaryBucket == "" || cfg.FallbackBucket == "" {
		return nil, errors.New("storage buckets are required")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, errors.New("storage credentials are required")
	}

	endpoint := cfg.Endpoint
	if endpoint != "" && !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		scheme := "https://"
		if !cfg.UseSSL {
			scheme = "http://"
		}
		endpoint = scheme + endpoint
	}
	if endpoint != "" {
		if _, err := url.Parse(endpoint); err != nil {
			return nil, fmt.Errorf("invalid storage endpoint: %w", err)
		}
	}

	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	awsCfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion(region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})

	base := cfg.PublicBaseURL
	if base == "" {
		base = endpoint
	}

	storage := &S3DocumentStorage{
		client: client,
		buckets: map[string]string{
			ledger.BucketInvoices:  cfg.PrimaryBucket,
			ledger.BucketDocuments: cfg.FallbackBucket,
		},
		publicBaseURL: strings.TrimRight(base, "/"),
		logger:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(storage)
	}
	return storage, nil
}

// Upload puts data under key in the first bucket that accepts it. Each
// refusal is logged and the next bucket is tried.
func (s *S3DocumentStorage) Upload(ctx context.Context, buckets []string, key string, data []byte, contentType string) (string, error) {
	if key == "" {
		return "", errors.New("storage key is required")
	}
	if len(buckets) == 0 {
		return "", ErrNoBucket
	}

	var errs []error
	for _, logical := range buckets {
		bucket := s.resolve(logical)
		_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(bucket),
			Key:         aws.String(key),
			Body:        bytes.NewReader(data),
			ContentType: aws.String(contentType),
		})
		if err == nil {
			telemetry.RecordUpload(ctx, logical)
			return s.PublicURL(logical, key), nil
		}
		s.logger.Warn("Upload refused, trying next bucket",
			zap.String("bucket", bucket),
			zap.String("key", key),
			zap.Bool("no_such_bucket", isNoSuchBucket(err)),
			zap.Error(err))
		errs = append(errs, fmt.Errorf("bucket %s: %w", bucket, err))
	}
	return "", fmt.Errorf("failed to upload object: %w", errors.Join(errs...))
}

// PublicURL returns the address an uploaded object is served from
func (s *S3DocumentStorage) PublicURL(bucket, key string) string {
	return s.publicBaseURL + "/" + s.resolve(bucket) + "/" + strings.TrimLeft(key, "/")
}

// EnsureBuckets creates the configured buckets that do not exist yet
func (s *S3DocumentStorage) EnsureBuckets(ctx context.Context) error {
	for _, bucket := range s.buckets {
		_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(bucket)})
		if err == nil {
			continue
		}
		var notFound *types.NotFound
		if !errors.As(err, &notFound) && !isNoSuchBucket(err) {
			return fmt.Errorf("failed to check bucket %s: %w", bucket, err)
		}

		s.logger.Info("Creating storage bucket", zap.String("bucket", bucket))
		if _, err := s.client.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(bucket)}); err != nil {
			var alreadyOwned *types.BucketAlreadyOwnedByYou
			if errors.As(err, &alreadyOwned) {
				continue
			}
			return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
		}
	}
	return nil
}

func (s *S3DocumentStorage) resolve(logical string) string {
	if bucket, ok := s.buckets[logical]; ok {
		return bucket
	}
	return logical
}

func isNoSuchBucket(err error) bool {
	var noSuchBucket *types.NoSuchBucket
	return errors.As(err, &noSuchBucket) || strings.Contains(err.Error(), "NoSuchBucket")
}
