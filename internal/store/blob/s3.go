// Package blob implements the pipeline's BlobStore collaborator against an
// S3-compatible object store.
package blob

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// Config holds the connection details for the object store.
type Config struct {
	AccessKey string
	SecretKey string
	Region    string
	Endpoint  string // custom endpoint, e.g. a DigitalOcean Spaces region host
	CDNDomain string // optional CDN domain for publicUrl
}

// Store is the S3-backed BlobStore implementation.
type Store struct {
	client    *s3.Client
	region    string
	endpoint  string
	cdnDomain string
}

// New builds a Store from cfg, wiring a custom endpoint resolver so the
// same client works against AWS S3 or an S3-compatible provider.
func New(ctx context.Context, cfg Config) (*Store, error) {
	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		if service == s3.ServiceID && cfg.Endpoint != "" {
			return aws.Endpoint{
				URL:           cfg.Endpoint,
				SigningRegion: cfg.Region,
			}, nil
		}
		return aws.Endpoint{}, &aws.EndpointNotFoundError{}
	})

	awsConfig, err := config.LoadDefaultConfig(ctx,
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
		config.WithRegion(cfg.Region),
		config.WithEndpointResolverWithOptions(resolver),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		o.UsePathStyle = false
	})

	return &Store{
		client:    client,
		region:    cfg.Region,
		endpoint:  cfg.Endpoint,
		cdnDomain: cfg.CDNDomain,
	}, nil
}

// Upload stores content under bucket/path with the given content type.
func (s *Store) Upload(ctx context.Context, bucket, path string, content []byte, contentType string) error {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(path),
		Body:        bytes.NewReader(content),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s/%s: %w", bucket, path, err)
	}
	return nil
}

// Remove deletes every path under bucket in a single batched request.
func (s *Store) Remove(ctx context.Context, bucket string, paths []string) error {
	if len(paths) == 0 {
		return nil
	}
	objects := make([]types.ObjectIdentifier, 0, len(paths))
	for _, p := range paths {
		objects = append(objects, types.ObjectIdentifier{Key: aws.String(p)})
	}
	_, err := s.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
		Bucket: aws.String(bucket),
		Delete: &types.Delete{Objects: objects},
	})
	if err != nil {
		return fmt.Errorf("failed to remove %d object(s) from %s: %w", len(paths), bucket, err)
	}
	return nil
}

// SignedURL returns a time-limited presigned GET URL.
func (s *Store) SignedURL(ctx context.Context, bucket, path string, ttlSec int) (string, error) {
	presignClient := s3.NewPresignClient(s.client)
	result, err := presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(path),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = time.Duration(ttlSec) * time.Second
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate signed URL for %s/%s: %w", bucket, path, err)
	}
	return result.URL, nil
}

// PublicURL returns the CDN (or direct bucket) URL for a path. It never
// touches the network — it's a pure string composition.
func (s *Store) PublicURL(bucket, path string) string {
	if s.cdnDomain != "" {
		return fmt.Sprintf("https://%s/%s/%s", s.cdnDomain, bucket, path)
	}
	return fmt.Sprintf("https://%s.%s.amazonaws.com/%s", bucket, s.region, path)
}
