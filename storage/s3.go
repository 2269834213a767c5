package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/techconnect/site-backend/config"
	"github.com/techconnect/site-backend/errs"
)

// S3Store implements ObjectStore on an S3-compatible bucket.
type S3Store struct {
	client    *s3.Client
	bucket    string
	publicURL string
	logger    zerolog.Logger
}

// NewS3Store builds an S3Store from the process config map. A custom endpoint
// (S3_ENDPOINT) switches the client to path-style addressing, which covers
// S3-compatible stores such as MinIO or Supabase storage gateways.
func NewS3Store(ctx context.Context, c map[string]string) (*S3Store, error) {
	bucket := config.GetString(c, "S3_BUCKET", "project-images")
	region := config.GetString(c, "S3_REGION", "us-east-1")
	endpoint := config.GetString(c, "S3_ENDPOINT", "")
	accessKey := config.GetString(c, "S3_ACCESS_KEY", "")
	secretKey := config.GetString(c, "S3_SECRET_KEY", "")

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
	}
	if accessKey != "" && secretKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("loading S3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	publicURL := config.GetString(c, "S3_PUBLIC_URL", "")
	if publicURL == "" {
		if endpoint != "" {
			publicURL = fmt.Sprintf("%s/%s", strings.TrimSuffix(endpoint, "/"), bucket)
		} else {
			publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
		}
	}

	return &S3Store{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimSuffix(publicURL, "/"),
		logger:    log.With().Str("component", "s3Store").Logger(),
	}, nil
}

func (s *S3Store) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("uploading %s: %w", key, err)
	}

	s.logger.Debug().Str("key", key).Msg("uploaded object")
	return fmt.Sprintf("%s/%s", s.publicURL, key), nil
}

// Remove deletes the blob at key. S3 deletes are idempotent, so a HeadObject
// probe first makes a missing blob distinguishable from other failures.
func (s *S3Store) Remove(ctx context.Context, key string) error {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return fmt.Errorf("object %s: %w", key, errs.ErrBlobNotFound)
		}
		return fmt.Errorf("checking %s: %w", key, err)
	}

	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return fmt.Errorf("deleting %s: %w", key, err)
	}

	s.logger.Debug().Str("key", key).Msg("deleted object")
	return nil
}

func isNotFound(err error) bool {
	var notFound *types.NotFound
	if errors.As(err, &notFound) {
		return true
	}
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.ErrorCode()
		return code == "NotFound" || code == "NoSuchKey"
	}
	return false
}
