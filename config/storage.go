package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const s3Scheme = "s3://"

// S3Config holds S3 client and bucket info
type S3Config struct {
	Client     *s3.Client
	BucketName string
	Expiration time.Duration
}

// NewS3Config initializes the S3 client from the default AWS credential chain
func NewS3Config(ctx context.Context, bucket, region string) (*S3Config, error) {
	if bucket == "" {
		return nil, fmt.Errorf("S3 bucket name is required")
	}

	opts := []func(*awsconfig.LoadOptions) error{}
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return NewS3ConfigFromAWS(awsCfg, bucket), nil
}

// NewS3ConfigFromAWS builds an S3Config from an already loaded AWS config.
func NewS3ConfigFromAWS(awsCfg aws.Config, bucket string) *S3Config {
	return &S3Config{
		Client:     s3.NewFromConfig(awsCfg),
		BucketName: bucket,
		Expiration: time.Hour,
	}
}

// ParseS3URI splits an s3://bucket/key reference. ok is false for anything else.
func ParseS3URI(ref string) (bucket, key string, ok bool) {
	if !strings.HasPrefix(ref, s3Scheme) {
		return "", "", false
	}
	bucket, key, found := strings.Cut(strings.TrimPrefix(ref, s3Scheme), "/")
	if !found || bucket == "" || key == "" {
		return "", "", false
	}
	return bucket, key, true
}

// ResolveImageURL turns an s3:// reference into a presigned GET URL. Plain
// URLs, and references to buckets other than the configured one, are returned
// unchanged.
func (s *S3Config) ResolveImageURL(ctx context.Context, ref string) (string, error) {
	bucket, key, ok := ParseS3URI(ref)
	if !ok || bucket != s.BucketName {
		return ref, nil
	}
	return s.presign(ctx, bucket, key, s.Expiration)
}

func (s *S3Config) presign(ctx context.Context, bucket, key string, expiration time.Duration) (string, error) {
	presignClient := s3.NewPresignClient(s.Client)
	presigned, err := presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expiration))
	if err != nil {
		return "", fmt.Errorf("failed to presign %s/%s: %w", bucket, key, err)
	}
	return presigned.URL, nil
}
