// Package storage uploads snapshot files to an S3-compatible object store.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"

	"github.com/pathsnap/pathsnap/internal/apperr"
	"github.com/pathsnap/pathsnap/internal/config"
)

// Client uploads objects to one bucket on an S3-compatible endpoint.
type Client struct {
	client   *s3.Client
	bucket   string
	endpoint string
}

// New builds a client for the given storage config. Returns nil, nil when the
// config is absent or incomplete; callers treat a nil client as unconfigured
// and report the missing variable themselves.
func New(cfg *config.StorageConfig) (*Client, error) {
	if cfg == nil || cfg.Endpoint == "" || cfg.Bucket == "" || cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, nil
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	creds := credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
	client := s3.NewFromConfig(aws.Config{
		Region:      region,
		Credentials: aws.NewCredentialsCache(creds),
	}, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = true
	})
	return &Client{
		client:   client,
		bucket:   cfg.Bucket,
		endpoint: strings.TrimRight(cfg.Endpoint, "/"),
	}, nil
}

// EnsureBucket creates the bucket if it does not exist (HeadBucket fails →
// CreateBucket).
func (c *Client) EnsureBucket(ctx context.Context) error {
	if c == nil {
		return nil
	}
	_, err := c.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(c.bucket)})
	if err == nil {
		return nil
	}
	_, createErr := c.client.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(c.bucket)})
	if createErr != nil {
		var apiErr smithy.APIError
		if errors.As(createErr, &apiErr) {
			switch apiErr.ErrorCode() {
			case "BucketAlreadyOwnedByYou", "BucketAlreadyExists":
				return nil
			}
		}
		return fmt.Errorf("create bucket %s: %w", c.bucket, createErr)
	}
	return nil
}

// UploadFile uploads the file at localPath under key, overwriting any
// existing object, and returns the object's URL. Remote failures wrap
// apperr.ErrRemoteStorage.
func (c *Client) UploadFile(ctx context.Context, localPath, key string) (string, error) {
	if c == nil {
		return "", fmt.Errorf("storage client not configured: %w", apperr.ErrConfigMissing)
	}
	data, err := os.ReadFile(localPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("local file %s: %w", localPath, apperr.ErrNotFound)
		}
		return "", fmt.Errorf("read %s: %w", localPath, err)
	}
	_, err = c.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("put object %s: %s: %s: %w", key, apiErr.ErrorCode(), apiErr.ErrorMessage(), apperr.ErrRemoteStorage)
		}
		return "", fmt.Errorf("put object %s: %v: %w", key, err, apperr.ErrRemoteStorage)
	}
	return c.ObjectURL(key), nil
}

// ObjectURL returns the path-style URL for key on this client's endpoint.
func (c *Client) ObjectURL(key string) string {
	return c.endpoint + "/" + c.bucket + "/" + key
}
