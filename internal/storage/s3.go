package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"firecatalog/pkg/types"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// ImageStorage keeps truck photo blobs in an S3-compatible bucket, keyed by
// generated storage keys independent of any database id.
type ImageStorage struct {
	client *s3.Client
	bucket string
}

func NewImageStorage(client *s3.Client, bucket string) *ImageStorage {
	return &ImageStorage{
		client: client,
		bucket: bucket,
	}
}

// Object is a fetched blob plus the content metadata it was stored with.
// Callers own closing Body.
type Object struct {
	Body          io.ReadCloser
	ContentType   string
	ContentLength int64
	ETag          string
}

// Put writes the raw byte stream under key with its content type.
func (s *ImageStorage) Put(ctx context.Context, key string, body io.Reader, contentType string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("put object %s: %w", key, err)
	}

	return nil
}

// Get fetches the blob stored under key. A missing key returns
// types.ErrObjectNotFound; anything else surfaces as-is.
func (s *ImageStorage) Get(ctx context.Context, key string) (*Object, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *s3types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, types.ErrObjectNotFound
		}
		return nil, fmt.Errorf("get object %s: %w", key, err)
	}

	return &Object{
		Body:          out.Body,
		ContentType:   aws.ToString(out.ContentType),
		ContentLength: aws.ToInt64(out.ContentLength),
		ETag:          aws.ToString(out.ETag),
	}, nil
}
