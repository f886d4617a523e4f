package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ObjectAPI is the subset of *s3.Client used here.
type ObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3TextSource implements TextSource backed by S3
type S3TextSource struct {
	bucket string
	key    string
	s3     ObjectAPI
}

func NewS3TextSource(s3Client ObjectAPI, bucket, key string) *S3TextSource {
	return &S3TextSource{
		bucket: bucket,
		key:    key,
		s3:     s3Client,
	}
}

func (s *S3TextSource) Load(ctx context.Context) ([]byte, error) {
	resp, err := s.s3.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe object from S3: %w", err)
	}
	defer resp.Body.Close()

	return io.ReadAll(resp.Body)
}

// S3ListSink implements ListSink backed by S3
type S3ListSink struct {
	bucket string
	key    string
	s3     ObjectAPI
}

func NewS3ListSink(s3Client ObjectAPI, bucket, key string) *S3ListSink {
	if key == "" {
		key = DefaultExportFile
	}
	return &S3ListSink{
		bucket: bucket,
		key:    key,
		s3:     s3Client,
	}
}

func (s *S3ListSink) Save(ctx context.Context, data []byte) error {
	_, err := s.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("text/plain; charset=utf-8"),
	})
	if err != nil {
		return fmt.Errorf("failed to put shopping list object to S3: %w", err)
	}
	return nil
}
