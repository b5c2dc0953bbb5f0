package store

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// UploadURLTTL bounds how long a presigned upload URL stays usable.
const UploadURLTTL = 5 * time.Minute

// ObjectStore covers the asset bucket: presigned write URLs for uploads and
// object deletes for the cleanup worker.
type ObjectStore interface {
	PresignUpload(ctx context.Context, bucket, key, contentType string) (string, error)
	DeleteObject(ctx context.Context, bucket, key string) error
}

type s3Store struct {
	Client    *s3.Client
	Presigner *s3.PresignClient
}

func NewObjectStore(s3Client *s3.Client) ObjectStore {
	return &s3Store{Client: s3Client, Presigner: s3.NewPresignClient(s3Client)}
}

func (s *s3Store) PresignUpload(ctx context.Context, bucket, key, contentType string) (string, error) {
	request, err := s.Presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(UploadURLTTL))
	if err != nil {
		return "", fmt.Errorf("api/store/s3: error presigning upload for %s:%s: %w", bucket, key, err)
	}
	return request.URL, nil
}

func (s *s3Store) DeleteObject(ctx context.Context, bucket, key string) error {
	input := s3.DeleteObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}
	if _, err := s.Client.DeleteObject(ctx, &input); err != nil {
		return fmt.Errorf("api/store/s3: error deleting %s:%s: %w", bucket, key, err)
	}
	return nil
}
