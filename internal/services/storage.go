package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// StorageService uploads user images to an S3-compatible bucket and hands
// back publicly fetchable URLs. When the endpoint or credentials are not
// configured the service reports unavailable and the app runs without
// uploads.
type StorageService struct {
	s3        *s3.Client
	bucket    string
	publicURL string
}

var (
	storageService *StorageService
	storageOnce    sync.Once
)

// GetStorage returns the singleton storage client, or nil when storage is
// not configured.
func GetStorage() *StorageService {
	storageOnce.Do(func() {
		endpoint := os.Getenv("S3_ENDPOINT")
		accessKey := os.Getenv("S3_ACCESS_KEY")
		secretKey := os.Getenv("S3_SECRET_KEY")
		bucket := os.Getenv("S3_BUCKET")
		if endpoint == "" || accessKey == "" || secretKey == "" || bucket == "" {
			return
		}

		endpoint = strings.TrimRight(endpoint, "/")

		region := os.Getenv("S3_REGION")
		if region == "" {
			region = "auto"
		}

		client := s3.New(s3.Options{
			Region:       region,
			BaseEndpoint: aws.String(endpoint),
			Credentials:  credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
			UsePathStyle: true,
		})

		publicURL := strings.TrimRight(os.Getenv("S3_PUBLIC_URL"), "/")
		if publicURL == "" {
			publicURL = endpoint + "/" + bucket
		}

		storageService = &StorageService{
			s3:        client,
			bucket:    bucket,
			publicURL: publicURL,
		}
	})
	return storageService
}

// Upload stores one object under folder (e.g. "posts", "knowledge") and
// returns its public URL. Keys are uuid-prefixed so repeated uploads of the
// same filename never collide.
func (s *StorageService) Upload(ctx context.Context, folder, filename, contentType string, body io.Reader, size int64) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	key := fmt.Sprintf("%s/%s%s", folder, uuid.NewString(), ext)

	_, err := s.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}

	return s.publicURL + "/" + key, nil
}
