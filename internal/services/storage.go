package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Storage uploads the images referenced by posts, profiles and video
// thumbnails to an S3 bucket and hands back their public URLs.
type Storage struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

var Store *Storage

// InitStorage builds the process-wide storage client. With no S3_BUCKET
// set the upload endpoint stays disabled.
func InitStorage(ctx context.Context) {
	bucket := os.Getenv("S3_BUCKET")

	if bucket == "" {
		log.Println("S3_BUCKET not set, image uploads disabled")
		return
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx)

	if err != nil {
		log.Printf("Failed to load AWS config, image uploads disabled: %v", err)
		return
	}

	publicURL := os.Getenv("S3_PUBLIC_URL")

	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.s3.amazonaws.com", bucket)
	}

	Store = &Storage{
		client:    s3.NewFromConfig(cfg),
		bucket:    bucket,
		publicURL: strings.TrimSuffix(publicURL, "/"),
	}
}

// UploadImage stores the object under key and returns its public URL.
func (s *Storage) UploadImage(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})

	if err != nil {
		return "", err
	}

	return s.publicURL + "/" + key, nil
}
