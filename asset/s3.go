package asset

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Source reads the data asset from an S3 object. Used when DATA_PATH is an
// s3:// URL, for deployments where the asset is too large to bundle.
type S3Source struct {
	client *s3.Client
	bucket string
	key    string
}

// NewS3Source creates a source from an s3://bucket/key URL using the default
// AWS credential chain.
func NewS3Source(ctx context.Context, url string) (*S3Source, error) {
	bucket, key, err := ParseS3URL(url)
	if err != nil {
		return nil, err
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}
	return &S3Source{client: s3.NewFromConfig(cfg), bucket: bucket, key: key}, nil
}

// ParseS3URL splits an s3://bucket/key URL into bucket and key.
func ParseS3URL(url string) (bucket, key string, err error) {
	rest, ok := strings.CutPrefix(url, "s3://")
	if !ok {
		return "", "", fmt.Errorf("not an s3 URL: %s", url)
	}
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid s3 URL, want s3://bucket/key: %s", url)
	}
	return parts[0], parts[1], nil
}

func (s *S3Source) Location() string {
	return fmt.Sprintf("s3://%s/%s", s.bucket, s.key)
}

func (s *S3Source) Fetch(ctx context.Context) ([]byte, error) {
	resp, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}
