package gallery

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	appconfig "github.com/BellaCucina/bistro-backend/internal/config"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

const presignExpiry = 15 * time.Minute

// Presigner hands out upload URLs for gallery objects. The S3-backed
// implementation is the only production one; tests mock this.
type Presigner interface {
	PresignPut(ctx context.Context, key string) (string, error)
}

type s3Presigner struct {
	client *s3.PresignClient
	bucket string
}

// NewS3Presigner builds a Presigner against the configured bucket. Returns
// nil when S3 is not configured, in which case uploads are unavailable.
func NewS3Presigner(cfg appconfig.Config) (Presigner, error) {
	if !cfg.S3Configured() {
		return nil, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
		}
	})

	return &s3Presigner{
		client: s3.NewPresignClient(client),
		bucket: cfg.S3Bucket,
	}, nil
}

func (p *s3Presigner) PresignPut(ctx context.Context, key string) (string, error) {
	req, err := p.client.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: &p.bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}

// objectKey produces a date-partitioned key, keeping only the extension from
// the client-supplied filename.
func objectKey(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	d := time.Now()
	return fmt.Sprintf("gallery/%d/%02d/%s%s", d.Year(), d.Month(), uuid.New(), ext)
}
