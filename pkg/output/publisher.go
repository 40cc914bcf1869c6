package output

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"mime"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/df07/go-raycaster/pkg/config"
)

// UploadTimeout bounds a single upload
const UploadTimeout = 30 * time.Second

// S3Publisher uploads rendered images to an S3-compatible bucket
type S3Publisher struct {
	client s3iface.S3API
	bucket string
	prefix string
}

// NewS3Publisher creates a publisher using an existing client
func NewS3Publisher(client s3iface.S3API, bucket, prefix string) *S3Publisher {
	return &S3Publisher{client: client, bucket: bucket, prefix: prefix}
}

// NewS3PublisherFromConfig builds an S3 client from the configured credentials
func NewS3PublisherFromConfig(cfg *config.Config) (*S3Publisher, error) {
	if !cfg.S3Enabled() {
		return nil, fmt.Errorf("S3_BUCKET is not set")
	}

	awsConfig := &aws.Config{
		Region:           aws.String(cfg.S3Region),
		S3ForcePathStyle: aws.Bool(true),
	}
	if cfg.S3AccessKey != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(cfg.S3AccessKey, cfg.S3SecretKey, "")
	}
	if cfg.S3Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.S3Endpoint)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %w", err)
	}

	return NewS3Publisher(s3.New(sess), cfg.S3Bucket, cfg.S3Prefix), nil
}

// Key returns the object key used for a file name
func (p *S3Publisher) Key(name string) string {
	if p.prefix == "" {
		return name
	}
	return path.Join(p.prefix, name)
}

// Upload stores data under the prefixed name and returns the object key.
// The content type is derived from the name's extension.
func (p *S3Publisher) Upload(ctx context.Context, data []byte, name string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	key := p.Key(name)
	size := int64(len(data))
	_, err := p.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(p.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType(name)),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	log.Printf("Uploaded %s to S3 (%d bytes)", key, size)
	return key, nil
}

// PublishCanvas encodes the canvas in the format implied by name and uploads it
func (p *S3Publisher) PublishCanvas(ctx context.Context, c *Canvas, name string) (string, error) {
	data, err := c.Encode(name)
	if err != nil {
		return "", err
	}
	return p.Upload(ctx, data, name)
}

func contentType(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return "application/octet-stream"
}
