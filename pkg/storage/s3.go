package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
	pkglogger "github.com/lenspick/lenspick-backend/pkg/logger"
)

// KeyPrefix is the object-key prefix for every uploaded file
const KeyPrefix = "uploads/"

// Client wraps the AWS S3 client for S3/MinIO compatible storage.
// The dev backend talks to an embedded S3-compatible endpoint (path-style,
// static credentials); the prod backend talks to AWS S3 with public-read objects.
type Client struct {
	client    *s3.Client
	bucket    string
	endpoint  string
	pathStyle bool
	publicACL bool
}

// Config holds object storage configuration
type Config struct {
	Endpoint        string // e.g. http://localhost:9000 (empty for AWS)
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	ForcePathStyle  bool // true for MinIO
	PublicACL       bool // true for prod S3 (public-read objects)
}

// NewClient creates a new S3-compatible storage client
func NewClient(cfg Config) (*Client, error) {
	opts := func(o *s3.Options) {
		o.Region = cfg.Region
		if cfg.AccessKeyID != "" {
			o.Credentials = credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")
		}
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.ForcePathStyle
	}

	client := s3.New(s3.Options{}, opts)

	pkglogger.GetLogger().Info().
		Str("bucket", cfg.Bucket).
		Str("endpoint", cfg.Endpoint).
		Bool("public_acl", cfg.PublicACL).
		Msg("object storage client initialized")

	return &Client{
		client:    client,
		bucket:    cfg.Bucket,
		endpoint:  strings.TrimRight(cfg.Endpoint, "/"),
		pathStyle: cfg.ForcePathStyle,
		publicACL: cfg.PublicACL,
	}, nil
}

// UploadResult contains the result of a file upload
type UploadResult struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// Upload puts an object and returns its key and public URL
func (c *Client) Upload(ctx context.Context, key string, data []byte, contentType string) (*UploadResult, error) {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	}
	if c.publicACL {
		input.ACL = types.ObjectCannedACLPublicRead
	}

	if _, err := c.client.PutObject(ctx, input); err != nil {
		return nil, fmt.Errorf("s3 upload failed: %w", err)
	}

	return &UploadResult{
		Key:         key,
		URL:         c.PublicURL(key),
		ContentType: contentType,
		Size:        int64(len(data)),
	}, nil
}

// Delete removes an object from storage
func (c *Client) Delete(ctx context.Context, key string) error {
	input := &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	}

	if _, err := c.client.DeleteObject(ctx, input); err != nil {
		return fmt.Errorf("s3 delete failed: %w", err)
	}
	return nil
}

// PublicURL derives the stable public URL for a key.
// Path-style endpoints (MinIO) serve <endpoint>/<bucket>/<key>;
// AWS serves the virtual-hosted bucket URL.
func (c *Client) PublicURL(key string) string {
	if c.endpoint != "" && c.pathStyle {
		return fmt.Sprintf("%s/%s/%s", c.endpoint, c.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", c.bucket, key)
}

// GenerateKey creates a unique storage key under the uploads prefix,
// preserving the original file extension
func GenerateKey(filename string) string {
	return KeyPrefix + uuid.New().String() + strings.ToLower(path.Ext(filename))
}

// GenerateThumbnailKey creates a key for a derived thumbnail
func GenerateThumbnailKey(ext string) string {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return KeyPrefix + "thumbnail_" + uuid.New().String() + strings.ToLower(ext)
}
