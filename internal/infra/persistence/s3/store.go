// Package s3 persists the document as a single object in an S3-compatible
// bucket (AWS S3 or MinIO).
package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"shiftcore/pkg/domain"
)

var _ domain.Adapter = (*Adapter)(nil)

const defaultKey = "shiftcore/document.json"

// ObjectClient is the subset of the S3 API the adapter needs. Tests supply a
// fake; production uses *s3.Client.
type ObjectClient interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, opts ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, in *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Adapter reads and writes one object key in one bucket.
type Adapter struct {
	client ObjectClient
	bucket string
	key    string
}

// Config holds explicit construction parameters (mostly for tests). For prod
// we rely primarily on environment variables.
type Config struct {
	Region          string
	Bucket          string
	Key             string
	Endpoint        string // optional; if set enables custom endpoint (e.g. MinIO)
	AccessKeyID     string // optional (falls back to default credentials chain)
	SecretAccessKey string // optional
	SessionToken    string // optional
	PathStyle       bool
}

// New creates an S3-backed adapter from Config.
func New(ctx context.Context, cfg Config) (*Adapter, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket required")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if cfg.AccessKeyID != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, cfg.SessionToken)))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.PathStyle {
			o.UsePathStyle = true
		}
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return NewWithClient(client, cfg.Bucket, cfg.Key), nil
}

// NewWithClient wraps an existing client; tests use it with a fake.
func NewWithClient(client ObjectClient, bucket, key string) *Adapter {
	if key == "" {
		key = defaultKey
	}
	return &Adapter{client: client, bucket: bucket, key: key}
}

// NewAdapter constructs the adapter from bucket and key, filling region,
// endpoint, and credentials from the environment.
//
//	SHIFTCORE_S3_REGION: region (default us-east-1)
//	SHIFTCORE_S3_ENDPOINT: custom endpoint, e.g. MinIO (optional)
//	SHIFTCORE_S3_PATH_STYLE: true|false (default false)
//	AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY / AWS_SESSION_TOKEN (optional)
func NewAdapter(ctx context.Context, bucket, key string) (*Adapter, error) {
	if bucket == "" {
		return nil, fmt.Errorf("SHIFTCORE_S3_BUCKET required for s3 driver")
	}
	return New(ctx, Config{
		Bucket:    bucket,
		Key:       key,
		Region:    os.Getenv("SHIFTCORE_S3_REGION"),
		Endpoint:  os.Getenv("SHIFTCORE_S3_ENDPOINT"),
		PathStyle: strings.EqualFold(os.Getenv("SHIFTCORE_S3_PATH_STYLE"), "true"),
	})
}

// Load fetches the document object. A missing key is not an error.
func (a *Adapter) Load(ctx context.Context) ([]byte, bool, error) {
	out, err := a.client.GetObject(ctx, &s3.GetObjectInput{Bucket: &a.bucket, Key: &a.key})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get object: %w", err)
	}
	defer func() { _ = out.Body.Close() }()
	raw, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, false, fmt.Errorf("read object: %w", err)
	}
	return raw, true, nil
}

// Save overwrites the document object.
func (a *Adapter) Save(ctx context.Context, raw []byte) error {
	contentType := "application/json"
	if _, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &a.bucket,
		Key:         &a.key,
		Body:        bytes.NewReader(raw),
		ContentType: &contentType,
	}); err != nil {
		return fmt.Errorf("put object: %w", err)
	}
	return nil
}
