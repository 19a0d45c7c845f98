package filestore

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/SscSPs/printshop_pos/internal/core/ports/gateways"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// objectPutter is the part of *s3.Client the store uses.
type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3 stores files as objects in a bucket.
type S3 struct {
	Client        objectPutter
	Bucket        string
	Prefix        string
	PublicBaseURL string
}

type S3Config struct {
	Region        string
	Bucket        string
	Prefix        string
	PublicBaseURL string
}

// NewS3 builds a store using the default AWS credential chain.
func NewS3(ctx context.Context, cfg S3Config) (*S3, error) {
	if cfg.Region == "" || cfg.Bucket == "" {
		return nil, fmt.Errorf("S3 config missing: S3_REGION and S3_BUCKET required")
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	return &S3{
		Client:        s3.NewFromConfig(awsCfg),
		Bucket:        cfg.Bucket,
		Prefix:        cfg.Prefix,
		PublicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}, nil
}

var _ gateways.FileStore = (*S3)(nil)

// Put uploads r under Prefix/name. It returns the public URL when one is configured,
// otherwise an s3:// location.
func (s *S3) Put(ctx context.Context, name string, r io.Reader) (string, error) {
	key := path.Base(name)
	if p := strings.Trim(s.Prefix, "/"); p != "" {
		key = p + "/" + key
	}

	_, err := s.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(key),
		Body:        r,
		ContentType: aws.String(contentType(name)),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}

	if s.PublicBaseURL != "" {
		return s.PublicBaseURL + "/" + key, nil
	}
	return "s3://" + s.Bucket + "/" + key, nil
}

func (s *S3) String() string { return fmt.Sprintf("s3(%s/%s)", s.Bucket, s.Prefix) }

func contentType(name string) string {
	if strings.EqualFold(path.Ext(name), ".pdf") {
		return "application/pdf"
	}
	return "application/octet-stream"
}
