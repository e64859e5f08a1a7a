package objstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/rs/zerolog"
)

// S3Options configures the S3 (or S3-compatible) backing bucket.
type S3Options struct {
	Bucket    string
	Region    string
	Endpoint  string // "" for AWS; set for R2/MinIO style endpoints
	AccessKey string
	SecretKey string
	Prefix    string // optional key prefix inside the bucket
}

// S3Store stores lake objects in an S3-compatible bucket.
type S3Store struct {
	client *s3.Client
	bucket string
	prefix string
	log    zerolog.Logger
}

// NewS3Store creates an S3 lake store from options.
func NewS3Store(ctx context.Context, opts S3Options, log zerolog.Logger) (*S3Store, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(opts.Region),
	}
	if opts.AccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("aws config: %w", err)
	}

	var s3Opts []func(*s3.Options)
	if opts.Endpoint != "" {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		})
	}

	return &S3Store{
		client: s3.NewFromConfig(awsCfg, s3Opts...),
		bucket: opts.Bucket,
		prefix: strings.TrimSuffix(opts.Prefix, "/"),
		log:    log.With().Str("component", "s3-store").Logger(),
	}, nil
}

// HeadBucket checks that the bucket exists and credentials are valid.
// Called once at startup before any job runs.
func (s *S3Store) HeadBucket(ctx context.Context) error {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: &s.bucket,
	})
	return err
}

func (s *S3Store) List(ctx context.Context, prefix string) ([]ObjectInfo, error) {
	full := s.objectKey(prefix)
	var infos []ObjectInfo

	p := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: &s.bucket,
		Prefix: &full,
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, obj := range page.Contents {
			info := ObjectInfo{Key: s.logicalKey(aws.ToString(obj.Key))}
			if obj.Size != nil {
				info.Size = *obj.Size
			}
			if obj.LastModified != nil {
				info.LastModified = *obj.LastModified
			}
			infos = append(infos, info)
		}
	}
	// ListObjectsV2 already returns keys in lexicographic order per page
	// and pages are contiguous, so no re-sort is needed.
	return infos, nil
}

func (s *S3Store) Get(ctx context.Context, key string) (*Object, error) {
	objKey := s.objectKey(key)
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &s.bucket,
		Key:    &objKey,
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, nil
		}
		return nil, err
	}
	defer out.Body.Close()

	body, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read body of %s: %w", key, err)
	}

	return &Object{
		Key:          key,
		Body:         body,
		ContentType:  aws.ToString(out.ContentType),
		CacheControl: aws.ToString(out.CacheControl),
		Metadata:     out.Metadata,
	}, nil
}

func (s *S3Store) Put(ctx context.Context, key string, body []byte, opts PutOptions) error {
	objKey := s.objectKey(key)
	in := &s3.PutObjectInput{
		Bucket: &s.bucket,
		Key:    &objKey,
		Body:   bytes.NewReader(body),
	}
	if opts.ContentType != "" {
		in.ContentType = &opts.ContentType
	}
	if opts.CacheControl != "" {
		in.CacheControl = &opts.CacheControl
	}
	if len(opts.Metadata) > 0 {
		in.Metadata = opts.Metadata
	}
	_, err := s.client.PutObject(ctx, in)
	return err
}

func (s *S3Store) objectKey(key string) string {
	if s.prefix != "" {
		return s.prefix + "/" + key
	}
	return key
}

func (s *S3Store) logicalKey(full string) string {
	if s.prefix != "" {
		return strings.TrimPrefix(full, s.prefix+"/")
	}
	return full
}
