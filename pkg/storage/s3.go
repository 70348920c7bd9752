package storage

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	appconfig "github.com/adityakr/bazaari/config"
)

// S3Disk stores files in an S3 bucket.
type S3Disk struct {
	client *s3.Client
	bucket string
	base   string
}

// NewS3Disk builds an S3Disk from the S3_* configuration keys.
func NewS3Disk(ctx context.Context) (*S3Disk, error) {
	region := appconfig.StorageS3Region()
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
	}
	if key := appconfig.StorageS3Key(); key != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(key, appconfig.StorageS3Secret(), ""),
		))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if ep := appconfig.StorageS3Endpoint(); ep != "" {
			o.BaseEndpoint = aws.String(ep)
			o.UsePathStyle = true
		}
	})

	base := appconfig.StorageS3URL()
	if base == "" {
		base = "https://" + appconfig.StorageS3Bucket() + ".s3." + region + ".amazonaws.com"
	}
	return &S3Disk{
		client: client,
		bucket: appconfig.StorageS3Bucket(),
		base:   strings.TrimRight(base, "/"),
	}, nil
}

func (d *S3Disk) Put(ctx context.Context, path string, content io.Reader) error {
	_, err := d.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(d.bucket),
		Key:    aws.String(strings.TrimLeft(path, "/")),
		Body:   content,
	})
	return err
}

func (d *S3Disk) Get(ctx context.Context, path string) (io.ReadCloser, error) {
	out, err := d.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(d.bucket),
		Key:    aws.String(strings.TrimLeft(path, "/")),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return out.Body, nil
}

func (d *S3Disk) Delete(ctx context.Context, path string) error {
	_, err := d.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(d.bucket),
		Key:    aws.String(strings.TrimLeft(path, "/")),
	})
	return err
}

func (d *S3Disk) Exists(ctx context.Context, path string) (bool, error) {
	_, err := d.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(d.bucket),
		Key:    aws.String(strings.TrimLeft(path, "/")),
	})
	if err != nil {
		var nf *types.NotFound
		if errors.As(err, &nf) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (d *S3Disk) URL(path string) string {
	return d.base + "/" + strings.TrimLeft(path, "/")
}
