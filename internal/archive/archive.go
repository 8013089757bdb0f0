// Package archive ships exported tournament snapshots to object storage.
package archive

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

//go:generate mockgen -source=archive.go -destination=../mocks/archive_mocks.go -package=mocks

// Archiver stores a snapshot document and returns where it was written
type Archiver interface {
	Archive(ctx context.Context, body []byte, at time.Time) (string, error)
}

// putObjectAPI is the part of *s3.Client used by S3Archiver
type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Archiver writes snapshots to an S3 bucket under a date partitioned prefix
type S3Archiver struct {
	client putObjectAPI
	bucket string
	prefix string
}

// NewS3Archiver loads the default AWS credential chain for region and returns an archiver for bucket
func NewS3Archiver(ctx context.Context, region, bucket, prefix string) (*S3Archiver, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = true
	})
	return &S3Archiver{client: client, bucket: bucket, prefix: prefix}, nil
}

// ObjectKey names the object for a snapshot taken at the given time
func ObjectKey(prefix string, at time.Time) string {
	at = at.UTC()
	name := "tournament-" + at.Format("20060102T150405Z") + ".json"
	return path.Join(strings.Trim(prefix, "/"), at.Format("2006/01/02"), name)
}

// Archive uploads body and returns the s3:// location of the object
func (a *S3Archiver) Archive(ctx context.Context, body []byte, at time.Time) (string, error) {
	key := ObjectKey(a.prefix, at)

	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(a.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
		ContentType:   aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("upload snapshot to s3://%s/%s: %w", a.bucket, key, err)
	}

	return fmt.Sprintf("s3://%s/%s", a.bucket, key), nil
}
