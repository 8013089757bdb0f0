package archive

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	inputs []*s3.PutObjectInput
	bodies [][]byte
	err    error
}

func (f *fakeS3) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	body, _ := io.ReadAll(params.Body)
	f.inputs = append(f.inputs, params)
	f.bodies = append(f.bodies, body)
	return &s3.PutObjectOutput{}, f.err
}

func TestObjectKey(t *testing.T) {
	at := time.Date(2026, time.March, 5, 18, 4, 9, 0, time.FixedZone("CET", 3600))

	assert.Equal(t, "snapshots/2026/03/05/tournament-20260305T170409Z.json", ObjectKey("/snapshots/", at))
	assert.Equal(t, "2026/03/05/tournament-20260305T170409Z.json", ObjectKey("", at))
}

func TestS3ArchiverArchive(t *testing.T) {
	fake := &fakeS3{}
	archiver := &S3Archiver{client: fake, bucket: "cup", prefix: "snapshots"}
	at := time.Date(2026, time.March, 5, 18, 0, 0, 0, time.UTC)

	location, err := archiver.Archive(context.Background(), []byte(`{"teams":[]}`), at)
	require.NoError(t, err)
	assert.Equal(t, "s3://cup/snapshots/2026/03/05/tournament-20260305T180000Z.json", location)

	require.Len(t, fake.inputs, 1)
	input := fake.inputs[0]
	assert.Equal(t, "cup", aws.ToString(input.Bucket))
	assert.Equal(t, "application/json", aws.ToString(input.ContentType))
	assert.Equal(t, int64(12), aws.ToInt64(input.ContentLength))
	assert.Equal(t, `{"teams":[]}`, string(fake.bodies[0]))
}

func TestS3ArchiverArchiveError(t *testing.T) {
	fake := &fakeS3{err: errors.New("access denied")}
	archiver := &S3Archiver{client: fake, bucket: "cup", prefix: "snapshots"}

	location, err := archiver.Archive(context.Background(), []byte("{}"), time.Now())
	assert.Empty(t, location)
	assert.ErrorContains(t, err, "access denied")
}
