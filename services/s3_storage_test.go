// File: services/s3_storage_test.go
package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courtside/models"
)

// fakePutter records the last PutObject call.
type fakePutter struct {
	input *s3.PutObjectInput
	err   error
}

func (f *fakePutter) PutObjectWithContext(_ aws.Context, input *s3.PutObjectInput, _ ...request.Option) (*s3.PutObjectOutput, error) {
	f.input = input
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestS3Store_UploadsUnderPrefix(t *testing.T) {
	putter := &fakePutter{}
	storage, err := NewS3PhotoStorage(putter, "team-photos", "us-east-2", "staff/", "")
	require.NoError(t, err)

	content := []byte("fake image bytes")
	url, err := storage.Store(context.Background(), content, "headshot.jpg", "image/jpeg")
	require.NoError(t, err)

	require.NotNil(t, putter.input)
	key := aws.StringValue(putter.input.Key)
	assert.True(t, strings.HasPrefix(key, "staff/"), "key %q should carry the prefix", key)
	assert.True(t, strings.HasSuffix(key, ".jpg"))
	assert.Equal(t, "team-photos", aws.StringValue(putter.input.Bucket))
	assert.Equal(t, "image/jpeg", aws.StringValue(putter.input.ContentType))
	assert.Equal(t, s3.ObjectCannedACLPublicRead, aws.StringValue(putter.input.ACL))

	body, err := io.ReadAll(putter.input.Body)
	require.NoError(t, err)
	assert.Equal(t, content, body)

	assert.Equal(t, "https://team-photos.s3.us-east-2.amazonaws.com/"+key, url)
}

func TestS3Store_PrefersPublicBaseURL(t *testing.T) {
	putter := &fakePutter{}
	storage, err := NewS3PhotoStorage(putter, "team-photos", "us-east-2", "players/", "https://cdn.example.org/")
	require.NoError(t, err)

	url, err := storage.Store(context.Background(), []byte("x"), "photo.jpg", "image/jpeg")
	require.NoError(t, err)

	key := aws.StringValue(putter.input.Key)
	assert.Equal(t, "https://cdn.example.org/"+key, url)
}

func TestS3Store_RejectsEmptyUpload(t *testing.T) {
	putter := &fakePutter{}
	storage, err := NewS3PhotoStorage(putter, "team-photos", "us-east-2", "staff/", "")
	require.NoError(t, err)

	_, err = storage.Store(context.Background(), nil, "photo.jpg", "image/jpeg")
	assert.ErrorIs(t, err, models.ErrEmptyUpload)
	assert.Nil(t, putter.input, "nothing should reach S3")
}

func TestS3Store_PropagatesUploadFailure(t *testing.T) {
	putter := &fakePutter{err: errors.New("access denied")}
	storage, err := NewS3PhotoStorage(putter, "team-photos", "us-east-2", "staff/", "")
	require.NoError(t, err)

	_, err = storage.Store(context.Background(), []byte("x"), "photo.jpg", "image/jpeg")
	assert.ErrorContains(t, err, "storing photo in s3")
}

func TestNewS3PhotoStorage_RequiresBucket(t *testing.T) {
	_, err := NewS3PhotoStorage(&fakePutter{}, "", "us-east-2", "staff/", "")
	assert.Error(t, err)
}
