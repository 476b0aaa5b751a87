package proofstore

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	lastInput *s3.PutObjectInput
	err       error
}

func (f *fakeS3) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.lastInput = params
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestNew_Validation(t *testing.T) {
	_, err := New(Config{Region: "us-east-1", AccessKey: "k", SecretKey: "s", BaseURL: "https://cdn"})
	assert.Error(t, err)

	_, err = New(Config{Bucket: "proofs", AccessKey: "k", SecretKey: "s", BaseURL: "https://cdn"})
	assert.Error(t, err)

	_, err = New(Config{Bucket: "proofs", Region: "us-east-1", AccessKey: "k", SecretKey: "s"})
	assert.Error(t, err)

	_, err = New(Config{Bucket: "proofs", Region: "us-east-1", AccessKey: "k", SecretKey: "s", BaseURL: "https://cdn"})
	assert.NoError(t, err)
}

func TestStore_Save(t *testing.T) {
	fake := &fakeS3{}
	store := &Store{
		cfg:    Config{Bucket: "proofs", BaseURL: "https://cdn.example.com/"},
		client: fake,
	}

	url, err := store.Save(context.Background(), []byte("png-bytes"), "image/png")
	require.NoError(t, err)

	assert.Equal(t, "proofs", *fake.lastInput.Bucket)
	assert.Contains(t, *fake.lastInput.Key, "proofs/")
	assert.Contains(t, *fake.lastInput.Key, ".png")
	assert.Contains(t, url, "https://cdn.example.com/proofs/")
}

func TestStore_SaveEmpty(t *testing.T) {
	store := &Store{cfg: Config{Bucket: "proofs", BaseURL: "https://cdn"}, client: &fakeS3{}}
	_, err := store.Save(context.Background(), nil, "image/png")
	assert.Error(t, err)
}
