package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockS3 struct {
	mock.Mock
}

func (m *mockS3) GetObject(ctx context.Context, params *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.GetObjectOutput), args.Error(1)
}

func TestS3Store_Open(t *testing.T) {
	ctx := context.Background()

	t.Run("streams the object body", func(t *testing.T) {
		client := new(mockS3)
		client.On("GetObject", ctx, mock.MatchedBy(func(in *s3.GetObjectInput) bool {
			return aws.ToString(in.Bucket) == "uploads" && aws.ToString(in.Key) == "lib-1/file.mrc"
		})).Return(&s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader("records"))}, nil)

		rc, err := NewS3Store(client).Open(ctx, "uploads", "lib-1/file.mrc")
		require.NoError(t, err)
		defer rc.Close()

		b, _ := io.ReadAll(rc)
		assert.Equal(t, "records", string(b))
	})

	t.Run("missing key", func(t *testing.T) {
		client := new(mockS3)
		client.On("GetObject", ctx, mock.Anything).Return(nil, &types.NoSuchKey{})

		_, err := NewS3Store(client).Open(ctx, "uploads", "missing.mrc")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("other failure", func(t *testing.T) {
		client := new(mockS3)
		client.On("GetObject", ctx, mock.Anything).Return(nil, errors.New("access denied"))

		_, err := NewS3Store(client).Open(ctx, "uploads", "file.mrc")
		assert.ErrorContains(t, err, "access denied")
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}

func TestFSStore_Open(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "uploads", "lib-1"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "uploads", "lib-1", "file.mrc"), []byte("records"), 0o644))

	store := NewFSStore(root)
	ctx := context.Background()

	rc, err := store.Open(ctx, "uploads", "lib-1/file.mrc")
	require.NoError(t, err)
	b, _ := io.ReadAll(rc)
	rc.Close()
	assert.Equal(t, "records", string(b))

	_, err = store.Open(ctx, "uploads", "lib-1/missing.mrc")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.Open(ctx, "uploads", "../../etc/passwd")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}
