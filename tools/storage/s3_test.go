package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjectAPI struct {
	objects map[string][]byte
	err     error
	puts    []*s3.PutObjectInput
}

func (f *fakeObjectAPI) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	data, ok := f.objects[aws.ToString(params.Bucket)+"/"+aws.ToString(params.Key)]
	if !ok {
		return nil, errors.New("NoSuchKey")
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (f *fakeObjectAPI) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	data, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.puts = append(f.puts, params)
	f.objects[aws.ToString(params.Bucket)+"/"+aws.ToString(params.Key)] = data
	return &s3.PutObjectOutput{}, nil
}

func TestS3TextSource(t *testing.T) {
	api := &fakeObjectAPI{objects: map[string][]byte{
		"artifacts/recipes.txt": []byte("Recipe 1: Soup"),
	}}

	t.Run("load object", func(t *testing.T) {
		data, err := NewS3TextSource(api, "artifacts", "recipes.txt").Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Recipe 1: Soup", string(data))
	})

	t.Run("missing object", func(t *testing.T) {
		_, err := NewS3TextSource(api, "artifacts", "missing.txt").Load(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get recipe object from S3")
	})
}

func TestS3ListSink(t *testing.T) {
	t.Run("put object", func(t *testing.T) {
		api := &fakeObjectAPI{objects: map[string][]byte{}}
		sink := NewS3ListSink(api, "artifacts", "")

		require.NoError(t, sink.Save(context.Background(), []byte("salt: Market, Aisle 3")))

		assert.Equal(t, []byte("salt: Market, Aisle 3"), api.objects["artifacts/"+DefaultExportFile])
		require.Len(t, api.puts, 1)
		assert.Equal(t, "text/plain; charset=utf-8", aws.ToString(api.puts[0].ContentType))
	})

	t.Run("put error is wrapped", func(t *testing.T) {
		api := &fakeObjectAPI{err: errors.New("access denied")}
		err := NewS3ListSink(api, "artifacts", "list.txt").Save(context.Background(), []byte("salt"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "access denied")
	})
}
