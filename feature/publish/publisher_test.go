package publish

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"corpus-builder/core/storage"
	"corpus-builder/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func writeCorpus(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"maps/100000000_henesys.json":              `{"id":100000000}`,
		"monsters/100100_snail.json":               `{"id":100100}`,
		"items/gear/1302000_sword.json":            `{"id":1302000}`,
		"items/consumable/2000000_red-potion.json": `{"id":2000000}`,
		"items/gear/notes.txt":                     "ignored",
	}
	for rel, body := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	}
	return root
}

func TestPublisher_Upload(t *testing.T) {
	root := writeCorpus(t)
	cfg := storage.Config{Bucket: "corpus", Prefix: "gms"}

	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "corpus").Return(true, nil)
	mockClient.On("PutObject", mock.Anything, "corpus", mock.Anything, mock.Anything, mock.Anything,
		mock.MatchedBy(func(o minio.PutObjectOptions) bool { return o.ContentType == "application/json" })).
		Return(minio.UploadInfo{}, nil)

	pub := NewPublisher(mockClient, cfg, root, zap.NewNop())
	report, err := pub.Publish(context.Background(), Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"gms/items/consumable/2000000_red-potion.json",
		"gms/items/gear/1302000_sword.json",
		"gms/maps/100000000_henesys.json",
		"gms/monsters/100100_snail.json",
	}, report.Uploaded)
	assert.Empty(t, report.Failed)
	mockClient.AssertCalled(t, "PutObject", mock.Anything, "corpus", "gms/maps/100000000_henesys.json",
		mock.Anything, int64(len(`{"id":100000000}`)), mock.Anything)
}

func TestPublisher_UploadFailureContinues(t *testing.T) {
	root := writeCorpus(t)
	cfg := storage.Config{Bucket: "corpus"}

	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "corpus").Return(true, nil)
	mockClient.On("PutObject", mock.Anything, "corpus", "monsters/100100_snail.json", mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, errors.New("timeout"))
	mockClient.On("PutObject", mock.Anything, "corpus", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	report, err := NewPublisher(mockClient, cfg, root, zap.NewNop()).Publish(context.Background(), Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"monsters/100100_snail.json"}, report.Failed)
	assert.Len(t, report.Uploaded, 3)
}

func TestPublisher_MissingBucket(t *testing.T) {
	root := writeCorpus(t)
	cfg := storage.Config{Bucket: "corpus", Region: "us-east-1"}

	t.Run("Refuses", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "corpus").Return(false, nil)

		_, err := NewPublisher(mockClient, cfg, root, zap.NewNop()).Publish(context.Background(), Options{})
		assert.ErrorContains(t, err, "does not exist")
		mockClient.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Creates", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "corpus").Return(false, nil)
		mockClient.On("MakeBucket", mock.Anything, "corpus", minio.MakeBucketOptions{Region: "us-east-1"}).Return(nil)
		mockClient.On("PutObject", mock.Anything, "corpus", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, nil)

		report, err := NewPublisher(mockClient, cfg, root, zap.NewNop()).Publish(context.Background(), Options{CreateBucket: true})
		require.NoError(t, err)
		assert.Len(t, report.Uploaded, 4)
		mockClient.AssertExpectations(t)
	})
}

func TestPublisher_Prune(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	root := writeCorpus(t)
	cfg := storage.Config{Bucket: "corpus"}

	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "corpus").Return(true, nil)
	mockClient.On("PutObject", mock.Anything, "corpus", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)
	mockClient.On("ListObjects", mock.Anything, "corpus", prefixIs("maps/")).Return(objects(
		minio.ObjectInfo{Key: "maps/"},
		minio.ObjectInfo{Key: "maps/100000000_henesys.json"},
		minio.ObjectInfo{Key: "maps/100000000_old-name.json"},
	))
	mockClient.On("ListObjects", mock.Anything, "corpus", prefixIs("monsters/")).Return(objects())
	mockClient.On("ListObjects", mock.Anything, "corpus", prefixIs("items/")).Return(objects(
		minio.ObjectInfo{Key: "items/misc/4000000_snail-shell.json"},
	))
	mockClient.On("RemoveObjects", mock.Anything, "corpus",
		[]string{"maps/100000000_old-name.json", "items/misc/4000000_snail-shell.json"}, mock.Anything).
		Return(nil)

	report, err := NewPublisher(mockClient, cfg, root, zap.NewNop()).Publish(context.Background(), Options{Prune: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"maps/100000000_old-name.json", "items/misc/4000000_snail-shell.json"}, report.Pruned)
	mockClient.AssertExpectations(t)
}

func TestPublisher_PruneListingError(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	root := writeCorpus(t)
	client := &streamingClient{Client: new(mocks.Client), listing: []minio.ObjectInfo{
		{Err: errors.New("access denied")},
		{Key: "maps/100000000_old-name.json"},
	}}
	client.On("BucketExists", mock.Anything, "corpus").Return(true, nil)

	_, err := NewPublisher(client, storage.Config{Bucket: "corpus"}, root, zap.NewNop()).
		Publish(context.Background(), Options{Prune: true, DryRun: true})
	assert.ErrorContains(t, err, "access denied")
	client.AssertNotCalled(t, "RemoveObjects", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPublisher_DryRun(t *testing.T) {
	root := writeCorpus(t)
	cfg := storage.Config{Bucket: "corpus"}

	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "corpus").Return(true, nil)
	mockClient.On("ListObjects", mock.Anything, "corpus", mock.Anything).Return(objects(
		minio.ObjectInfo{Key: "monsters/999_gone.json"},
	))

	report, err := NewPublisher(mockClient, cfg, root, zap.NewNop()).Publish(context.Background(), Options{Prune: true, DryRun: true})
	require.NoError(t, err)
	assert.Len(t, report.Uploaded, 4)
	assert.Contains(t, report.Pruned, "monsters/999_gone.json")
	mockClient.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockClient.AssertNotCalled(t, "RemoveObjects", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPublisher_EmptyCorpus(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "corpus").Return(true, nil)

	report, err := NewPublisher(mockClient, storage.Config{Bucket: "corpus"}, t.TempDir(), zap.NewNop()).
		Publish(context.Background(), Options{})
	require.NoError(t, err)
	assert.Empty(t, report.Uploaded)
}
