package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStorage is an in-memory ObjectStorage that records every call, for
// asserting exactly which store traffic a mutation produced.
type memStorage struct {
	objects     map[string][]byte
	putCalls    []string
	deleteCalls [][]string
	putErr      error
	deleteErr   error
}

const memBaseURL = "https://blob.test"

func newMemStorage() *memStorage {
	return &memStorage{objects: map[string][]byte{}}
}

func (m *memStorage) Put(_ context.Context, key string, body io.Reader) (string, error) {
	m.putCalls = append(m.putCalls, key)
	if m.putErr != nil {
		return "", m.putErr
	}
	content, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	m.objects[key] = content
	return memBaseURL + "/" + key, nil
}

func (m *memStorage) Delete(_ context.Context, urls ...string) error {
	m.deleteCalls = append(m.deleteCalls, urls)
	if m.deleteErr != nil {
		return m.deleteErr
	}
	for _, u := range urls {
		delete(m.objects, strings.TrimPrefix(u, memBaseURL+"/"))
	}
	return nil
}

func (m *memStorage) List(_ context.Context, prefix string) ([]string, error) {
	var urls []string
	for key := range m.objects {
		if strings.HasPrefix(key, prefix) {
			urls = append(urls, memBaseURL+"/"+key)
		}
	}
	return urls, nil
}

func TestAssetSyncer_SyncField_Untouched(t *testing.T) {
	store := newMemStorage()
	syncer := NewAssetSyncer(store)

	url, warnings, err := syncer.SyncField(context.Background(),
		memBaseURL+"/uploads/cat_old.jpg", AssetChange{}, "cat")

	require.NoError(t, err)
	assert.Equal(t, memBaseURL+"/uploads/cat_old.jpg", url)
	assert.Empty(t, warnings)
	assert.Empty(t, store.putCalls)
	assert.Empty(t, store.deleteCalls)
}

func TestAssetSyncer_SyncField_DeleteDirective(t *testing.T) {
	store := newMemStorage()
	store.objects["uploads/cat_old.jpg"] = []byte("old")
	syncer := NewAssetSyncer(store)

	url, warnings, err := syncer.SyncField(context.Background(),
		memBaseURL+"/uploads/cat_old.jpg", AssetChange{Delete: true}, "cat")

	require.NoError(t, err)
	assert.Empty(t, url)
	assert.Empty(t, warnings)
	require.Len(t, store.deleteCalls, 1)
	assert.Equal(t, []string{memBaseURL + "/uploads/cat_old.jpg"}, store.deleteCalls[0])
}

func TestAssetSyncer_SyncField_DeleteDirectiveEmptyField(t *testing.T) {
	store := newMemStorage()
	syncer := NewAssetSyncer(store)

	url, warnings, err := syncer.SyncField(context.Background(), "", AssetChange{Delete: true}, "cat")

	require.NoError(t, err)
	assert.Empty(t, url)
	assert.Empty(t, warnings)
	assert.Empty(t, store.deleteCalls, "no delete call for an already-empty field")
}

func TestAssetSyncer_SyncField_Replace(t *testing.T) {
	store := newMemStorage()
	store.objects["uploads/cat_old.jpg"] = []byte("old")
	syncer := NewAssetSyncer(store)

	prior := memBaseURL + "/uploads/cat_old.jpg"
	url, warnings, err := syncer.SyncField(context.Background(), prior,
		AssetChange{File: &FileUpload{Filename: "new pic.jpg", Content: []byte("new")}}, "cat")

	require.NoError(t, err)
	assert.NotEqual(t, prior, url)
	assert.Equal(t, memBaseURL+"/uploads/cat_new_pic.jpg", url)
	assert.Empty(t, warnings)
	require.Len(t, store.deleteCalls, 1)
	assert.Equal(t, []string{prior}, store.deleteCalls[0])
	assert.Equal(t, []string{"uploads/cat_new_pic.jpg"}, store.putCalls)
}

func TestAssetSyncer_SyncField_DeleteFailureIsWarning(t *testing.T) {
	store := newMemStorage()
	store.deleteErr = errors.New("store unavailable")
	syncer := NewAssetSyncer(store)

	url, warnings, err := syncer.SyncField(context.Background(),
		memBaseURL+"/uploads/cat_old.jpg",
		AssetChange{File: &FileUpload{Filename: "new.jpg", Content: []byte("new")}}, "cat")

	require.NoError(t, err, "delete failure must not block the write")
	assert.Equal(t, memBaseURL+"/uploads/cat_new.jpg", url)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "Could not delete image from blob storage")
	assert.Len(t, store.putCalls, 1, "upload still happens after a failed delete")
}

func TestAssetSyncer_SyncField_UploadFailurePropagates(t *testing.T) {
	store := newMemStorage()
	store.putErr = errors.New("put rejected")
	syncer := NewAssetSyncer(store)

	_, _, err := syncer.SyncField(context.Background(), "",
		AssetChange{File: &FileUpload{Filename: "new.jpg", Content: []byte("new")}}, "cat")

	assert.Error(t, err)
}

func TestAssetSyncer_SyncGallery_NoFilesUntouched(t *testing.T) {
	store := newMemStorage()
	syncer := NewAssetSyncer(store)

	current := []string{memBaseURL + "/uploads/aplus_a.jpg", memBaseURL + "/uploads/aplus_b.jpg"}
	urls, warnings, err := syncer.SyncGallery(context.Background(), current, nil, "aplus")

	require.NoError(t, err)
	assert.Equal(t, current, urls)
	assert.Empty(t, warnings)
	assert.Empty(t, store.deleteCalls)
	assert.Empty(t, store.putCalls)
}

func TestAssetSyncer_SyncGallery_FullReplaceBatchesDelete(t *testing.T) {
	store := newMemStorage()
	syncer := NewAssetSyncer(store)

	current := []string{
		memBaseURL + "/uploads/aplus_a.jpg",
		memBaseURL + "/uploads/aplus_b.jpg",
		memBaseURL + "/uploads/aplus_c.jpg",
	}
	files := []FileUpload{
		{Filename: "x.jpg", Content: []byte("x")},
		{Filename: "y.jpg", Content: []byte("y")},
	}

	urls, warnings, err := syncer.SyncGallery(context.Background(), current, files, "aplus")

	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Len(t, store.deleteCalls, 1, "old gallery goes out in one batched call")
	assert.Equal(t, current, store.deleteCalls[0])
	assert.Equal(t, []string{
		memBaseURL + "/uploads/aplus_x.jpg",
		memBaseURL + "/uploads/aplus_y.jpg",
	}, urls)
}
