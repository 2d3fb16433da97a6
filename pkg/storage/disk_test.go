package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *DiskStore {
	t.Helper()
	store, err := NewDiskStore(t.TempDir(), "/storage")
	require.NoError(t, err)
	return store
}

func TestDiskStoreUploadAndOpen(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	err := store.Upload(ctx, BucketDocuments, "cv/resume_1.pdf", strings.NewReader("pdf-bytes"))
	require.NoError(t, err)

	rc, err := store.Open(ctx, BucketDocuments, "cv/resume_1.pdf")
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "pdf-bytes", string(data))
}

func TestDiskStoreOpenMissing(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Open(context.Background(), BucketDocuments, "cv/yok.pdf")
	assert.ErrorIs(t, err, ErrObjectNotFound)
}

func TestDiskStoreListNewestFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Upload(ctx, BucketDocuments, "cv/eski.pdf", strings.NewReader("a")))
	require.NoError(t, store.Upload(ctx, BucketDocuments, "cv/yeni.pdf", strings.NewReader("b")))

	// ModTime çözünürlüğü için eski dosyayı geçmişe çek.
	oldPath := filepath.Join(store.root, BucketDocuments, "cv", "eski.pdf")
	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(oldPath, past, past))

	objects, err := store.List(ctx, BucketDocuments, "cv")
	require.NoError(t, err)
	require.Len(t, objects, 2)
	assert.Equal(t, "cv/yeni.pdf", objects[0].Name)
	assert.Equal(t, "cv/eski.pdf", objects[1].Name)
}

func TestDiskStoreListMissingPrefix(t *testing.T) {
	store := newTestStore(t)

	objects, err := store.List(context.Background(), BucketDocuments, "cv")
	require.NoError(t, err)
	assert.Empty(t, objects)
}

func TestDiskStoreRemove(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Upload(ctx, BucketAvatars, "a.png", strings.NewReader("img")))
	require.NoError(t, store.Remove(ctx, BucketAvatars, "a.png"))

	_, err := store.Open(ctx, BucketAvatars, "a.png")
	assert.ErrorIs(t, err, ErrObjectNotFound)

	assert.ErrorIs(t, store.Remove(ctx, BucketAvatars, "a.png"), ErrObjectNotFound)
}

func TestDiskStoreRejectsTraversal(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	err := store.Upload(ctx, BucketDocuments, "../kacak.txt", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrInvalidPath)

	_, err = store.Open(ctx, BucketDocuments, "")
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestDiskStorePublicURL(t *testing.T) {
	store := newTestStore(t)
	assert.Equal(t, "/storage/avatars/abc.png", store.PublicURL(BucketAvatars, "abc.png"))
	assert.Equal(t, "", store.PublicURL(BucketAvatars, "../abc.png"))
}

func TestDiskStoreUploadOverwrites(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Upload(ctx, BucketDocuments, "cv/r.pdf", strings.NewReader("ilk")))
	require.NoError(t, store.Upload(ctx, BucketDocuments, "cv/r.pdf", strings.NewReader("ikinci")))

	rc, err := store.Open(ctx, BucketDocuments, "cv/r.pdf")
	require.NoError(t, err)
	defer rc.Close()
	data, _ := io.ReadAll(rc)
	assert.Equal(t, "ikinci", string(data))
}
