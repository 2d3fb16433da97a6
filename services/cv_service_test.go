package services

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

	"portfolyo.link/pkg/storage"
)

func TestUploadCVValidatesBeforeStorage(t *testing.T) {
	store, _ := setupTestStore(t)
	svc := NewCVService()
	ctx := context.Background()

	t.Run("PDF olmayan dosya reddedilir", func(t *testing.T) {
		err := svc.UploadCV(ctx, "image/png", 100, strings.NewReader("x"))
		assert.ErrorIs(t, err, ErrCVInvalidType)
	})

	t.Run("boyut sınırı aşılırsa reddedilir", func(t *testing.T) {
		err := svc.UploadCV(ctx, "application/pdf", MaxCVSize+1, strings.NewReader("x"))
		assert.ErrorIs(t, err, ErrCVTooLarge)
	})

	// Reddedilen denemelerden sonra depo hâlâ boş olmalı.
	objects, err := store.List(ctx, storage.BucketDocuments, "")
	require.NoError(t, err)
	assert.Empty(t, objects)

	_, err = svc.GetCurrentCV(ctx)
	assert.ErrorIs(t, err, ErrCVNotFound)
}

func TestUploadCVReplacesExisting(t *testing.T) {
	store, root := setupTestStore(t)
	svc := NewCVService()
	ctx := context.Background()

	require.NoError(t, svc.UploadCV(ctx, "application/pdf", 8, strings.NewReader("ilk-cv")))

	first, err := svc.GetCurrentCV(ctx)
	require.NoError(t, err)

	// Zaman damgalı ad çakışmasın diye eski dosyayı geriye çek.
	oldPath := filepath.Join(root, storage.BucketDocuments, filepath.FromSlash(first.Name))
	past := time.Now().Add(-time.Minute)
	require.NoError(t, os.Chtimes(oldPath, past, past))

	require.NoError(t, svc.UploadCV(ctx, "application/pdf", 9, strings.NewReader("yeni-cv")))

	// Eski dosya silinmiş, depoda yalnızca yeni CV var.
	objects, err := store.List(ctx, storage.BucketDocuments, "cv")
	require.NoError(t, err)
	require.Len(t, objects, 1)

	rc, err := svc.OpenCurrentCV(ctx)
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "yeni-cv", string(data))
}

func TestDeleteCVPersists(t *testing.T) {
	setupTestStore(t)
	svc := NewCVService()
	ctx := context.Background()

	require.NoError(t, svc.UploadCV(ctx, "application/pdf", 3, strings.NewReader("cv")))
	require.NoError(t, svc.DeleteCV(ctx))

	// Silme kalıcıdır: yeniden sorgulandığında CV yok.
	_, err := svc.GetCurrentCV(ctx)
	assert.ErrorIs(t, err, ErrCVNotFound)

	assert.ErrorIs(t, svc.DeleteCV(ctx), ErrCVNotFound)
}
