package services

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolyo.link/models"
	"portfolyo.link/pkg/storage"
)

func TestClampOrbitalSpeed(t *testing.T) {
	assert.Equal(t, models.OrbitalSpeedDefault1, clampOrbitalSpeed(0, models.OrbitalSpeedDefault1))
	assert.Equal(t, models.OrbitalSpeedDefault2, clampOrbitalSpeed(-5, models.OrbitalSpeedDefault2))
	assert.Equal(t, models.OrbitalSpeedMin, clampOrbitalSpeed(2, models.OrbitalSpeedDefault1))
	assert.Equal(t, models.OrbitalSpeedMax, clampOrbitalSpeed(120, models.OrbitalSpeedDefault1))
	assert.Equal(t, 25, clampOrbitalSpeed(25, models.OrbitalSpeedDefault1))
}

func TestGetConfigReturnsDefaultsWhenMissing(t *testing.T) {
	setupTestDB(t)
	setupTestStore(t)
	svc := NewAvatarService()

	config, err := svc.GetConfig(context.Background())
	require.NoError(t, err)
	assert.Zero(t, config.ID) // Kaydedilmemiş varsayılan
	assert.Equal(t, models.OrbitalSpeedDefault1, config.OrbitalSpeed1)
	assert.Equal(t, models.OrbitalSpeedDefault2, config.OrbitalSpeed2)
	assert.True(t, config.ShowOrbitalElements)
}

func TestUpsertConfigClampsSpeeds(t *testing.T) {
	setupTestDB(t)
	setupTestStore(t)
	svc := NewAvatarService()
	ctx := context.Background()

	created, err := svc.UpsertConfig(ctx, 1, AvatarInput{
		ShowOrbitalElements: true,
		OrbitalSpeed1:       2,   // alt sınırın altında
		OrbitalSpeed2:       999, // üst sınırın üstünde
	})
	require.NoError(t, err)
	assert.Equal(t, models.OrbitalSpeedMin, created.OrbitalSpeed1)
	assert.Equal(t, models.OrbitalSpeedMax, created.OrbitalSpeed2)

	// İkinci upsert aynı satırı günceller.
	updated, err := svc.UpsertConfig(ctx, 1, AvatarInput{OrbitalSpeed1: 30, OrbitalSpeed2: 40})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 30, updated.OrbitalSpeed1)
	assert.False(t, updated.ShowOrbitalElements)
}

// testPNG küçük bir PNG üretir.
func testPNG(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	require.NoError(t, png.Encode(&buf, img))
	return &buf
}

func TestUploadAvatarImage(t *testing.T) {
	setupTestDB(t)
	store, _ := setupTestStore(t)
	svc := NewAvatarService()
	ctx := context.Background()

	t.Run("resim olmayan içerik reddedilir", func(t *testing.T) {
		_, err := svc.UploadAvatarImage(ctx, 1, "application/pdf", 10, strings.NewReader("x"))
		assert.ErrorIs(t, err, ErrAvatarImageInvalid)
	})

	t.Run("boyut sınırı uygulanır", func(t *testing.T) {
		_, err := svc.UploadAvatarImage(ctx, 1, "image/png", MaxAvatarImageSize+1, strings.NewReader("x"))
		assert.ErrorIs(t, err, ErrAvatarImageTooLarge)
	})

	t.Run("geçerli görsel yüklenir ve yapılandırma güncellenir", func(t *testing.T) {
		buf := testPNG(t)
		url, err := svc.UploadAvatarImage(ctx, 1, "image/png", int64(buf.Len()), buf)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(url, "/storage/avatars/"))
		assert.True(t, strings.HasSuffix(url, ".png"))

		config, err := svc.GetConfig(ctx)
		require.NoError(t, err)
		assert.Equal(t, url, config.AvatarURL)

		objects, err := store.List(ctx, storage.BucketAvatars, "")
		require.NoError(t, err)
		assert.Len(t, objects, 1)
	})
}
