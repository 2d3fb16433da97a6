package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertAboutCreatesThenUpdates(t *testing.T) {
	setupTestDB(t)
	svc := NewAboutService()
	ctx := context.Background()

	// İlk kayıt yokken ErrAboutNotFound döner.
	_, err := svc.GetAbout(ctx)
	assert.ErrorIs(t, err, ErrAboutNotFound)

	created, err := svc.UpsertAbout(ctx, 1, AboutInput{
		Title:       "Merhaba",
		Description: "Ben bir geliştiriciyim.",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	// İkinci upsert yeni satır açmaz, aynı satırı günceller.
	updated, err := svc.UpsertAbout(ctx, 1, AboutInput{
		Title:       "Selam",
		Description: "Güncellenmiş açıklama.",
		ImageURL:    "/storage/avatars/x.png",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	reloaded, err := svc.GetAbout(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Selam", reloaded.Title)
	assert.Equal(t, "Güncellenmiş açıklama.", reloaded.Description)
}

func TestUpsertAboutValidation(t *testing.T) {
	setupTestDB(t)
	svc := NewAboutService()
	ctx := context.Background()

	_, err := svc.UpsertAbout(ctx, 1, AboutInput{Title: "  ", Description: "x"})
	assert.ErrorIs(t, err, ErrAboutTitleRequired)

	_, err = svc.UpsertAbout(ctx, 1, AboutInput{Title: "x", Description: "  "})
	assert.ErrorIs(t, err, ErrAboutTitleRequired)
}
