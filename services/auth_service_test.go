package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"portfolyo.link/models"
)

func seedUser(t *testing.T, db *gorm.DB, email, password string, active bool) *models.User {
	t.Helper()
	user := &models.User{
		Name:     "Test",
		Email:    email,
		IsAdmin:  true,
		IsActive: active,
	}
	require.NoError(t, user.SetPassword(password))
	require.NoError(t, db.Create(user).Error)
	if !active {
		// default:true etiketi yüzünden sıfır değer insert'te ezilir;
		// pasiflik ayrı bir update ile yazılır.
		require.NoError(t, db.Model(user).UpdateColumn("is_active", false).Error)
		user.IsActive = false
	}
	return user
}

func TestAuthenticate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService()
	ctx := context.Background()

	seedUser(t, db, "admin@example.com", "gizli-sifre", true)

	t.Run("doğru bilgilerle giriş", func(t *testing.T) {
		user, err := svc.Authenticate(ctx, "admin@example.com", "gizli-sifre")
		require.NoError(t, err)
		assert.Equal(t, "admin@example.com", user.Email)
		assert.NotNil(t, user.LastLogin)
	})

	t.Run("e-posta normalize edilir", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "  ADMIN@example.com ", "gizli-sifre")
		require.NoError(t, err)
	})

	t.Run("yanlış şifre", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "admin@example.com", "yanlis")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("olmayan kullanıcı aynı hatayı döner", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "yok@example.com", "her-neyse")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("boş girdi", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "", "")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthenticateInactiveUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService()

	seedUser(t, db, "pasif@example.com", "sifre123", false)

	_, err := svc.Authenticate(context.Background(), "pasif@example.com", "sifre123")
	assert.ErrorIs(t, err, ErrUserInactive)
}

func TestGetUserByID(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService()
	ctx := context.Background()

	user := seedUser(t, db, "admin@example.com", "sifre123", true)

	found, err := svc.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, found.Email)

	_, err = svc.GetUserByID(ctx, user.ID+99)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
