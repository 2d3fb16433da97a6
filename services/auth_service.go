package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"portfolyo.link/configs/configslog"
	"portfolyo.link/models"
	"portfolyo.link/repositories"

	"go.uber.org/zap"
)

// AuthServiceError kimlik doğrulama hataları.
type AuthServiceError string

func (e AuthServiceError) Error() string { return string(e) }

const (
	ErrInvalidCredentials AuthServiceError = "e-posta veya şifre hatalı"
	ErrUserInactive       AuthServiceError = "hesabınız pasif durumda"
	ErrUserNotFound       AuthServiceError = "kullanıcı bulunamadı"
)

// IAuthService oturum açma işlemleri için arayüz.
type IAuthService interface {
	// Authenticate e-posta/şifre doğrular; başarıda last_login günceller.
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
}

// AuthService IAuthService arayüzünü uygular.
type AuthService struct {
	userRepo repositories.IUserRepository
}

func NewAuthService() IAuthService {
	return &AuthService{userRepo: repositories.NewUserRepository()}
}

func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			// Kullanıcı yok ile şifre yanlış ayrımı dışarı sızdırılmaz.
			return nil, ErrInvalidCredentials
		}
		configslog.Log.Error("Authenticate: kullanıcı sorgusu başarısız", zap.Error(err))
		return nil, err
	}

	if !user.CheckPassword(password) {
		configslog.SLog.Warnf("Başarısız giriş denemesi: %s", email)
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}

	now := time.Now()
	if err := s.userRepo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		// Girişi engellemez; yalnızca loglanır.
		configslog.Log.Warn("last_login güncellenemedi", zap.Uint("userID", user.ID), zap.Error(err))
	}
	user.LastLogin = &now

	configslog.SLog.Infof("Kullanıcı giriş yaptı: %s (ID %d)", user.Email, user.ID)
	return user, nil
}

func (s *AuthService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

var _ IAuthService = (*AuthService)(nil)
