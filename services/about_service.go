package services

import (
	"context"
	"errors"
	"strings"

	"portfolyo.link/configs/configslog"
	"portfolyo.link/models"
	"portfolyo.link/repositories"

	"go.uber.org/zap"
)

// AboutServiceError hakkımda servisi hataları.
type AboutServiceError string

func (e AboutServiceError) Error() string { return string(e) }

const (
	ErrAboutNotFound      AboutServiceError = "hakkımda içeriği bulunamadı"
	ErrAboutTitleRequired AboutServiceError = "başlık ve açıklama zorunludur"
	ErrAboutSaveFailed    AboutServiceError = "hakkımda içeriği kaydedilemedi"
)

// AboutInput panel formundan gelen hakkımda verisini taşır.
type AboutInput struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	ImageURL    string `form:"image_url"`
}

// IAboutService hakkımda içeriği işlemleri için arayüz.
type IAboutService interface {
	GetAbout(ctx context.Context) (*models.AboutContent, error)
	// UpsertAbout singleton satırı günceller; satır yoksa oluşturur.
	UpsertAbout(ctx context.Context, userID uint, input AboutInput) (*models.AboutContent, error)
}

// AboutService IAboutService arayüzünü uygular.
type AboutService struct {
	repo repositories.IAboutRepository
}

func NewAboutService() IAboutService {
	return &AboutService{repo: repositories.NewAboutRepository()}
}

func (s *AboutService) GetAbout(ctx context.Context) (*models.AboutContent, error) {
	about, err := s.repo.GetSingleton(ctx)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAboutNotFound
		}
		return nil, err
	}
	return about, nil
}

func (s *AboutService) UpsertAbout(ctx context.Context, userID uint, input AboutInput) (*models.AboutContent, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	if input.Title == "" || input.Description == "" {
		return nil, ErrAboutTitleRequired
	}

	saveCtx := models.ContextWithUserID(ctx, userID)

	about, err := s.repo.GetSingleton(ctx)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			configslog.Log.Error("Hakkımda içeriği okunamadı", zap.Error(err))
			return nil, err
		}
		// İlk kayıt: singleton satırı oluştur.
		about = &models.AboutContent{
			Title:       input.Title,
			Description: input.Description,
			ImageURL:    input.ImageURL,
		}
		if err := s.repo.Create(saveCtx, about); err != nil {
			configslog.Log.Error("Hakkımda içeriği oluşturulamadı", zap.Error(err))
			return nil, ErrAboutSaveFailed
		}
		configslog.SLog.Infof("Hakkımda içeriği oluşturuldu: ID %d", about.ID)
		return about, nil
	}

	about.Title = input.Title
	about.Description = input.Description
	about.ImageURL = input.ImageURL
	if err := s.repo.Save(saveCtx, about); err != nil {
		configslog.Log.Error("Hakkımda içeriği güncellenemedi", zap.Uint("id", about.ID), zap.Error(err))
		return nil, ErrAboutSaveFailed
	}

	configslog.SLog.Infof("Hakkımda içeriği güncellendi: ID %d", about.ID)
	return about, nil
}

var _ IAboutService = (*AboutService)(nil)
