package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"

	"portfolyo.link/configs/configslog"
	"portfolyo.link/configs/configsstorage"
	"portfolyo.link/models"
	"portfolyo.link/pkg/storage"
	"portfolyo.link/repositories"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AvatarServiceError avatar servisi hataları.
type AvatarServiceError string

func (e AvatarServiceError) Error() string { return string(e) }

const (
	ErrAvatarConfigNotFound AvatarServiceError = "avatar yapılandırması bulunamadı"
	ErrAvatarSaveFailed     AvatarServiceError = "avatar yapılandırması kaydedilemedi"
	ErrAvatarImageInvalid   AvatarServiceError = "avatar bir resim dosyası olmalıdır"
	ErrAvatarImageTooLarge  AvatarServiceError = "avatar görseli 5MB'dan büyük olamaz"
	ErrAvatarImageFailed    AvatarServiceError = "avatar görseli yüklenemedi"
)

// Avatar görseli sınırları: 5MB üst sınır, 512px hedef boyut.
const (
	MaxAvatarImageSize = 5 << 20
	avatarImageSize    = 512
)

// AvatarInput panel formundan gelen avatar ayarlarını taşır.
type AvatarInput struct {
	ShowOrbitalElements   bool `form:"show_orbital_elements"`
	OrbitalSpeed1         int  `form:"orbital_speed_1"`
	OrbitalSpeed2         int  `form:"orbital_speed_2"`
	ShowFloatingParticles bool `form:"show_floating_particles"`
	ShowAnimatedBorder    bool `form:"show_animated_border"`
}

// clampOrbitalSpeed hız değerini geçerli aralığa çeker; sıfır/negatif
// değer varsayılana düşer.
func clampOrbitalSpeed(speed, fallback int) int {
	if speed <= 0 {
		return fallback
	}
	if speed < models.OrbitalSpeedMin {
		return models.OrbitalSpeedMin
	}
	if speed > models.OrbitalSpeedMax {
		return models.OrbitalSpeedMax
	}
	return speed
}

// IAvatarService avatar yapılandırması işlemleri için arayüz.
type IAvatarService interface {
	// GetConfig singleton yapılandırmayı döner; satır yoksa varsayılan
	// değerlerle (kaydetmeden) döner.
	GetConfig(ctx context.Context) (*models.AvatarConfig, error)
	UpsertConfig(ctx context.Context, userID uint, input AvatarInput) (*models.AvatarConfig, error)
	// UploadAvatarImage görseli 512px'e ölçekleyip depoya yazar ve
	// yapılandırmadaki AvatarURL alanını günceller.
	UploadAvatarImage(ctx context.Context, userID uint, contentType string, size int64, r io.Reader) (string, error)
}

// AvatarService IAvatarService arayüzünü uygular.
type AvatarService struct {
	repo  repositories.IAvatarRepository
	store storage.IStore
}

func NewAvatarService() IAvatarService {
	return &AvatarService{
		repo:  repositories.NewAvatarRepository(),
		store: configsstorage.GetStore(),
	}
}

func defaultAvatarConfig() *models.AvatarConfig {
	return &models.AvatarConfig{
		ShowOrbitalElements:   true,
		OrbitalSpeed1:         models.OrbitalSpeedDefault1,
		OrbitalSpeed2:         models.OrbitalSpeedDefault2,
		ShowFloatingParticles: true,
		ShowAnimatedBorder:    true,
	}
}

func (s *AvatarService) GetConfig(ctx context.Context) (*models.AvatarConfig, error) {
	config, err := s.repo.GetSingleton(ctx)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return defaultAvatarConfig(), nil
		}
		return nil, err
	}
	return config, nil
}

func (s *AvatarService) UpsertConfig(ctx context.Context, userID uint, input AvatarInput) (*models.AvatarConfig, error) {
	saveCtx := models.ContextWithUserID(ctx, userID)

	config, err := s.repo.GetSingleton(ctx)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			configslog.Log.Error("Avatar yapılandırması okunamadı", zap.Error(err))
			return nil, err
		}
		config = defaultAvatarConfig()
		s.applyInput(config, input)
		if err := s.repo.Create(saveCtx, config); err != nil {
			configslog.Log.Error("Avatar yapılandırması oluşturulamadı", zap.Error(err))
			return nil, ErrAvatarSaveFailed
		}
		configslog.SLog.Infof("Avatar yapılandırması oluşturuldu: ID %d", config.ID)
		return config, nil
	}

	s.applyInput(config, input)
	if err := s.repo.Save(saveCtx, config); err != nil {
		configslog.Log.Error("Avatar yapılandırması güncellenemedi", zap.Uint("id", config.ID), zap.Error(err))
		return nil, ErrAvatarSaveFailed
	}

	configslog.SLog.Infof("Avatar yapılandırması güncellendi: ID %d", config.ID)
	return config, nil
}

func (s *AvatarService) applyInput(config *models.AvatarConfig, input AvatarInput) {
	config.ShowOrbitalElements = input.ShowOrbitalElements
	config.OrbitalSpeed1 = clampOrbitalSpeed(input.OrbitalSpeed1, models.OrbitalSpeedDefault1)
	config.OrbitalSpeed2 = clampOrbitalSpeed(input.OrbitalSpeed2, models.OrbitalSpeedDefault2)
	config.ShowFloatingParticles = input.ShowFloatingParticles
	config.ShowAnimatedBorder = input.ShowAnimatedBorder
}

// UploadAvatarImage görseli doğrular, 512px kutusuna sığdırır, PNG olarak
// depoya yazar ve AvatarURL'i günceller. Doğrulama hatasında depoya ve
// veritabanına dokunulmaz.
func (s *AvatarService) UploadAvatarImage(ctx context.Context, userID uint, contentType string, size int64, r io.Reader) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrAvatarImageInvalid
	}
	if size > MaxAvatarImageSize {
		return "", ErrAvatarImageTooLarge
	}

	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		configslog.Log.Warn("Avatar görseli çözülemedi", zap.Error(err))
		return "", ErrAvatarImageInvalid
	}
	fitted := imaging.Fit(img, avatarImageSize, avatarImageSize, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, fitted, imaging.PNG); err != nil {
		configslog.Log.Error("Avatar görseli encode edilemedi", zap.Error(err))
		return "", ErrAvatarImageFailed
	}

	objectPath := uuid.NewString() + ".png"
	if err := s.store.Upload(ctx, storage.BucketAvatars, objectPath, &buf); err != nil {
		configslog.Log.Error("Avatar görseli depoya yazılamadı", zap.String("path", objectPath), zap.Error(err))
		return "", ErrAvatarImageFailed
	}
	publicURL := s.store.PublicURL(storage.BucketAvatars, objectPath)

	saveCtx := models.ContextWithUserID(ctx, userID)
	config, err := s.repo.GetSingleton(ctx)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			return "", err
		}
		config = defaultAvatarConfig()
		config.AvatarURL = publicURL
		if err := s.repo.Create(saveCtx, config); err != nil {
			configslog.Log.Error("Avatar yapılandırması oluşturulamadı", zap.Error(err))
			return "", ErrAvatarSaveFailed
		}
		return publicURL, nil
	}

	config.AvatarURL = publicURL
	if err := s.repo.Save(saveCtx, config); err != nil {
		configslog.Log.Error("AvatarURL güncellenemedi", zap.Uint("id", config.ID), zap.Error(err))
		return "", ErrAvatarSaveFailed
	}

	configslog.SLog.Infof("Avatar görseli güncellendi: %s", publicURL)
	return publicURL, nil
}

var _ IAvatarService = (*AvatarService)(nil)
