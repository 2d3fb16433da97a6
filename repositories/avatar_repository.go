package repositories

import (
	"context"
	"errors"

	"portfolyo.link/configs/configsdatabase"
	"portfolyo.link/models"

	"gorm.io/gorm"
)

// IAvatarRepository singleton avatar yapılandırması için arayüz.
type IAvatarRepository interface {
	GetSingleton(ctx context.Context) (*models.AvatarConfig, error)
	Create(ctx context.Context, config *models.AvatarConfig) error
	Save(ctx context.Context, config *models.AvatarConfig) error
}

// AvatarRepository IAvatarRepository'nin GORM implementasyonu.
type AvatarRepository struct {
	db *gorm.DB
}

func NewAvatarRepository() IAvatarRepository {
	return NewAvatarRepositoryTx(configsdatabase.GetDB())
}

func NewAvatarRepositoryTx(db *gorm.DB) IAvatarRepository {
	return &AvatarRepository{db: db}
}

func (r *AvatarRepository) GetSingleton(ctx context.Context) (*models.AvatarConfig, error) {
	var config models.AvatarConfig
	err := r.db.WithContext(ctx).Order("id ASC").First(&config).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &config, nil
}

func (r *AvatarRepository) Create(ctx context.Context, config *models.AvatarConfig) error {
	return r.db.WithContext(ctx).Create(config).Error
}

func (r *AvatarRepository) Save(ctx context.Context, config *models.AvatarConfig) error {
	return r.db.WithContext(ctx).Save(config).Error
}

var _ IAvatarRepository = (*AvatarRepository)(nil)
