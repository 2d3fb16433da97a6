package repositories

import (
	"context"
	"errors"

	"portfolyo.link/configs/configsdatabase"
	"portfolyo.link/models"

	"gorm.io/gorm"
)

// IAboutRepository singleton hakkımda içeriği için arayüz.
type IAboutRepository interface {
	// GetSingleton tablodaki tek satırı döner; satır yoksa ErrNotFound.
	GetSingleton(ctx context.Context) (*models.AboutContent, error)
	Create(ctx context.Context, about *models.AboutContent) error
	Save(ctx context.Context, about *models.AboutContent) error
}

// AboutRepository IAboutRepository'nin GORM implementasyonu.
type AboutRepository struct {
	db *gorm.DB
}

func NewAboutRepository() IAboutRepository {
	return NewAboutRepositoryTx(configsdatabase.GetDB())
}

func NewAboutRepositoryTx(db *gorm.DB) IAboutRepository {
	return &AboutRepository{db: db}
}

func (r *AboutRepository) GetSingleton(ctx context.Context) (*models.AboutContent, error) {
	var about models.AboutContent
	// Birden fazla satır oluşmuşsa (olmamalı) en eski kayıt esas alınır.
	err := r.db.WithContext(ctx).Order("id ASC").First(&about).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &about, nil
}

func (r *AboutRepository) Create(ctx context.Context, about *models.AboutContent) error {
	return r.db.WithContext(ctx).Create(about).Error
}

func (r *AboutRepository) Save(ctx context.Context, about *models.AboutContent) error {
	return r.db.WithContext(ctx).Save(about).Error
}

var _ IAboutRepository = (*AboutRepository)(nil)
