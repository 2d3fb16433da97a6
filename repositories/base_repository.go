package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound repository katmanının ortak "kayıt yok" hatasıdır.
// Servisler gorm.ErrRecordNotFound yerine bunu görür.
var ErrNotFound = errors.New("kayıt bulunamadı")

// IBaseRepository tüm entity repository'lerinin paylaştığı temel işlemler.
type IBaseRepository[T any] interface {
	Create(ctx context.Context, entity *T) error
	Save(ctx context.Context, entity *T) error
	Delete(ctx context.Context, entity *T) error
	FindByID(ctx context.Context, id uint) (*T, error)
	FindAllOrdered(ctx context.Context, order string) ([]T, error)
	FindPaginated(ctx context.Context, order string, limit, offset int) ([]T, error)
	GetCount(ctx context.Context) (int64, error)
}

// BaseRepository IBaseRepository'nin GORM implementasyonudur.
// Context hem iptal (cancellation) hem de audit hook'ları için
// WithContext ile GORM'a iletilir.
type BaseRepository[T any] struct {
	db *gorm.DB
}

// NewBaseRepository verilen bağlantı (veya transaction) ile base repo üretir.
func NewBaseRepository[T any](db *gorm.DB) *BaseRepository[T] {
	return &BaseRepository[T]{db: db}
}

func (r *BaseRepository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

func (r *BaseRepository[T]) Save(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Save(entity).Error
}

func (r *BaseRepository[T]) Delete(ctx context.Context, entity *T) error {
	result := r.db.WithContext(ctx).Delete(entity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *BaseRepository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).First(&entity, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

func (r *BaseRepository[T]) FindAllOrdered(ctx context.Context, order string) ([]T, error) {
	var entities []T
	err := r.db.WithContext(ctx).Order(order).Find(&entities).Error
	return entities, err
}

func (r *BaseRepository[T]) FindPaginated(ctx context.Context, order string, limit, offset int) ([]T, error) {
	var entities []T
	err := r.db.WithContext(ctx).Order(order).Limit(limit).Offset(offset).Find(&entities).Error
	return entities, err
}

func (r *BaseRepository[T]) GetCount(ctx context.Context) (int64, error) {
	var model T
	var count int64
	err := r.db.WithContext(ctx).Model(&model).Count(&count).Error
	return count, err
}
