package repositories

import (
	"context"
	"errors"
	"time"

	"portfolyo.link/configs/configsdatabase"
	"portfolyo.link/models"

	"gorm.io/gorm"
)

// IUserRepository kullanıcı veritabanı işlemleri için arayüz.
type IUserRepository interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Save(ctx context.Context, user *models.User) error
	UpdateLastLogin(ctx context.Context, id uint, at time.Time) error
	GetCount(ctx context.Context) (int64, error)
}

// UserRepository IUserRepository'nin GORM implementasyonu.
type UserRepository struct {
	base *BaseRepository[models.User]
	db   *gorm.DB
}

func NewUserRepository() IUserRepository {
	return NewUserRepositoryTx(configsdatabase.GetDB())
}

func NewUserRepositoryTx(db *gorm.DB) IUserRepository {
	return &UserRepository{base: NewBaseRepository[models.User](db), db: db}
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	return r.base.FindByID(ctx, id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return r.base.Create(ctx, user)
}

func (r *UserRepository) Save(ctx context.Context, user *models.User) error {
	return r.base.Save(ctx, user)
}

// UpdateLastLogin yalnızca last_login kolonunu günceller; audit alanlarına
// dokunmamak için map tabanlı update kullanılır.
func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uint, at time.Time) error {
	return r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		UpdateColumn("last_login", at).Error
}

func (r *UserRepository) GetCount(ctx context.Context) (int64, error) {
	return r.base.GetCount(ctx)
}

var _ IUserRepository = (*UserRepository)(nil)
