package repositories

import (
	"context"

	"portfolyo.link/configs/configsdatabase"
	"portfolyo.link/models"

	"gorm.io/gorm"
)

// IExperienceRepository iş deneyimi veritabanı işlemleri için arayüz.
type IExperienceRepository interface {
	FindAllOrdered(ctx context.Context) ([]models.Experience, error)
	FindByID(ctx context.Context, id uint) (*models.Experience, error)
	Create(ctx context.Context, experience *models.Experience) error
	Save(ctx context.Context, experience *models.Experience) error
	Delete(ctx context.Context, experience *models.Experience) error
	GetCount(ctx context.Context) (int64, error)
}

// ExperienceRepository IExperienceRepository'nin GORM implementasyonu.
type ExperienceRepository struct {
	base *BaseRepository[models.Experience]
}

func NewExperienceRepository() IExperienceRepository {
	return NewExperienceRepositoryTx(configsdatabase.GetDB())
}

func NewExperienceRepositoryTx(db *gorm.DB) IExperienceRepository {
	return &ExperienceRepository{base: NewBaseRepository[models.Experience](db)}
}

func (r *ExperienceRepository) FindAllOrdered(ctx context.Context) ([]models.Experience, error) {
	return r.base.FindAllOrdered(ctx, displayOrder)
}

func (r *ExperienceRepository) FindByID(ctx context.Context, id uint) (*models.Experience, error) {
	return r.base.FindByID(ctx, id)
}

func (r *ExperienceRepository) Create(ctx context.Context, experience *models.Experience) error {
	return r.base.Create(ctx, experience)
}

func (r *ExperienceRepository) Save(ctx context.Context, experience *models.Experience) error {
	return r.base.Save(ctx, experience)
}

func (r *ExperienceRepository) Delete(ctx context.Context, experience *models.Experience) error {
	return r.base.Delete(ctx, experience)
}

func (r *ExperienceRepository) GetCount(ctx context.Context) (int64, error) {
	return r.base.GetCount(ctx)
}

var _ IExperienceRepository = (*ExperienceRepository)(nil)
