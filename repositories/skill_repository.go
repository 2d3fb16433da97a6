package repositories

import (
	"context"

	"portfolyo.link/configs/configsdatabase"
	"portfolyo.link/models"

	"gorm.io/gorm"
)

// ISkillRepository yetkinlik veritabanı işlemleri için arayüz.
type ISkillRepository interface {
	FindAllOrdered(ctx context.Context) ([]models.Skill, error)
	FindByID(ctx context.Context, id uint) (*models.Skill, error)
	Create(ctx context.Context, skill *models.Skill) error
	Save(ctx context.Context, skill *models.Skill) error
	Delete(ctx context.Context, skill *models.Skill) error
	GetCount(ctx context.Context) (int64, error)
}

// SkillRepository ISkillRepository'nin GORM implementasyonu.
type SkillRepository struct {
	base *BaseRepository[models.Skill]
}

func NewSkillRepository() ISkillRepository {
	return NewSkillRepositoryTx(configsdatabase.GetDB())
}

func NewSkillRepositoryTx(db *gorm.DB) ISkillRepository {
	return &SkillRepository{base: NewBaseRepository[models.Skill](db)}
}

func (r *SkillRepository) FindAllOrdered(ctx context.Context) ([]models.Skill, error) {
	return r.base.FindAllOrdered(ctx, displayOrder)
}

func (r *SkillRepository) FindByID(ctx context.Context, id uint) (*models.Skill, error) {
	return r.base.FindByID(ctx, id)
}

func (r *SkillRepository) Create(ctx context.Context, skill *models.Skill) error {
	return r.base.Create(ctx, skill)
}

func (r *SkillRepository) Save(ctx context.Context, skill *models.Skill) error {
	return r.base.Save(ctx, skill)
}

func (r *SkillRepository) Delete(ctx context.Context, skill *models.Skill) error {
	return r.base.Delete(ctx, skill)
}

func (r *SkillRepository) GetCount(ctx context.Context) (int64, error) {
	return r.base.GetCount(ctx)
}

var _ ISkillRepository = (*SkillRepository)(nil)
