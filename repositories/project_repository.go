package repositories

import (
	"context"

	"portfolyo.link/configs/configsdatabase"
	"portfolyo.link/models"
	"portfolyo.link/pkg/queryparams"

	"gorm.io/gorm"
)

// Liste sıralaması her yerde aynıdır: order_index, eşitlikte id.
const displayOrder = "order_index ASC, id ASC"

// IProjectRepository proje veritabanı işlemleri için arayüz.
type IProjectRepository interface {
	FindAllOrdered(ctx context.Context) ([]models.Project, error)
	FindPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Project, int64, error)
	FindByID(ctx context.Context, id uint) (*models.Project, error)
	Create(ctx context.Context, project *models.Project) error
	Save(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, project *models.Project) error
	GetCount(ctx context.Context) (int64, error)
}

// ProjectRepository IProjectRepository'nin GORM implementasyonu.
type ProjectRepository struct {
	base *BaseRepository[models.Project]
}

// NewProjectRepository global bağlantı ile repo üretir.
func NewProjectRepository() IProjectRepository {
	return NewProjectRepositoryTx(configsdatabase.GetDB())
}

// NewProjectRepositoryTx verilen bağlantı/transaction ile repo üretir.
func NewProjectRepositoryTx(db *gorm.DB) IProjectRepository {
	return &ProjectRepository{base: NewBaseRepository[models.Project](db)}
}

// FindAllOrdered tüm projeleri görüntüleme sırasına göre döner.
func (r *ProjectRepository) FindAllOrdered(ctx context.Context) ([]models.Project, error) {
	return r.base.FindAllOrdered(ctx, displayOrder)
}

// FindPaginated sayfalanmış proje listesi ve toplam kayıt sayısını döner.
func (r *ProjectRepository) FindPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Project, int64, error) {
	total, err := r.base.GetCount(ctx)
	if err != nil {
		return nil, 0, err
	}
	projects, err := r.base.FindPaginated(ctx, displayOrder, params.PerPage, params.CalculateOffset())
	if err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}

func (r *ProjectRepository) FindByID(ctx context.Context, id uint) (*models.Project, error) {
	return r.base.FindByID(ctx, id)
}

func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	return r.base.Create(ctx, project)
}

func (r *ProjectRepository) Save(ctx context.Context, project *models.Project) error {
	return r.base.Save(ctx, project)
}

func (r *ProjectRepository) Delete(ctx context.Context, project *models.Project) error {
	return r.base.Delete(ctx, project)
}

func (r *ProjectRepository) GetCount(ctx context.Context) (int64, error) {
	return r.base.GetCount(ctx)
}

var _ IProjectRepository = (*ProjectRepository)(nil)
