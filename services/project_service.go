package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"portfolyo.link/configs/configslog"
	"portfolyo.link/configs/configsstorage"
	"portfolyo.link/models"
	"portfolyo.link/pkg/queryparams"
	"portfolyo.link/pkg/storage"
	"portfolyo.link/pkg/turkishsearch"
	"portfolyo.link/repositories"
	"portfolyo.link/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProjectServiceError proje servisi hataları.
type ProjectServiceError string

func (e ProjectServiceError) Error() string { return string(e) }

const (
	ErrProjectNotFound        ProjectServiceError = "proje bulunamadı"
	ErrProjectInvalidInput    ProjectServiceError = "geçersiz proje verisi"
	ErrProjectTitleRequired   ProjectServiceError = "proje başlığı ve açıklaması zorunludur"
	ErrProjectInvalidCategory ProjectServiceError = "geçersiz proje kategorisi"
	ErrProjectCreationFailed  ProjectServiceError = "proje oluşturulamadı"
	ErrProjectUpdateFailed    ProjectServiceError = "proje güncellenemedi"
	ErrProjectDeletionFailed  ProjectServiceError = "proje silinemedi"
	ErrProjectImageInvalid    ProjectServiceError = "proje görseli bir resim dosyası olmalıdır"
	ErrProjectImageTooLarge   ProjectServiceError = "proje görseli 5MB'dan büyük olamaz"
	ErrProjectImageFailed     ProjectServiceError = "proje görseli yüklenemedi"
)

// MaxProjectImageSize proje görseli için bayt cinsinden üst sınır (5MB).
const MaxProjectImageSize = 5 << 20

// Ana sayfa teaser listesinde gösterilecek proje sayısı.
const TeaserProjectLimit = 3

// ProjectInput panel formundan gelen proje verisini taşır. Tags alanı
// virgülle ayrılmış serbest metindir; kaydederken listeye çevrilir.
type ProjectInput struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	ImageURL    string `form:"image_url"`
	Tags        string `form:"tags"`
	Category    string `form:"category"`
	LiveURL     string `form:"live_url"`
	RepoURL     string `form:"repo_url"`
	Featured    bool   `form:"featured"`
	OrderIndex  int    `form:"order_index"`
}

// ValidateProjectInput zorunlu alanları ve kategori değerini doğrular.
// Boş kategori varsayılana çekilir; tanınmayan kategori reddedilir.
func ValidateProjectInput(input *ProjectInput) error {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	if input.Title == "" || input.Description == "" {
		return ErrProjectTitleRequired
	}
	if input.Category == "" {
		input.Category = models.ProjectCategoryWebsites
	}
	if !models.IsValidProjectCategory(input.Category) {
		return ErrProjectInvalidCategory
	}
	return nil
}

// IProjectService proje işlemleri için arayüz.
type IProjectService interface {
	CreateProject(ctx context.Context, userID uint, input ProjectInput) (*models.Project, error)
	UpdateProject(ctx context.Context, id uint, userID uint, input ProjectInput) error
	DeleteProject(ctx context.Context, id uint, userID uint) error
	GetProjectByID(ctx context.Context, id uint) (*models.Project, error)
	GetAllProjects(ctx context.Context) ([]models.Project, error)
	GetProjectsPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Project, queryparams.PaginationMeta, error)
	SearchProjects(ctx context.Context, term, category string) ([]models.Project, error)
	GetTeaserProjects(ctx context.Context, category string) ([]models.Project, error)
	GetProjectCount(ctx context.Context) (int64, error)
	UploadProjectImage(ctx context.Context, filename, contentType string, size int64, r io.Reader) (string, error)
}

// ProjectService IProjectService arayüzünü uygular.
type ProjectService struct {
	repo  repositories.IProjectRepository
	store storage.IStore
}

// NewProjectService global bağımlılıklarla servis üretir.
func NewProjectService() IProjectService {
	return &ProjectService{
		repo:  repositories.NewProjectRepository(),
		store: configsstorage.GetStore(),
	}
}

// CreateProject yeni bir proje kaydı oluşturur.
func (s *ProjectService) CreateProject(ctx context.Context, userID uint, input ProjectInput) (*models.Project, error) {
	if err := ValidateProjectInput(&input); err != nil {
		return nil, err
	}
	if userID == 0 {
		return nil, fmt.Errorf("%w: geçersiz kullanıcı ID", ErrProjectInvalidInput)
	}

	project := models.Project{
		Title:       input.Title,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		Tags:        utils.ParseListField(input.Tags),
		Category:    input.Category,
		LiveURL:     input.LiveURL,
		RepoURL:     input.RepoURL,
		Featured:    input.Featured,
		OrderIndex:  input.OrderIndex,
	}

	createCtx := models.ContextWithUserID(ctx, userID)
	if err := s.repo.Create(createCtx, &project); err != nil {
		configslog.Log.Error("Proje oluşturulurken veritabanı hatası", zap.Error(err))
		return nil, ErrProjectCreationFailed
	}

	configslog.SLog.Infof("Proje oluşturuldu: ID %d (%s)", project.ID, project.Title)
	return &project, nil
}

// UpdateProject mevcut projeyi form verisiyle günceller. Son yazan kazanır;
// sürümleme yoktur.
func (s *ProjectService) UpdateProject(ctx context.Context, id uint, userID uint, input ProjectInput) error {
	if err := ValidateProjectInput(&input); err != nil {
		return err
	}
	if id == 0 || userID == 0 {
		return fmt.Errorf("%w: geçersiz ID", ErrProjectInvalidInput)
	}

	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrProjectNotFound
		}
		configslog.Log.Error("UpdateProject: kayıt okunamadı", zap.Uint("id", id), zap.Error(err))
		return err
	}

	project.Title = input.Title
	project.Description = input.Description
	project.ImageURL = input.ImageURL
	project.Tags = utils.ParseListField(input.Tags)
	project.Category = input.Category
	project.LiveURL = input.LiveURL
	project.RepoURL = input.RepoURL
	project.Featured = input.Featured
	project.OrderIndex = input.OrderIndex

	updateCtx := models.ContextWithUserID(ctx, userID)
	if err := s.repo.Save(updateCtx, project); err != nil {
		configslog.Log.Error("Proje güncellenirken veritabanı hatası", zap.Uint("id", id), zap.Error(err))
		return ErrProjectUpdateFailed
	}

	configslog.SLog.Infof("Proje güncellendi: ID %d", id)
	return nil
}

// DeleteProject projeyi siler. Silme veritabanında onaylanmadan liste
// görünümüne yansımaz (handler silme sonrasında listeyi yeniden çeker).
func (s *ProjectService) DeleteProject(ctx context.Context, id uint, userID uint) error {
	if id == 0 || userID == 0 {
		return fmt.Errorf("%w: geçersiz ID", ErrProjectInvalidInput)
	}

	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrProjectNotFound
		}
		return err
	}

	deleteCtx := models.ContextWithUserID(ctx, userID)
	if err := s.repo.Delete(deleteCtx, project); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrProjectNotFound
		}
		configslog.Log.Error("Proje silinirken veritabanı hatası", zap.Uint("id", id), zap.Error(err))
		return ErrProjectDeletionFailed
	}

	configslog.SLog.Infof("Proje silindi: ID %d", id)
	return nil
}

// GetProjectByID projeyi ID ile döner.
func (s *ProjectService) GetProjectByID(ctx context.Context, id uint) (*models.Project, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return project, nil
}

// GetAllProjects tüm projeleri görüntüleme sırasına göre döner.
func (s *ProjectService) GetAllProjects(ctx context.Context) ([]models.Project, error) {
	return s.repo.FindAllOrdered(ctx)
}

// GetProjectsPaginated paneldeki liste görünümü için sayfalanmış sonuç döner.
func (s *ProjectService) GetProjectsPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Project, queryparams.PaginationMeta, error) {
	params.Validate()
	projects, total, err := s.repo.FindPaginated(ctx, params)
	if err != nil {
		return nil, queryparams.PaginationMeta{}, err
	}
	meta := queryparams.PaginationMeta{
		CurrentPage: params.Page,
		PerPage:     params.PerPage,
		TotalItems:  total,
		TotalPages:  queryparams.CalculateTotalPages(total, params.PerPage),
	}
	return projects, meta, nil
}

// SearchProjects serbest metin araması ile kategori filtresinin kesişimini
// döner. Arama başlık, açıklama ve etiketlerde büyük/küçük harf bağımsız
// alt dizi eşleşmesidir; boş kesişim boş liste döner, hata değil.
func (s *ProjectService) SearchProjects(ctx context.Context, term, category string) ([]models.Project, error) {
	projects, err := s.repo.FindAllOrdered(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if !matchesCategory(p, category) {
			continue
		}
		if !matchesSearchTerm(p, term) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered, nil
}

// GetTeaserProjects ana sayfa için öne çıkan projelerin ilk üçünü döner.
func (s *ProjectService) GetTeaserProjects(ctx context.Context, category string) ([]models.Project, error) {
	projects, err := s.repo.FindAllOrdered(ctx)
	if err != nil {
		return nil, err
	}

	teaser := make([]models.Project, 0, TeaserProjectLimit)
	for _, p := range projects {
		if !p.Featured || !matchesCategory(p, category) {
			continue
		}
		teaser = append(teaser, p)
		if len(teaser) == TeaserProjectLimit {
			break
		}
	}
	return teaser, nil
}

// GetProjectCount toplam proje sayısını döner.
func (s *ProjectService) GetProjectCount(ctx context.Context) (int64, error) {
	return s.repo.GetCount(ctx)
}

// UploadProjectImage proje görselini doğrulayıp depoya yazar ve public
// URL'ini döner. Doğrulama hatasında depoya hiçbir şey yazılmaz.
func (s *ProjectService) UploadProjectImage(ctx context.Context, filename, contentType string, size int64, r io.Reader) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrProjectImageInvalid
	}
	if size > MaxProjectImageSize {
		return "", ErrProjectImageTooLarge
	}

	ext := strings.ToLower(path.Ext(filename))
	if ext == "" {
		ext = ".png"
	}
	objectPath := "projects/" + uuid.NewString() + ext

	if err := s.store.Upload(ctx, storage.BucketProjectImages, objectPath, r); err != nil {
		configslog.Log.Error("Proje görseli yüklenemedi", zap.String("path", objectPath), zap.Error(err))
		return "", ErrProjectImageFailed
	}

	return s.store.PublicURL(storage.BucketProjectImages, objectPath), nil
}

// matchesCategory "" ve "all" tüm kategorileri kabul eder.
func matchesCategory(p models.Project, category string) bool {
	return category == "" || category == "all" || p.Category == category
}

func matchesSearchTerm(p models.Project, term string) bool {
	if term == "" {
		return true
	}
	return turkishsearch.Contains(p.Title, term) ||
		turkishsearch.Contains(p.Description, term) ||
		turkishsearch.ContainsAny(p.Tags, term)
}

var _ IProjectService = (*ProjectService)(nil)
