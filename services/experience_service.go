package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"portfolyo.link/configs/configslog"
	"portfolyo.link/models"
	"portfolyo.link/repositories"
	"portfolyo.link/utils"

	"go.uber.org/zap"
)

// ExperienceServiceError iş deneyimi servisi hataları.
type ExperienceServiceError string

func (e ExperienceServiceError) Error() string { return string(e) }

const (
	ErrExperienceNotFound       ExperienceServiceError = "iş deneyimi kaydı bulunamadı"
	ErrExperienceInvalidInput   ExperienceServiceError = "geçersiz iş deneyimi verisi"
	ErrExperienceFieldsRequired ExperienceServiceError = "şirket adı, pozisyon ve başlangıç tarihi zorunludur"
	ErrExperienceInvalidDate    ExperienceServiceError = "tarih biçimi geçersiz (YYYY-AA-GG bekleniyor)"
	ErrExperienceCreationFailed ExperienceServiceError = "iş deneyimi oluşturulamadı"
	ErrExperienceUpdateFailed   ExperienceServiceError = "iş deneyimi güncellenemedi"
	ErrExperienceDeletionFailed ExperienceServiceError = "iş deneyimi silinemedi"
)

// Form tarih alanlarının biçimi (HTML date input).
const experienceDateLayout = "2006-01-02"

// ExperienceInput panel formundan gelen deneyim verisini taşır.
// Technologies virgülle ayrılmış serbest metindir.
type ExperienceInput struct {
	CompanyName  string `form:"company_name"`
	Position     string `form:"position"`
	StartDate    string `form:"start_date"`
	EndDate      string `form:"end_date"`
	IsCurrent    bool   `form:"is_current"`
	Description  string `form:"description"`
	Location     string `form:"location"`
	Technologies string `form:"technologies"`
}

// parseExperienceDates form tarihlerini çözer. IsCurrent true ise bitiş
// tarihi, forma ne yazılmış olursa olsun null olur.
func parseExperienceDates(input ExperienceInput) (time.Time, *time.Time, error) {
	start, err := time.Parse(experienceDateLayout, input.StartDate)
	if err != nil {
		return time.Time{}, nil, ErrExperienceInvalidDate
	}

	if input.IsCurrent || strings.TrimSpace(input.EndDate) == "" {
		return start, nil, nil
	}

	end, err := time.Parse(experienceDateLayout, input.EndDate)
	if err != nil {
		return time.Time{}, nil, ErrExperienceInvalidDate
	}
	return start, &end, nil
}

// ValidateExperienceInput zorunlu alanları doğrular.
func ValidateExperienceInput(input *ExperienceInput) error {
	input.CompanyName = strings.TrimSpace(input.CompanyName)
	input.Position = strings.TrimSpace(input.Position)
	if input.CompanyName == "" || input.Position == "" || strings.TrimSpace(input.StartDate) == "" {
		return ErrExperienceFieldsRequired
	}
	return nil
}

// IExperienceService iş deneyimi işlemleri için arayüz.
type IExperienceService interface {
	CreateExperience(ctx context.Context, userID uint, input ExperienceInput) (*models.Experience, error)
	UpdateExperience(ctx context.Context, id uint, userID uint, input ExperienceInput) error
	DeleteExperience(ctx context.Context, id uint, userID uint) error
	GetExperienceByID(ctx context.Context, id uint) (*models.Experience, error)
	GetAllExperiences(ctx context.Context) ([]models.Experience, error)
	GetExperienceCount(ctx context.Context) (int64, error)
}

// ExperienceService IExperienceService arayüzünü uygular.
type ExperienceService struct {
	repo repositories.IExperienceRepository
}

func NewExperienceService() IExperienceService {
	return &ExperienceService{repo: repositories.NewExperienceRepository()}
}

// CreateExperience yeni kayıt oluşturur. Görüntüleme sırası mevcut kayıt
// sayısından türetilir (listenin sonuna eklenir).
func (s *ExperienceService) CreateExperience(ctx context.Context, userID uint, input ExperienceInput) (*models.Experience, error) {
	if err := ValidateExperienceInput(&input); err != nil {
		return nil, err
	}
	if userID == 0 {
		return nil, fmt.Errorf("%w: geçersiz kullanıcı ID", ErrExperienceInvalidInput)
	}

	start, end, err := parseExperienceDates(input)
	if err != nil {
		return nil, err
	}

	count, err := s.repo.GetCount(ctx)
	if err != nil {
		configslog.Log.Error("Deneyim sayısı alınamadı", zap.Error(err))
		return nil, ErrExperienceCreationFailed
	}

	experience := models.Experience{
		CompanyName:  input.CompanyName,
		Position:     input.Position,
		StartDate:    start,
		EndDate:      end,
		IsCurrent:    input.IsCurrent,
		Description:  input.Description,
		Location:     input.Location,
		Technologies: utils.ParseListField(input.Technologies),
		OrderIndex:   int(count),
	}

	createCtx := models.ContextWithUserID(ctx, userID)
	if err := s.repo.Create(createCtx, &experience); err != nil {
		configslog.Log.Error("Deneyim oluşturulurken veritabanı hatası", zap.Error(err))
		return nil, ErrExperienceCreationFailed
	}

	configslog.SLog.Infof("İş deneyimi oluşturuldu: ID %d (%s)", experience.ID, experience.CompanyName)
	return &experience, nil
}

// UpdateExperience mevcut kaydı günceller; görüntüleme sırasına dokunmaz.
func (s *ExperienceService) UpdateExperience(ctx context.Context, id uint, userID uint, input ExperienceInput) error {
	if err := ValidateExperienceInput(&input); err != nil {
		return err
	}
	if id == 0 || userID == 0 {
		return fmt.Errorf("%w: geçersiz ID", ErrExperienceInvalidInput)
	}

	start, end, err := parseExperienceDates(input)
	if err != nil {
		return err
	}

	experience, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrExperienceNotFound
		}
		return err
	}

	experience.CompanyName = input.CompanyName
	experience.Position = input.Position
	experience.StartDate = start
	experience.EndDate = end
	experience.IsCurrent = input.IsCurrent
	experience.Description = input.Description
	experience.Location = input.Location
	experience.Technologies = utils.ParseListField(input.Technologies)

	updateCtx := models.ContextWithUserID(ctx, userID)
	if err := s.repo.Save(updateCtx, experience); err != nil {
		configslog.Log.Error("Deneyim güncellenirken veritabanı hatası", zap.Uint("id", id), zap.Error(err))
		return ErrExperienceUpdateFailed
	}

	configslog.SLog.Infof("İş deneyimi güncellendi: ID %d", id)
	return nil
}

func (s *ExperienceService) DeleteExperience(ctx context.Context, id uint, userID uint) error {
	if id == 0 || userID == 0 {
		return fmt.Errorf("%w: geçersiz ID", ErrExperienceInvalidInput)
	}

	experience, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrExperienceNotFound
		}
		return err
	}

	deleteCtx := models.ContextWithUserID(ctx, userID)
	if err := s.repo.Delete(deleteCtx, experience); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrExperienceNotFound
		}
		configslog.Log.Error("Deneyim silinirken veritabanı hatası", zap.Uint("id", id), zap.Error(err))
		return ErrExperienceDeletionFailed
	}

	configslog.SLog.Infof("İş deneyimi silindi: ID %d", id)
	return nil
}

func (s *ExperienceService) GetExperienceByID(ctx context.Context, id uint) (*models.Experience, error) {
	experience, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrExperienceNotFound
		}
		return nil, err
	}
	return experience, nil
}

func (s *ExperienceService) GetAllExperiences(ctx context.Context) ([]models.Experience, error) {
	return s.repo.FindAllOrdered(ctx)
}

func (s *ExperienceService) GetExperienceCount(ctx context.Context) (int64, error) {
	return s.repo.GetCount(ctx)
}

var _ IExperienceService = (*ExperienceService)(nil)
