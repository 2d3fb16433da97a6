package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"portfolyo.link/configs/configslog"
	"portfolyo.link/models"
	"portfolyo.link/repositories"

	"go.uber.org/zap"
)

// SkillServiceError yetkinlik servisi hataları.
type SkillServiceError string

func (e SkillServiceError) Error() string { return string(e) }

const (
	ErrSkillNotFound       SkillServiceError = "yetkinlik bulunamadı"
	ErrSkillInvalidInput   SkillServiceError = "geçersiz yetkinlik verisi"
	ErrSkillNameRequired   SkillServiceError = "yetkinlik adı zorunludur"
	ErrSkillCreationFailed SkillServiceError = "yetkinlik oluşturulamadı"
	ErrSkillUpdateFailed   SkillServiceError = "yetkinlik güncellenemedi"
	ErrSkillDeletionFailed SkillServiceError = "yetkinlik silinemedi"
)

// SkillInput panel formundan gelen yetkinlik verisini taşır.
type SkillInput struct {
	Name       string `form:"name"`
	Category   string `form:"category"`
	Level      int    `form:"level"`
	IconName   string `form:"icon_name"`
	OrderIndex int    `form:"order_index"`
}

// ClampSkillLevel seviyeyi geçerli aralığa çeker. Form 1-5'i zorlar ama
// doğrudan istek ile gelen aralık dışı değer veritabanına ulaşmadan
// burada sınırlanır.
func ClampSkillLevel(level int) int {
	if level < models.SkillLevelMin {
		return models.SkillLevelMin
	}
	if level > models.SkillLevelMax {
		return models.SkillLevelMax
	}
	return level
}

// ValidateSkillInput zorunlu alanları doğrular ve seviyeyi sınırlar.
// Tanınmayan kategori "Other" olarak normalize edilir.
func ValidateSkillInput(input *SkillInput) error {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return ErrSkillNameRequired
	}
	input.Level = ClampSkillLevel(input.Level)

	valid := false
	for _, c := range models.SkillCategories {
		if c == input.Category {
			valid = true
			break
		}
	}
	if !valid {
		input.Category = "Other"
	}
	return nil
}

// ISkillService yetkinlik işlemleri için arayüz.
type ISkillService interface {
	CreateSkill(ctx context.Context, userID uint, input SkillInput) (*models.Skill, error)
	UpdateSkill(ctx context.Context, id uint, userID uint, input SkillInput) error
	DeleteSkill(ctx context.Context, id uint, userID uint) error
	GetSkillByID(ctx context.Context, id uint) (*models.Skill, error)
	GetAllSkills(ctx context.Context) ([]models.Skill, error)
	GetSkillsGrouped(ctx context.Context) (map[string][]models.Skill, error)
	GetSkillCount(ctx context.Context) (int64, error)
}

// SkillService ISkillService arayüzünü uygular.
type SkillService struct {
	repo repositories.ISkillRepository
}

func NewSkillService() ISkillService {
	return &SkillService{repo: repositories.NewSkillRepository()}
}

func (s *SkillService) CreateSkill(ctx context.Context, userID uint, input SkillInput) (*models.Skill, error) {
	if err := ValidateSkillInput(&input); err != nil {
		return nil, err
	}
	if userID == 0 {
		return nil, fmt.Errorf("%w: geçersiz kullanıcı ID", ErrSkillInvalidInput)
	}

	skill := models.Skill{
		Name:       input.Name,
		Category:   input.Category,
		Level:      input.Level,
		IconName:   input.IconName,
		OrderIndex: input.OrderIndex,
	}

	createCtx := models.ContextWithUserID(ctx, userID)
	if err := s.repo.Create(createCtx, &skill); err != nil {
		configslog.Log.Error("Yetkinlik oluşturulurken veritabanı hatası", zap.Error(err))
		return nil, ErrSkillCreationFailed
	}

	configslog.SLog.Infof("Yetkinlik oluşturuldu: ID %d (%s)", skill.ID, skill.Name)
	return &skill, nil
}

func (s *SkillService) UpdateSkill(ctx context.Context, id uint, userID uint, input SkillInput) error {
	if err := ValidateSkillInput(&input); err != nil {
		return err
	}
	if id == 0 || userID == 0 {
		return fmt.Errorf("%w: geçersiz ID", ErrSkillInvalidInput)
	}

	skill, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrSkillNotFound
		}
		return err
	}

	skill.Name = input.Name
	skill.Category = input.Category
	skill.Level = input.Level
	skill.IconName = input.IconName
	skill.OrderIndex = input.OrderIndex

	updateCtx := models.ContextWithUserID(ctx, userID)
	if err := s.repo.Save(updateCtx, skill); err != nil {
		configslog.Log.Error("Yetkinlik güncellenirken veritabanı hatası", zap.Uint("id", id), zap.Error(err))
		return ErrSkillUpdateFailed
	}

	configslog.SLog.Infof("Yetkinlik güncellendi: ID %d", id)
	return nil
}

func (s *SkillService) DeleteSkill(ctx context.Context, id uint, userID uint) error {
	if id == 0 || userID == 0 {
		return fmt.Errorf("%w: geçersiz ID", ErrSkillInvalidInput)
	}

	skill, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrSkillNotFound
		}
		return err
	}

	deleteCtx := models.ContextWithUserID(ctx, userID)
	if err := s.repo.Delete(deleteCtx, skill); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrSkillNotFound
		}
		configslog.Log.Error("Yetkinlik silinirken veritabanı hatası", zap.Uint("id", id), zap.Error(err))
		return ErrSkillDeletionFailed
	}

	configslog.SLog.Infof("Yetkinlik silindi: ID %d", id)
	return nil
}

func (s *SkillService) GetSkillByID(ctx context.Context, id uint) (*models.Skill, error) {
	skill, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, err
	}
	return skill, nil
}

func (s *SkillService) GetAllSkills(ctx context.Context) ([]models.Skill, error) {
	return s.repo.FindAllOrdered(ctx)
}

// GetSkillsGrouped public site için yetkinlikleri kategoriye göre gruplar.
// Grup içi sıralama görüntüleme sırasıdır.
func (s *SkillService) GetSkillsGrouped(ctx context.Context) (map[string][]models.Skill, error) {
	skills, err := s.repo.FindAllOrdered(ctx)
	if err != nil {
		return nil, err
	}
	grouped := make(map[string][]models.Skill)
	for _, skill := range skills {
		grouped[skill.Category] = append(grouped[skill.Category], skill)
	}
	return grouped, nil
}

func (s *SkillService) GetSkillCount(ctx context.Context) (int64, error) {
	return s.repo.GetCount(ctx)
}

var _ ISkillService = (*SkillService)(nil)
