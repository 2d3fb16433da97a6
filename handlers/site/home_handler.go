package handlers

import (
	"context"
	"errors"
	"os"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"portfolyo.link/configs"
	"portfolyo.link/configs/configslog"
	"portfolyo.link/models"
	"portfolyo.link/pkg/markdown"
	"portfolyo.link/pkg/renderer"
	"portfolyo.link/services"
)

// HomeHandler sitenin herkese açık ana sayfası. Tüm bölümler tek
// sayfada toplanır; eksik içerik sayfayı düşürmez, bölüm boş kalır.
type HomeHandler struct {
	aboutService      services.IAboutService
	skillService      services.ISkillService
	projectService    services.IProjectService
	experienceService services.IExperienceService
	avatarService     services.IAvatarService
	cvService         services.ICVService
}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{
		aboutService:      services.NewAboutService(),
		skillService:      services.NewSkillService(),
		projectService:    services.NewProjectService(),
		experienceService: services.NewExperienceService(),
		avatarService:     services.NewAvatarService(),
		cvService:         services.NewCVService(),
	}
}

// HomePage ana sayfayı render eder. ?category= parametresi yalnızca öne
// çıkan proje bölümünü filtreler.
func (h *HomeHandler) HomePage(c *fiber.Ctx) error {
	ctx := c.UserContext()
	category := c.Query("category", models.ProjectCategoryAll)

	renderData := fiber.Map{
		"Title":          "Ana Sayfa",
		"ActiveCategory": category,
		"Categories":     models.ProjectCategories,
	}

	about, err := h.aboutService.GetAbout(ctx)
	if err != nil && !errors.Is(err, services.ErrAboutNotFound) {
		configslog.Log.Error("Site - hakkımda içeriği alınamadı", zap.Error(err))
	}
	if about != nil {
		renderData["About"] = about
		renderData["AboutHTML"] = markdown.ToHTML(about.Description)
	}

	skills, err := h.skillService.GetSkillsGrouped(ctx)
	if err != nil {
		configslog.Log.Error("Site - yetkinlikler alınamadı", zap.Error(err))
		skills = map[string][]models.Skill{}
	}
	renderData["SkillGroups"] = skills
	renderData["SkillCategories"] = models.SkillCategories

	projects, err := h.projectService.GetTeaserProjects(ctx, category)
	if err != nil {
		configslog.Log.Error("Site - öne çıkan projeler alınamadı", zap.Error(err))
		projects = []models.Project{}
	}
	renderData["FeaturedProjects"] = projects

	experiences, err := h.experienceService.GetAllExperiences(ctx)
	if err != nil {
		configslog.Log.Error("Site - deneyimler alınamadı", zap.Error(err))
		experiences = []models.Experience{}
	}
	renderData["Experiences"] = experiences

	avatarConfig, err := h.avatarService.GetConfig(ctx)
	if err != nil {
		configslog.Log.Error("Site - avatar yapılandırması alınamadı", zap.Error(err))
	}
	if avatarConfig != nil {
		renderData["Avatar"] = avatarConfig
	}

	renderData["HasCV"] = h.cvAvailable(ctx)
	renderData["ContactEmail"] = configs.GetContactEmail()

	return renderer.Render(c, "site/home", "layouts/main_layout", renderData)
}

// cvAvailable depoda yüklü bir CV ya da statik yedek PDF bulunup
// bulunmadığını söyler. İkisi de yoksa hero'daki CV düğmeleri gizlenir.
func (h *HomeHandler) cvAvailable(ctx context.Context) bool {
	_, err := h.cvService.GetCurrentCV(ctx)
	if err == nil {
		return true
	}
	if !errors.Is(err, services.ErrCVNotFound) {
		configslog.Log.Error("Site - CV bilgisi alınamadı", zap.Error(err))
	}
	_, statErr := os.Stat(configs.GetStaticResumePath())
	return statErr == nil
}
