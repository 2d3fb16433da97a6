package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"portfolyo.link/configs/configslog"
	"portfolyo.link/pkg/renderer"
	"portfolyo.link/services"
)

// HomeHandler panel ana sayfası: içerik sayıları ve CV durumu.
type HomeHandler struct {
	projectService    services.IProjectService
	skillService      services.ISkillService
	experienceService services.IExperienceService
	cvService         services.ICVService
}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{
		projectService:    services.NewProjectService(),
		skillService:      services.NewSkillService(),
		experienceService: services.NewExperienceService(),
		cvService:         services.NewCVService(),
	}
}

// HomePage panel özet görünümünü render eder. Sayılardan biri alınamazsa
// sıfır gösterilir; sayfa hata ile kesilmez.
func (h *HomeHandler) HomePage(c *fiber.Ctx) error {
	ctx := c.UserContext()

	projectCount, err := h.projectService.GetProjectCount(ctx)
	if err != nil {
		configslog.Log.Error("Panel özet: proje sayısı alınamadı", zap.Error(err))
	}
	skillCount, err := h.skillService.GetSkillCount(ctx)
	if err != nil {
		configslog.Log.Error("Panel özet: yetkinlik sayısı alınamadı", zap.Error(err))
	}
	experienceCount, err := h.experienceService.GetExperienceCount(ctx)
	if err != nil {
		configslog.Log.Error("Panel özet: deneyim sayısı alınamadı", zap.Error(err))
	}

	hasCV := false
	if _, err := h.cvService.GetCurrentCV(ctx); err == nil {
		hasCV = true
	}

	return renderer.Render(c, "admin/home", "layouts/admin_layout", fiber.Map{
		"Title":           "Yönetim Paneli",
		"ProjectCount":    projectCount,
		"SkillCount":      skillCount,
		"ExperienceCount": experienceCount,
		"HasCV":           hasCV,
	})
}
