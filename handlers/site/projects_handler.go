package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"portfolyo.link/configs/configslog"
	"portfolyo.link/models"
	"portfolyo.link/pkg/renderer"
	"portfolyo.link/services"
)

// ProjectsHandler herkese açık proje arşivi sayfası.
type ProjectsHandler struct {
	service services.IProjectService
}

func NewProjectsHandler() *ProjectsHandler {
	return &ProjectsHandler{service: services.NewProjectService()}
}

// AllProjects tüm projeleri listeler. ?q= serbest metin araması,
// ?category= kategori filtresi; ikisi birlikte uygulanır.
func (h *ProjectsHandler) AllProjects(c *fiber.Ctx) error {
	term := c.Query("q", "")
	category := c.Query("category", models.ProjectCategoryAll)

	projects, err := h.service.SearchProjects(c.UserContext(), term, category)
	if err != nil {
		configslog.Log.Error("Site - proje araması başarısız", zap.Error(err))
		projects = []models.Project{}
	}

	return renderer.Render(c, "site/all_projects", "layouts/main_layout", fiber.Map{
		"Title":          "Tüm Projeler",
		"Projects":       projects,
		"SearchTerm":     term,
		"ActiveCategory": category,
		"Categories":     models.ProjectCategories,
	})
}
