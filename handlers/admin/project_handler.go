package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"portfolyo.link/configs/configslog"
	"portfolyo.link/models"
	"portfolyo.link/pkg/flashmessages"
	"portfolyo.link/pkg/queryparams"
	"portfolyo.link/pkg/renderer"
	"portfolyo.link/services"
	"portfolyo.link/utils"
)

// ProjectHandler paneldeki proje yönetimi ekranları.
type ProjectHandler struct {
	service services.IProjectService
}

func NewProjectHandler() *ProjectHandler {
	return &ProjectHandler{service: services.NewProjectService()}
}

// ListProjects projeleri görüntüleme sırasına göre sayfalanmış listeler.
func (h *ProjectHandler) ListProjects(c *fiber.Ctx) error {
	params := queryparams.DefaultListParams("order_index")
	if err := c.QueryParser(&params); err != nil {
		configslog.Log.Warn("Panel - ListProjects: geçersiz query parametreleri", zap.Error(err))
	}

	projects, meta, err := h.service.GetProjectsPaginated(c.UserContext(), params)

	renderData := fiber.Map{
		"Title":      "Projeler",
		"Projects":   projects,
		"Pagination": meta,
	}
	if err != nil {
		configslog.Log.Error("Panel - ListProjects", zap.Error(err))
		renderData[renderer.FlashErrorKeyView] = "Projeler listelenirken bir hata oluştu."
		renderData["Projects"] = []models.Project{}
	}
	return renderer.Render(c, "admin/projects/list", "layouts/admin_layout", renderData)
}

// ShowCreateProject yeni proje formunu gösterir.
func (h *ProjectHandler) ShowCreateProject(c *fiber.Ctx) error {
	return renderer.Render(c, "admin/projects/form", "layouts/admin_layout", fiber.Map{
		"Title":      "Yeni Proje",
		"Categories": models.ProjectCategories,
		"FormData":   flashmessages.GetFlashFormData(c),
	})
}

// parseProjectInput form verisini okur; checkbox alanı ayrıca ele alınır.
func parseProjectInput(c *fiber.Ctx) (services.ProjectInput, error) {
	var input services.ProjectInput
	if err := c.BodyParser(&input); err != nil {
		return input, err
	}
	input.Featured = formChecked(c, "featured")
	return input, nil
}

// handleProjectImage formdaki opsiyonel görsel dosyasını depoya yükler ve
// input'taki ImageURL'i günceller. Dosya seçilmemişse hiçbir şey yapmaz.
func (h *ProjectHandler) handleProjectImage(c *fiber.Ctx, input *services.ProjectInput) error {
	fileHeader, err := c.FormFile("image")
	if err != nil || fileHeader == nil {
		return nil // Görsel opsiyonel.
	}

	file, err := fileHeader.Open()
	if err != nil {
		configslog.Log.Error("Proje görseli açılamadı", zap.Error(err))
		return services.ErrProjectImageFailed
	}
	defer file.Close()

	url, err := h.service.UploadProjectImage(
		c.UserContext(),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
		file,
	)
	if err != nil {
		return err
	}
	input.ImageURL = url
	return nil
}

// CreateProject formdan yeni proje oluşturur.
func (h *ProjectHandler) CreateProject(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	input, err := parseProjectInput(c)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz form verisi.")
		return c.Redirect("/admin/projects/create", fiber.StatusSeeOther)
	}

	if err := h.handleProjectImage(c, &input); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		_ = flashmessages.SetFlashFormData(c, input)
		return c.Redirect("/admin/projects/create", fiber.StatusSeeOther)
	}

	if _, err := h.service.CreateProject(c.UserContext(), userID, input); err != nil {
		configslog.Log.Error("Panel - CreateProject", zap.Uint("userID", userID), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Proje kaydedilemedi: "+err.Error())
		_ = flashmessages.SetFlashFormData(c, input)
		return c.Redirect("/admin/projects/create", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Proje başarıyla oluşturuldu.")
	return c.Redirect("/admin/projects", fiber.StatusFound)
}

// ShowUpdateProject düzenleme formunu mevcut veriyle gösterir.
func (h *ProjectHandler) ShowUpdateProject(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz proje ID.")
		return c.Redirect("/admin/projects", fiber.StatusSeeOther)
	}

	project, err := h.service.GetProjectByID(c.UserContext(), uint(id))
	if err != nil {
		errMsg := "Proje bulunamadı."
		if !errors.Is(err, services.ErrProjectNotFound) {
			errMsg = "Proje bilgileri alınırken bir hata oluştu."
			configslog.Log.Error("Panel - ShowUpdateProject", zap.Int("id", id), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		return c.Redirect("/admin/projects", fiber.StatusSeeOther)
	}

	return renderer.Render(c, "admin/projects/form", "layouts/admin_layout", fiber.Map{
		"Title":      "Projeyi Düzenle",
		"Project":    project,
		"TagsField":  utils.FormatListField(project.Tags),
		"Categories": models.ProjectCategories,
		"FormData":   flashmessages.GetFlashFormData(c),
	})
}

// UpdateProject formdan projeyi günceller.
func (h *ProjectHandler) UpdateProject(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz proje ID.")
		return c.Redirect("/admin/projects", fiber.StatusSeeOther)
	}
	redirectPathOnError := fmt.Sprintf("/admin/projects/update/%d", id)

	input, err := parseProjectInput(c)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz form verisi.")
		return c.Redirect(redirectPathOnError, fiber.StatusSeeOther)
	}

	if err := h.handleProjectImage(c, &input); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect(redirectPathOnError, fiber.StatusSeeOther)
	}

	if err := h.service.UpdateProject(c.UserContext(), uint(id), userID, input); err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
			return c.Redirect("/admin/projects", fiber.StatusSeeOther)
		}
		configslog.Log.Error("Panel - UpdateProject", zap.Int("id", id), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Proje kaydedilemedi: "+err.Error())
		_ = flashmessages.SetFlashFormData(c, input)
		return c.Redirect(redirectPathOnError, fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Proje başarıyla güncellendi.")
	return c.Redirect("/admin/projects", fiber.StatusFound)
}

// DeleteProject projeyi siler; liste her durumda yeniden yüklenir.
func (h *ProjectHandler) DeleteProject(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz proje ID.")
		return c.Redirect("/admin/projects", fiber.StatusSeeOther)
	}

	if err := h.service.DeleteProject(c.UserContext(), uint(id), userID); err != nil {
		if !errors.Is(err, services.ErrProjectNotFound) {
			configslog.Log.Error("Panel - DeleteProject", zap.Int("id", id), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Proje silinemedi: "+err.Error())
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Proje başarıyla silindi.")
	}
	return c.Redirect("/admin/projects", fiber.StatusSeeOther)
}
