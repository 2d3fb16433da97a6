package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"portfolyo.link/configs/configslog"
	"portfolyo.link/models"
	"portfolyo.link/pkg/flashmessages"
	"portfolyo.link/pkg/renderer"
	"portfolyo.link/services"
	"portfolyo.link/utils"
)

// ExperienceHandler paneldeki iş deneyimi yönetimi ekranları.
type ExperienceHandler struct {
	service services.IExperienceService
}

func NewExperienceHandler() *ExperienceHandler {
	return &ExperienceHandler{service: services.NewExperienceService()}
}

func (h *ExperienceHandler) ListExperiences(c *fiber.Ctx) error {
	experiences, err := h.service.GetAllExperiences(c.UserContext())

	renderData := fiber.Map{
		"Title":       "İş Deneyimleri",
		"Experiences": experiences,
	}
	if err != nil {
		configslog.Log.Error("Panel - ListExperiences", zap.Error(err))
		renderData[renderer.FlashErrorKeyView] = "Deneyimler listelenirken bir hata oluştu."
		renderData["Experiences"] = []models.Experience{}
	}
	return renderer.Render(c, "admin/experiences/list", "layouts/admin_layout", renderData)
}

func (h *ExperienceHandler) ShowCreateExperience(c *fiber.Ctx) error {
	return renderer.Render(c, "admin/experiences/form", "layouts/admin_layout", fiber.Map{
		"Title":    "Yeni Deneyim",
		"FormData": flashmessages.GetFlashFormData(c),
	})
}

// parseExperienceInput form verisini okur; is_current checkbox'ı ayrıca
// ele alınır.
func parseExperienceInput(c *fiber.Ctx) (services.ExperienceInput, error) {
	var input services.ExperienceInput
	if err := c.BodyParser(&input); err != nil {
		return input, err
	}
	input.IsCurrent = formChecked(c, "is_current")
	return input, nil
}

func (h *ExperienceHandler) CreateExperience(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	input, err := parseExperienceInput(c)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz form verisi.")
		return c.Redirect("/admin/experiences/create", fiber.StatusSeeOther)
	}

	if _, err := h.service.CreateExperience(c.UserContext(), userID, input); err != nil {
		configslog.Log.Error("Panel - CreateExperience", zap.Uint("userID", userID), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Deneyim kaydedilemedi: "+err.Error())
		_ = flashmessages.SetFlashFormData(c, input)
		return c.Redirect("/admin/experiences/create", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Deneyim başarıyla oluşturuldu.")
	return c.Redirect("/admin/experiences", fiber.StatusFound)
}

func (h *ExperienceHandler) ShowUpdateExperience(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz deneyim ID.")
		return c.Redirect("/admin/experiences", fiber.StatusSeeOther)
	}

	experience, err := h.service.GetExperienceByID(c.UserContext(), uint(id))
	if err != nil {
		errMsg := "Deneyim bulunamadı."
		if !errors.Is(err, services.ErrExperienceNotFound) {
			errMsg = "Deneyim bilgileri alınırken bir hata oluştu."
			configslog.Log.Error("Panel - ShowUpdateExperience", zap.Int("id", id), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		return c.Redirect("/admin/experiences", fiber.StatusSeeOther)
	}

	return renderer.Render(c, "admin/experiences/form", "layouts/admin_layout", fiber.Map{
		"Title":             "Deneyimi Düzenle",
		"Experience":        experience,
		"TechnologiesField": utils.FormatListField(experience.Technologies),
		"FormData":          flashmessages.GetFlashFormData(c),
	})
}

func (h *ExperienceHandler) UpdateExperience(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz deneyim ID.")
		return c.Redirect("/admin/experiences", fiber.StatusSeeOther)
	}
	redirectPathOnError := fmt.Sprintf("/admin/experiences/update/%d", id)

	input, err := parseExperienceInput(c)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz form verisi.")
		return c.Redirect(redirectPathOnError, fiber.StatusSeeOther)
	}

	if err := h.service.UpdateExperience(c.UserContext(), uint(id), userID, input); err != nil {
		if errors.Is(err, services.ErrExperienceNotFound) {
			_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
			return c.Redirect("/admin/experiences", fiber.StatusSeeOther)
		}
		configslog.Log.Error("Panel - UpdateExperience", zap.Int("id", id), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Deneyim kaydedilemedi: "+err.Error())
		_ = flashmessages.SetFlashFormData(c, input)
		return c.Redirect(redirectPathOnError, fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Deneyim başarıyla güncellendi.")
	return c.Redirect("/admin/experiences", fiber.StatusFound)
}

func (h *ExperienceHandler) DeleteExperience(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz deneyim ID.")
		return c.Redirect("/admin/experiences", fiber.StatusSeeOther)
	}

	if err := h.service.DeleteExperience(c.UserContext(), uint(id), userID); err != nil {
		if !errors.Is(err, services.ErrExperienceNotFound) {
			configslog.Log.Error("Panel - DeleteExperience", zap.Int("id", id), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Deneyim silinemedi: "+err.Error())
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Deneyim başarıyla silindi.")
	}
	return c.Redirect("/admin/experiences", fiber.StatusSeeOther)
}
