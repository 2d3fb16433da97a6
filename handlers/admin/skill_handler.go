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
)

// SkillHandler paneldeki yetkinlik yönetimi ekranları.
type SkillHandler struct {
	service services.ISkillService
}

func NewSkillHandler() *SkillHandler {
	return &SkillHandler{service: services.NewSkillService()}
}

func (h *SkillHandler) ListSkills(c *fiber.Ctx) error {
	skills, err := h.service.GetAllSkills(c.UserContext())

	renderData := fiber.Map{
		"Title":  "Yetkinlikler",
		"Skills": skills,
	}
	if err != nil {
		configslog.Log.Error("Panel - ListSkills", zap.Error(err))
		renderData[renderer.FlashErrorKeyView] = "Yetkinlikler listelenirken bir hata oluştu."
		renderData["Skills"] = []models.Skill{}
	}
	return renderer.Render(c, "admin/skills/list", "layouts/admin_layout", renderData)
}

func (h *SkillHandler) ShowCreateSkill(c *fiber.Ctx) error {
	return renderer.Render(c, "admin/skills/form", "layouts/admin_layout", fiber.Map{
		"Title":      "Yeni Yetkinlik",
		"Categories": models.SkillCategories,
		"FormData":   flashmessages.GetFlashFormData(c),
	})
}

func (h *SkillHandler) CreateSkill(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	var input services.SkillInput
	if err := c.BodyParser(&input); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz form verisi.")
		return c.Redirect("/admin/skills/create", fiber.StatusSeeOther)
	}

	if _, err := h.service.CreateSkill(c.UserContext(), userID, input); err != nil {
		configslog.Log.Error("Panel - CreateSkill", zap.Uint("userID", userID), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Yetkinlik kaydedilemedi: "+err.Error())
		_ = flashmessages.SetFlashFormData(c, input)
		return c.Redirect("/admin/skills/create", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Yetkinlik başarıyla oluşturuldu.")
	return c.Redirect("/admin/skills", fiber.StatusFound)
}

func (h *SkillHandler) ShowUpdateSkill(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz yetkinlik ID.")
		return c.Redirect("/admin/skills", fiber.StatusSeeOther)
	}

	skill, err := h.service.GetSkillByID(c.UserContext(), uint(id))
	if err != nil {
		errMsg := "Yetkinlik bulunamadı."
		if !errors.Is(err, services.ErrSkillNotFound) {
			errMsg = "Yetkinlik bilgileri alınırken bir hata oluştu."
			configslog.Log.Error("Panel - ShowUpdateSkill", zap.Int("id", id), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		return c.Redirect("/admin/skills", fiber.StatusSeeOther)
	}

	return renderer.Render(c, "admin/skills/form", "layouts/admin_layout", fiber.Map{
		"Title":      "Yetkinliği Düzenle",
		"Skill":      skill,
		"Categories": models.SkillCategories,
		"FormData":   flashmessages.GetFlashFormData(c),
	})
}

func (h *SkillHandler) UpdateSkill(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz yetkinlik ID.")
		return c.Redirect("/admin/skills", fiber.StatusSeeOther)
	}
	redirectPathOnError := fmt.Sprintf("/admin/skills/update/%d", id)

	var input services.SkillInput
	if err := c.BodyParser(&input); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz form verisi.")
		return c.Redirect(redirectPathOnError, fiber.StatusSeeOther)
	}

	if err := h.service.UpdateSkill(c.UserContext(), uint(id), userID, input); err != nil {
		if errors.Is(err, services.ErrSkillNotFound) {
			_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
			return c.Redirect("/admin/skills", fiber.StatusSeeOther)
		}
		configslog.Log.Error("Panel - UpdateSkill", zap.Int("id", id), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Yetkinlik kaydedilemedi: "+err.Error())
		_ = flashmessages.SetFlashFormData(c, input)
		return c.Redirect(redirectPathOnError, fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Yetkinlik başarıyla güncellendi.")
	return c.Redirect("/admin/skills", fiber.StatusFound)
}

func (h *SkillHandler) DeleteSkill(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz yetkinlik ID.")
		return c.Redirect("/admin/skills", fiber.StatusSeeOther)
	}

	if err := h.service.DeleteSkill(c.UserContext(), uint(id), userID); err != nil {
		if !errors.Is(err, services.ErrSkillNotFound) {
			configslog.Log.Error("Panel - DeleteSkill", zap.Int("id", id), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Yetkinlik silinemedi: "+err.Error())
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Yetkinlik başarıyla silindi.")
	}
	return c.Redirect("/admin/skills", fiber.StatusSeeOther)
}
