package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"portfolyo.link/configs/configslog"
	"portfolyo.link/pkg/flashmessages"
	"portfolyo.link/pkg/renderer"
	"portfolyo.link/services"
)

// AboutHandler paneldeki hakkımda içeriği ekranı. İçerik singleton'dır:
// liste yok, tek bir formdan güncellenir.
type AboutHandler struct {
	service services.IAboutService
}

func NewAboutHandler() *AboutHandler {
	return &AboutHandler{service: services.NewAboutService()}
}

func (h *AboutHandler) ShowAbout(c *fiber.Ctx) error {
	renderData := fiber.Map{
		"Title":    "Hakkımda",
		"FormData": flashmessages.GetFlashFormData(c),
	}

	about, err := h.service.GetAbout(c.UserContext())
	if err != nil && !errors.Is(err, services.ErrAboutNotFound) {
		configslog.Log.Error("Panel - ShowAbout", zap.Error(err))
		renderData[renderer.FlashErrorKeyView] = "Hakkımda içeriği alınırken bir hata oluştu."
	}
	if about != nil {
		renderData["About"] = about
	}
	return renderer.Render(c, "admin/about/form", "layouts/admin_layout", renderData)
}

func (h *AboutHandler) SaveAbout(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	var input services.AboutInput
	if err := c.BodyParser(&input); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz form verisi.")
		return c.Redirect("/admin/about", fiber.StatusSeeOther)
	}

	if _, err := h.service.UpsertAbout(c.UserContext(), userID, input); err != nil {
		if !errors.Is(err, services.ErrAboutTitleRequired) {
			configslog.Log.Error("Panel - SaveAbout", zap.Uint("userID", userID), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Hakkımda içeriği kaydedilemedi: "+err.Error())
		_ = flashmessages.SetFlashFormData(c, input)
		return c.Redirect("/admin/about", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Hakkımda içeriği kaydedildi.")
	return c.Redirect("/admin/about", fiber.StatusFound)
}
