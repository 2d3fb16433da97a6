package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"portfolyo.link/configs/configslog"
	"portfolyo.link/pkg/flashmessages"
	"portfolyo.link/pkg/renderer"
	"portfolyo.link/services"
)

// AvatarHandler paneldeki avatar yapılandırma ekranı. Yapılandırma
// singleton'dır; animasyon ayarları ve görsel aynı formdan yönetilir.
type AvatarHandler struct {
	service services.IAvatarService
}

func NewAvatarHandler() *AvatarHandler {
	return &AvatarHandler{service: services.NewAvatarService()}
}

func (h *AvatarHandler) ShowAvatar(c *fiber.Ctx) error {
	renderData := fiber.Map{
		"Title":    "Avatar Ayarları",
		"FormData": flashmessages.GetFlashFormData(c),
	}

	config, err := h.service.GetConfig(c.UserContext())
	if err != nil {
		configslog.Log.Error("Panel - ShowAvatar", zap.Error(err))
		renderData[renderer.FlashErrorKeyView] = "Avatar ayarları alınırken bir hata oluştu."
	}
	if config != nil {
		renderData["Config"] = config
	}
	return renderer.Render(c, "admin/avatar/form", "layouts/admin_layout", renderData)
}

// parseAvatarInput form verisini okur; checkbox alanları ayrıca ele alınır.
func parseAvatarInput(c *fiber.Ctx) (services.AvatarInput, error) {
	var input services.AvatarInput
	if err := c.BodyParser(&input); err != nil {
		return input, err
	}
	input.ShowOrbitalElements = formChecked(c, "show_orbital_elements")
	input.ShowFloatingParticles = formChecked(c, "show_floating_particles")
	input.ShowAnimatedBorder = formChecked(c, "show_animated_border")
	return input, nil
}

func (h *AvatarHandler) SaveAvatar(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	input, err := parseAvatarInput(c)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz form verisi.")
		return c.Redirect("/admin/avatar", fiber.StatusSeeOther)
	}

	if _, err := h.service.UpsertConfig(c.UserContext(), userID, input); err != nil {
		configslog.Log.Error("Panel - SaveAvatar", zap.Uint("userID", userID), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Avatar ayarları kaydedilemedi: "+err.Error())
		return c.Redirect("/admin/avatar", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Avatar ayarları kaydedildi.")
	return c.Redirect("/admin/avatar", fiber.StatusFound)
}

// UploadAvatarImage formdaki görseli depoya yükler ve yapılandırmadaki
// avatar adresini günceller.
func (h *AvatarHandler) UploadAvatarImage(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil || fileHeader == nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Lütfen bir görsel dosyası seçin.")
		return c.Redirect("/admin/avatar", fiber.StatusSeeOther)
	}

	file, err := fileHeader.Open()
	if err != nil {
		configslog.Log.Error("Avatar görseli açılamadı", zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, services.ErrAvatarImageFailed.Error())
		return c.Redirect("/admin/avatar", fiber.StatusSeeOther)
	}
	defer file.Close()

	_, err = h.service.UploadAvatarImage(
		c.UserContext(),
		userID,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
		file,
	)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Avatar yüklenemedi: "+err.Error())
		return c.Redirect("/admin/avatar", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Avatar görseli güncellendi.")
	return c.Redirect("/admin/avatar", fiber.StatusFound)
}
