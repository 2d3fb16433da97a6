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

// CVHandler paneldeki CV yönetimi ekranı: mevcut dosyayı gösterir,
// yükleme ve silme işlemlerini yürütür.
type CVHandler struct {
	service services.ICVService
}

func NewCVHandler() *CVHandler {
	return &CVHandler{service: services.NewCVService()}
}

func (h *CVHandler) ShowCV(c *fiber.Ctx) error {
	renderData := fiber.Map{
		"Title": "CV Yönetimi",
	}

	current, err := h.service.GetCurrentCV(c.UserContext())
	if err != nil && !errors.Is(err, services.ErrCVNotFound) {
		configslog.Log.Error("Panel - ShowCV", zap.Error(err))
		renderData[renderer.FlashErrorKeyView] = "CV bilgisi alınırken bir hata oluştu."
	}
	if current != nil {
		renderData["CV"] = current
	}
	return renderer.Render(c, "admin/cv/manage", "layouts/admin_layout", renderData)
}

func (h *CVHandler) UploadCV(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("cv")
	if err != nil || fileHeader == nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Lütfen bir PDF dosyası seçin.")
		return c.Redirect("/admin/cv", fiber.StatusSeeOther)
	}

	file, err := fileHeader.Open()
	if err != nil {
		configslog.Log.Error("CV dosyası açılamadı", zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, services.ErrCVUploadFailed.Error())
		return c.Redirect("/admin/cv", fiber.StatusSeeOther)
	}
	defer file.Close()

	err = h.service.UploadCV(
		c.UserContext(),
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
		file,
	)
	if err != nil {
		if !errors.Is(err, services.ErrCVInvalidType) && !errors.Is(err, services.ErrCVTooLarge) {
			configslog.Log.Error("Panel - UploadCV", zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "CV yüklenemedi: "+err.Error())
		return c.Redirect("/admin/cv", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "CV başarıyla yüklendi.")
	return c.Redirect("/admin/cv", fiber.StatusFound)
}

func (h *CVHandler) DeleteCV(c *fiber.Ctx) error {
	if err := h.service.DeleteCV(c.UserContext()); err != nil {
		if !errors.Is(err, services.ErrCVNotFound) {
			configslog.Log.Error("Panel - DeleteCV", zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "CV silinemedi: "+err.Error())
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "CV silindi.")
	}
	return c.Redirect("/admin/cv", fiber.StatusSeeOther)
}
