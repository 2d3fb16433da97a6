package handlers

import (
	"errors"
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"portfolyo.link/configs"
	"portfolyo.link/configs/configslog"
	"portfolyo.link/services"
)

// CVHandler herkese açık CV indirme/önizleme uçları.
type CVHandler struct {
	service services.ICVService
}

func NewCVHandler() *CVHandler {
	return &CVHandler{service: services.NewCVService()}
}

// serveCV mevcut CV'yi verilen content-disposition ile sunar. Depoda dosya
// yoksa statik yedek PDF'e düşer; o da yoksa 404 döner.
func (h *CVHandler) serveCV(c *fiber.Ctx, disposition string) error {
	rc, err := h.service.OpenCurrentCV(c.UserContext())
	if err != nil {
		if !errors.Is(err, services.ErrCVNotFound) {
			configslog.Log.Error("CV sunulamadı", zap.Error(err))
			return fiber.ErrInternalServerError
		}
		return h.serveFallback(c, disposition)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`%s; filename="%s"`, disposition, services.CVDownloadFileName))
	return c.SendStream(rc)
}

// serveFallback statik yedek resume.pdf dosyasını sunar.
func (h *CVHandler) serveFallback(c *fiber.Ctx, disposition string) error {
	path := configs.GetStaticResumePath()
	if _, err := os.Stat(path); err != nil {
		return fiber.ErrNotFound
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`%s; filename="%s"`, disposition, services.CVDownloadFileName))
	return c.SendFile(path)
}

// DownloadCV CV'yi ek (attachment) olarak sunar; dosya adı her zaman
// resume.pdf'tir.
func (h *CVHandler) DownloadCV(c *fiber.Ctx) error {
	return h.serveCV(c, "attachment")
}

// PreviewCV CV'yi tarayıcıda görüntülenecek şekilde (inline) sunar.
func (h *CVHandler) PreviewCV(c *fiber.Ctx) error {
	return h.serveCV(c, "inline")
}
