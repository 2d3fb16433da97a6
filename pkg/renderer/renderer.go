// Package renderer handler'lar için ortak şablon render katmanıdır.
// Flash mesajlarını, CSRF token'ını ve oturum bilgilerini her render'da
// şablon verisine ekler.
package renderer

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"portfolyo.link/pkg/flashmessages"
)

// Şablonlarda kullanılan veri anahtarları.
const (
	FlashSuccessKeyView = "Success"
	FlashErrorKeyView   = "Error"
)

// Render verilen şablonu layout içinde render eder. data nil olabilir.
func Render(c *fiber.Ctx, template, layout string, data fiber.Map, status ...int) error {
	if data == nil {
		data = fiber.Map{}
	}

	// Flash mesajları (handler data'sında aynı anahtar varsa ezilmez).
	if _, exists := data[FlashSuccessKeyView]; !exists {
		if msg := flashmessages.GetFlashMessage(c, flashmessages.FlashSuccessKey); msg != "" {
			data[FlashSuccessKeyView] = msg
		}
	}
	if _, exists := data[FlashErrorKeyView]; !exists {
		if msg := flashmessages.GetFlashMessage(c, flashmessages.FlashErrorKey); msg != "" {
			data[FlashErrorKeyView] = msg
		}
	}

	// CSRF token ve oturum bilgileri her şablonda erişilebilir olmalı.
	if token, ok := c.Locals("csrf_token").(string); ok {
		data["CsrfToken"] = token
	}
	if userID, ok := c.Locals("userID").(uint); ok {
		data["CurrentUserID"] = userID
	}
	if userName, ok := c.Locals("userName").(string); ok {
		data["CurrentUserName"] = userName
	}
	if isAdmin, ok := c.Locals("isAdmin").(bool); ok {
		data["IsAdmin"] = isAdmin
	}

	st := http.StatusOK
	if len(status) > 0 {
		st = status[0]
	}
	return c.Status(st).Render(template, data, layout)
}
