package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"portfolyo.link/configs/configslog"
	"portfolyo.link/pkg/flashmessages"
	"portfolyo.link/pkg/renderer"
	"portfolyo.link/services"
	"portfolyo.link/utils"
)

// AuthHandler giriş/çıkış akışını yönetir.
type AuthHandler struct {
	service services.IAuthService
}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{service: services.NewAuthService()}
}

// ShowLogin giriş formunu gösterir.
func (h *AuthHandler) ShowLogin(c *fiber.Ctx) error {
	return renderer.Render(c, "auth/login", "layouts/auth_layout", fiber.Map{
		"Title": "Giriş Yap",
	})
}

// Login e-posta/şifre doğrular ve oturumu başlatır.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	email := c.FormValue("email")
	password := c.FormValue("password")

	user, err := h.service.Authenticate(c.UserContext(), email, password)
	if err != nil {
		errMsg := "Giriş yapılamadı."
		if errors.Is(err, services.ErrInvalidCredentials) || errors.Is(err, services.ErrUserInactive) {
			errMsg = err.Error()
		} else {
			configslog.Log.Error("Login: beklenmeyen hata", zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	sess, err := utils.SessionStart(c)
	if err != nil {
		configslog.Log.Error("Login: session açılamadı", zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Oturum başlatılamadı.")
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}
	// Oturum sabitleme (session fixation) önlemi.
	if err := sess.Regenerate(); err != nil {
		configslog.Log.Error("Login: session yenilenemedi", zap.Error(err))
	}
	sess.Set(utils.SessionKeyUserID, user.ID)
	sess.Set(utils.SessionKeyUserName, user.Name)
	sess.Set(utils.SessionKeyIsAdmin, user.IsAdmin)
	if err := sess.Save(); err != nil {
		configslog.Log.Error("Login: session kaydedilemedi", zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Oturum başlatılamadı.")
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	return c.Redirect("/admin/home", fiber.StatusFound)
}

// Logout oturumu sonlandırır ve ana sayfaya yönlendirir.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := utils.SessionStart(c)
	if err == nil {
		if destroyErr := sess.Destroy(); destroyErr != nil {
			configslog.Log.Error("Logout: session kapatılamadı", zap.Error(destroyErr))
		}
	}
	return c.Redirect("/", http.StatusFound)
}
