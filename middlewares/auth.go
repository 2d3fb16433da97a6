package middlewares

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"portfolyo.link/configs/configslog"
	"portfolyo.link/pkg/flashmessages"
	"portfolyo.link/pkg/renderer"
	"portfolyo.link/services"
	"portfolyo.link/utils"
)

// AuthMiddleware oturum açmış kullanıcı gerektirir; yoksa login'e yönlendirir.
func AuthMiddleware(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Bu sayfa için giriş yapmalısınız.")
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}
	return c.Next()
}

// GuestMiddleware yalnızca oturum açmamış kullanıcılara izin verir
// (login sayfası gibi). Girişli kullanıcı panele yönlendirilir.
func GuestMiddleware(c *fiber.Ctx) error {
	if userID, ok := c.Locals("userID").(uint); ok && userID != 0 {
		return c.Redirect("/admin/home", fiber.StatusSeeOther)
	}
	return c.Next()
}

// StatusMiddleware oturumdaki kullanıcının halen var ve aktif olduğunu
// doğrular; değilse oturumu kapatıp login'e yönlendirir.
func StatusMiddleware(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	authService := services.NewAuthService()
	user, err := authService.GetUserByID(c.UserContext(), userID)
	if err != nil || !user.IsActive {
		if err != nil {
			configslog.Log.Warn("StatusMiddleware: kullanıcı doğrulanamadı", zap.Uint("userID", userID), zap.Error(err))
		}
		if sess, sessErr := utils.SessionStart(c); sessErr == nil {
			_ = sess.Destroy()
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Oturumunuz geçersiz, lütfen tekrar giriş yapın.")
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}
	return c.Next()
}

// RequireAdmin admin yetkisi gerektirir. Yetkisiz kullanıcıya ana sayfa
// bağlantısı içeren bir erişim reddi sayfası gösterilir.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		isAdmin, ok := c.Locals("isAdmin").(bool)
		if !ok || !isAdmin {
			return renderer.Render(c, "errors/denied", "layouts/error_layout", fiber.Map{
				"Title": "Erişim Reddedildi",
			}, http.StatusForbidden)
		}
		return c.Next()
	}
}
