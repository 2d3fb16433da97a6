package configs

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// sessionStore tüm uygulama için tek session store.
var sessionStore *session.Store

// SetupSession cookie tabanlı session store'u hazırlar (idempotent).
func SetupSession() *session.Store {
	if sessionStore != nil {
		return sessionStore
	}
	secure := os.Getenv("APP_ENV") == "production"
	sessionStore = session.New(session.Config{
		Expiration:     24 * time.Hour,
		KeyLookup:      "cookie:portfolyo_session",
		CookieHTTPOnly: true,
		CookieSecure:   secure,
		CookieSameSite: "Lax",
	})
	return sessionStore
}

// SetupCSRF form gönderimleri için CSRF middleware'ini hazırlar.
// Token, şablonlarda csrf_token alanı olarak kullanılır.
func SetupCSRF() fiber.Handler {
	secure := os.Getenv("APP_ENV") == "production"
	return csrf.New(csrf.Config{
		KeyLookup:      "form:csrf_token",
		CookieName:     "portfolyo_csrf",
		CookieHTTPOnly: true,
		CookieSecure:   secure,
		CookieSameSite: "Lax",
		Expiration:     1 * time.Hour,
		ContextKey:     "csrf_token",
	})
}
