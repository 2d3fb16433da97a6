package routes

import (
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"

	"portfolyo.link/configs"
	"portfolyo.link/configs/configsstorage"
	"portfolyo.link/pkg/storage"
	"portfolyo.link/utils"
)

// SetupRoutes tüm uygulama rotalarını ve genel middleware'leri ayarlar.
func SetupRoutes(app *fiber.App) {
	app.Use(recoverMiddleware.New()) // Panic yakalama
	app.Use(logger.New())            // İstek loglama
	app.Use(initializeSessionAndLocals())
	app.Use(configs.SetupCSRF())

	// Yalnızca görsel bucket'ları statik sunulur. documents bucket'ı
	// (CV) mount edilmez; CV /cv/* uçlarından iner.
	storageRoot := configs.GetStorageRoot()
	for _, bucket := range []string{storage.BucketAvatars, storage.BucketProjectImages} {
		app.Static(configsstorage.PublicBaseURL+"/"+bucket, filepath.Join(storageRoot, bucket))
	}
	app.Static("/public", "./public")

	registerSiteRoutes(app)
	registerAuthRoutes(app)
	registerAdminRoutes(app)

	// En sonda: eşleşmeyen tüm rotalar.
	app.Use(notFoundHandler)
}

// initializeSessionAndLocals session store'u ve oturumdaki kullanıcı
// bilgilerini her istekte locals'a koyar.
func initializeSessionAndLocals() fiber.Handler {
	sessionStore := configs.SetupSession()
	return func(c *fiber.Ctx) error {
		c.Locals("session_store", sessionStore)
		sess, err := utils.SessionStart(c)
		if err != nil {
			return c.Next()
		}
		if userID, idErr := utils.GetUserIDFromSession(sess); idErr == nil {
			c.Locals("userID", userID)
		}
		if isAdmin, admErr := utils.GetIsAdminFromSession(sess); admErr == nil {
			c.Locals("isAdmin", isAdmin)
		}
		if userName, ok := sess.Get(utils.SessionKeyUserName).(string); ok {
			c.Locals("userName", userName)
		}
		return c.Next()
	}
}

func notFoundHandler(c *fiber.Ctx) error {
	accepts := c.Accepts("application/json", "text/html")
	switch accepts {
	case "application/json":
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Kaynak bulunamadı"})
	default:
		return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{
			"Title": "Sayfa Bulunamadı",
		}, "layouts/error_layout")
	}
}
