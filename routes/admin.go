package routes

import (
	"github.com/gofiber/fiber/v2"

	admin_handlers "portfolyo.link/handlers/admin"
	"portfolyo.link/middlewares"
)

// registerAdminRoutes /admin altındaki yönetim rotalarını tanımlar.
// Tüm rotalar giriş + aktif hesap + admin yetkisi gerektirir.
func registerAdminRoutes(app *fiber.App) {
	homeHandler := admin_handlers.NewHomeHandler()
	projectHandler := admin_handlers.NewProjectHandler()
	skillHandler := admin_handlers.NewSkillHandler()
	aboutHandler := admin_handlers.NewAboutHandler()
	experienceHandler := admin_handlers.NewExperienceHandler()
	avatarHandler := admin_handlers.NewAvatarHandler()
	cvHandler := admin_handlers.NewCVHandler()

	adminGroup := app.Group("/admin")
	adminGroup.Use(
		middlewares.AuthMiddleware,   // 1. Giriş yapmış mı?
		middlewares.StatusMiddleware, // 2. Hesap aktif mi?
		middlewares.RequireAdmin(),   // 3. Admin mi?
	)

	// --- Panel Ana Sayfa ---
	adminGroup.Get("/home", homeHandler.HomePage)

	// --- Proje Yönetimi ---
	adminGroup.Get("/projects", projectHandler.ListProjects)
	adminGroup.Get("/projects/create", projectHandler.ShowCreateProject)
	adminGroup.Post("/projects/create", projectHandler.CreateProject)
	adminGroup.Get("/projects/update/:id", projectHandler.ShowUpdateProject)
	adminGroup.Post("/projects/update/:id", projectHandler.UpdateProject)
	adminGroup.Post("/projects/delete/:id", projectHandler.DeleteProject)
	adminGroup.Delete("/projects/delete/:id", projectHandler.DeleteProject)

	// --- Yetkinlik Yönetimi ---
	adminGroup.Get("/skills", skillHandler.ListSkills)
	adminGroup.Get("/skills/create", skillHandler.ShowCreateSkill)
	adminGroup.Post("/skills/create", skillHandler.CreateSkill)
	adminGroup.Get("/skills/update/:id", skillHandler.ShowUpdateSkill)
	adminGroup.Post("/skills/update/:id", skillHandler.UpdateSkill)
	adminGroup.Post("/skills/delete/:id", skillHandler.DeleteSkill)
	adminGroup.Delete("/skills/delete/:id", skillHandler.DeleteSkill)

	// --- Hakkımda (singleton) ---
	adminGroup.Get("/about", aboutHandler.ShowAbout)
	adminGroup.Post("/about", aboutHandler.SaveAbout)

	// --- İş Deneyimi Yönetimi ---
	adminGroup.Get("/experiences", experienceHandler.ListExperiences)
	adminGroup.Get("/experiences/create", experienceHandler.ShowCreateExperience)
	adminGroup.Post("/experiences/create", experienceHandler.CreateExperience)
	adminGroup.Get("/experiences/update/:id", experienceHandler.ShowUpdateExperience)
	adminGroup.Post("/experiences/update/:id", experienceHandler.UpdateExperience)
	adminGroup.Post("/experiences/delete/:id", experienceHandler.DeleteExperience)
	adminGroup.Delete("/experiences/delete/:id", experienceHandler.DeleteExperience)

	// --- Avatar Ayarları (singleton) ---
	adminGroup.Get("/avatar", avatarHandler.ShowAvatar)
	adminGroup.Post("/avatar", avatarHandler.SaveAvatar)
	adminGroup.Post("/avatar/image", avatarHandler.UploadAvatarImage)

	// --- CV Yönetimi ---
	adminGroup.Get("/cv", cvHandler.ShowCV)
	adminGroup.Post("/cv/upload", cvHandler.UploadCV)
	adminGroup.Post("/cv/delete", cvHandler.DeleteCV)
}
