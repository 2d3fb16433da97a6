package routes

import (
	"github.com/gofiber/fiber/v2"

	site_handlers "portfolyo.link/handlers/site"
)

// registerSiteRoutes herkese açık site rotalarını tanımlar.
func registerSiteRoutes(app *fiber.App) {
	homeHandler := site_handlers.NewHomeHandler()
	projectsHandler := site_handlers.NewProjectsHandler()
	cvHandler := site_handlers.NewCVHandler()

	app.Get("/", homeHandler.HomePage)
	app.Get("/all-projects", projectsHandler.AllProjects)
	app.Get("/cv/download", cvHandler.DownloadCV)
	app.Get("/cv/preview", cvHandler.PreviewCV)
}
