package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"

	"portfolyo.link/configs"
	"portfolyo.link/configs/configsdatabase"
	"portfolyo.link/configs/configslog"
	"portfolyo.link/configs/configsstorage"
	"portfolyo.link/routes"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	configs.LoadEnv()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	configsstorage.InitStore(configs.GetStorageRoot())

	engine := html.New("./views", ".html")
	engine.AddFunc("add", func(a, b int) int { return a + b })
	engine.AddFunc("sub", func(a, b int) int { return a - b })

	app := fiber.New(fiber.Config{
		Views:        engine,
		AppName:      "portfolyo.link",
		BodyLimit:    12 << 20, // CV üst sınırının (10MB) biraz üzerinde
		ErrorHandler: errorHandler,
	})

	routes.SetupRoutes(app)

	// Graceful shutdown: SIGINT/SIGTERM geldiğinde açık istekler bitirilir.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		configslog.SLog.Info("Kapatma sinyali alındı, sunucu durduruluyor...")
		if err := app.Shutdown(); err != nil {
			configslog.Log.Error("Sunucu kapatılırken hata oluştu", zap.Error(err))
		}
	}()

	addr := configs.GetListenAddr()
	configslog.SLog.Infof("Sunucu %s adresinde dinliyor", addr)
	if err := app.Listen(addr); err != nil {
		configslog.Log.Fatal("Sunucu başlatılamadı", zap.Error(err))
	}
}

// errorHandler yakalanmamış hataları loglar ve duruma göre HTML ya da
// JSON hata cevabı döner.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	if code >= fiber.StatusInternalServerError {
		configslog.Log.Error("İstek işlenirken hata oluştu",
			zap.Int("status", code),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}

	if c.Accepts("text/html", "application/json") == "application/json" {
		return c.Status(code).JSON(fiber.Map{"error": err.Error()})
	}
	if code == fiber.StatusNotFound {
		return c.Status(code).Render("errors/404", fiber.Map{"Title": "Sayfa Bulunamadı"}, "layouts/error_layout")
	}
	return c.Status(code).Render("errors/500", fiber.Map{"Title": "Bir Hata Oluştu"}, "layouts/error_layout")
}
