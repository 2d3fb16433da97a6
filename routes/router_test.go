package routes

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"portfolyo.link/configs/configsdatabase"
	"portfolyo.link/configs/configslog"
	"portfolyo.link/configs/configsstorage"
	"portfolyo.link/models"
	"portfolyo.link/pkg/storage"
)

func TestMain(m *testing.M) {
	configslog.InitLogger()
	os.Exit(m.Run())
}

// setupTestApp rota testleri için tam uygulamayı in-memory sqlite ve geçici
// disk deposuyla ayağa kaldırır. Depo kökü, dosya yerleşimini doğrudan
// hazırlaması gereken testler için döner.
func setupTestApp(t *testing.T) (*fiber.App, string) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Skill{},
		&models.AboutContent{},
		&models.Experience{},
		&models.AvatarConfig{},
	))
	configsdatabase.SetDB(db)
	t.Cleanup(func() { configsdatabase.SetDB(nil) })

	root := t.TempDir()
	store, err := storage.NewDiskStore(root, configsstorage.PublicBaseURL)
	require.NoError(t, err)
	configsstorage.SetStore(store)
	t.Cleanup(func() { configsstorage.SetStore(nil) })
	t.Setenv("STORAGE_ROOT", root)

	engine := html.New("../views", ".html")
	engine.AddFunc("add", func(a, b int) int { return a + b })
	engine.AddFunc("sub", func(a, b int) int { return a - b })

	app := fiber.New(fiber.Config{Views: engine})
	SetupRoutes(app)
	return app, root
}

func fetchBody(t *testing.T, app *fiber.App, path string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestHomePageContactSection(t *testing.T) {
	t.Setenv("CONTACT_EMAIL", "merhaba@example.com")
	app, _ := setupTestApp(t)

	status, body := fetchBody(t, app, "/")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `id="contact"`)
	assert.Contains(t, body, "mailto:merhaba@example.com")
}

func TestHomePageCVButtonsFollowAvailability(t *testing.T) {
	t.Run("CV ve yedek PDF yokken düğmeler gizlenir", func(t *testing.T) {
		t.Setenv("STATIC_RESUME_PATH", filepath.Join(t.TempDir(), "yok.pdf"))
		app, _ := setupTestApp(t)

		status, body := fetchBody(t, app, "/")
		require.Equal(t, http.StatusOK, status)
		assert.NotContains(t, body, "/cv/download")
	})

	t.Run("statik yedek PDF varsa düğmeler gösterilir", func(t *testing.T) {
		fallback := filepath.Join(t.TempDir(), "resume.pdf")
		require.NoError(t, os.WriteFile(fallback, []byte("%PDF-1.4"), 0o644))
		t.Setenv("STATIC_RESUME_PATH", fallback)
		app, _ := setupTestApp(t)

		status, body := fetchBody(t, app, "/")
		require.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, "/cv/download")
	})
}

// Statik mount yalnızca görsel bucket'larını kapsar; documents altındaki
// CV dosyaları /storage yolundan erişilemez.
func TestStorageMountExcludesDocuments(t *testing.T) {
	app, root := setupTestApp(t)

	require.NoError(t, os.MkdirAll(filepath.Join(root, storage.BucketAvatars), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(root, storage.BucketAvatars, "a.png"), []byte("png"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, storage.BucketDocuments, "cv"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(root, storage.BucketDocuments, "cv", "resume_1.pdf"), []byte("pdf"), 0o644))

	status, _ := fetchBody(t, app, "/storage/avatars/a.png")
	assert.Equal(t, http.StatusOK, status)

	req := httptest.NewRequest(http.MethodGet, "/storage/documents/cv/resume_1.pdf", nil)
	req.Header.Set("Accept", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
