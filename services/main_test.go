package services

import (
	"fmt"
	"os"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

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

// setupTestDB her test için izole bir in-memory sqlite veritabanı kurar ve
// global bağlantıyı onunla değiştirir.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("test veritabanı açılamadı: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Skill{},
		&models.AboutContent{},
		&models.Experience{},
		&models.AvatarConfig{},
	)
	if err != nil {
		t.Fatalf("test migrasyonu başarısız: %v", err)
	}

	configsdatabase.SetDB(db)
	t.Cleanup(func() { configsdatabase.SetDB(nil) })
	return db
}

// setupTestStore geçici dizinde bir disk deposu kurar ve globali değiştirir.
// Kök dizin, dosya sistemine doğrudan bakması gereken testler için döner.
func setupTestStore(t *testing.T) (*storage.DiskStore, string) {
	t.Helper()

	root := t.TempDir()
	store, err := storage.NewDiskStore(root, configsstorage.PublicBaseURL)
	if err != nil {
		t.Fatalf("test deposu kurulamadı: %v", err)
	}
	configsstorage.SetStore(store)
	t.Cleanup(func() { configsstorage.SetStore(nil) })
	return store, root
}
