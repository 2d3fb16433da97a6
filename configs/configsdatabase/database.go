package configsdatabase

import (
	"fmt"
	"os"
	"time"

	"portfolyo.link/configs/configslog"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// db global GORM bağlantısı. InitDB ile kurulur, GetDB ile erişilir.
var db *gorm.DB

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

// BuildDSN ortam değişkenlerinden Postgres DSN'i üretir.
func BuildDSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", ""),
		getEnv("DB_NAME", "portfolyo"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_SSLMODE", "disable"),
		getEnv("DB_TIMEZONE", "Europe/Istanbul"),
	)
}

// InitDB veritabanı bağlantısını kurar ve connection pool ayarlarını yapar.
func InitDB() {
	gormLogLevel := logger.Warn
	if os.Getenv("APP_ENV") != "production" {
		gormLogLevel = logger.Info
	}

	conn, err := gorm.Open(postgres.Open(BuildDSN()), &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel),
	})
	if err != nil {
		configslog.Log.Fatal("Veritabanı bağlantısı kurulamadı", zap.Error(err))
	}

	sqlDB, err := conn.DB()
	if err != nil {
		configslog.Log.Fatal("sql.DB handle alınamadı", zap.Error(err))
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)

	db = conn
	configslog.SLog.Info("Veritabanı bağlantısı başarıyla kuruldu.")
}

// GetDB global bağlantıyı döndürür. InitDB çağrılmadan kullanılamaz.
func GetDB() *gorm.DB {
	if db == nil {
		configslog.Log.Fatal("GetDB çağrıldı ancak veritabanı başlatılmadı (InitDB eksik)")
	}
	return db
}

// SetDB test ortamında bağlantıyı değiştirmek için kullanılır (ör. sqlite in-memory).
func SetDB(conn *gorm.DB) {
	db = conn
}

// CloseDB bağlantıyı kapatır. main içinde defer ile çağrılır.
func CloseDB() {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		configslog.Log.Error("CloseDB: sql.DB handle alınamadı", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		configslog.Log.Error("Veritabanı bağlantısı kapatılamadı", zap.Error(err))
	}
}
