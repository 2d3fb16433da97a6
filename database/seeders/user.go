package seeders

import (
	"errors"
	"strings"

	"portfolyo.link/configs"
	"portfolyo.link/configs/configslog"
	"portfolyo.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedAdminUser ortam değişkenlerinden yönetici hesabını oluşturur.
// Hesap zaten varsa dokunulmaz; parola değişikliği panelden yapılmaz,
// ADMIN_PASSWORD ile yeniden seed edilir.
func SeedAdminUser(db *gorm.DB) error {
	email := strings.ToLower(strings.TrimSpace(configs.GetEnv("ADMIN_EMAIL", "admin@portfolyo.link")))
	name := configs.GetEnv("ADMIN_NAME", "Yönetici")
	password := configs.GetEnv("ADMIN_PASSWORD", "")

	if password == "" {
		configslog.SLog.Warn("ADMIN_PASSWORD tanımlı değil, yönetici hesabı seed edilmeyecek.")
		return nil
	}

	var existing models.User
	result := db.Where("email = ?", email).First(&existing)
	if result.Error == nil {
		configslog.SLog.Infof("Yönetici hesabı '%s' zaten mevcut, oluşturma atlanıyor.", email)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		configslog.Log.Error("Yönetici hesabı kontrol edilirken veritabanı hatası",
			zap.String("email", email), zap.Error(result.Error))
		return result.Error
	}

	admin := models.User{
		Name:     name,
		Email:    email,
		IsAdmin:  true,
		IsActive: true,
	}
	if err := admin.SetPassword(password); err != nil {
		configslog.Log.Error("Yönetici parolası hashlenemedi", zap.Error(err))
		return err
	}
	if err := db.Create(&admin).Error; err != nil {
		configslog.Log.Error("Yönetici hesabı oluşturulamadı", zap.String("email", email), zap.Error(err))
		return err
	}

	configslog.SLog.Infof("Yönetici hesabı oluşturuldu: %s (ID: %d)", email, admin.ID)
	return nil
}
