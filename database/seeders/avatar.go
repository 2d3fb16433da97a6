package seeders

import (
	"errors"

	"portfolyo.link/configs/configslog"
	"portfolyo.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedAvatarConfig varsayılan avatar yapılandırma satırını oluşturur.
// Satır zaten varsa dokunulmaz.
func SeedAvatarConfig(db *gorm.DB) error {
	var existing models.AvatarConfig
	result := db.Order("id ASC").First(&existing)
	if result.Error == nil {
		configslog.SLog.Info("Avatar yapılandırması zaten mevcut, seed atlanıyor.")
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		configslog.Log.Error("Avatar yapılandırması kontrol edilirken veritabanı hatası", zap.Error(result.Error))
		return result.Error
	}

	config := models.AvatarConfig{
		ShowOrbitalElements:   true,
		OrbitalSpeed1:         models.OrbitalSpeedDefault1,
		OrbitalSpeed2:         models.OrbitalSpeedDefault2,
		ShowFloatingParticles: true,
		ShowAnimatedBorder:    true,
	}
	if err := db.Create(&config).Error; err != nil {
		configslog.Log.Error("Avatar yapılandırması seed edilemedi", zap.Error(err))
		return err
	}

	configslog.SLog.Infof("Varsayılan avatar yapılandırması oluşturuldu (ID: %d).", config.ID)
	return nil
}
