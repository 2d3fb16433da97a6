package migrations

import (
	"portfolyo.link/configs/configslog"
	"portfolyo.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateAvatarConfigsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating avatar_configs table...")
	err := db.AutoMigrate(&models.AvatarConfig{})
	if err != nil {
		configslog.Log.Error("Failed to migrate avatar_configs table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Avatar_configs table migrated successfully")
	return nil
}
