package migrations

import (
	"portfolyo.link/configs/configslog"
	"portfolyo.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateAboutContentsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating about_contents table...")
	err := db.AutoMigrate(&models.AboutContent{})
	if err != nil {
		configslog.Log.Error("Failed to migrate about_contents table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("About_contents table migrated successfully")
	return nil
}
