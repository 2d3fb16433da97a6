package migrations

import (
	"portfolyo.link/configs/configslog"
	"portfolyo.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateExperiencesTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating experiences table...")
	err := db.AutoMigrate(&models.Experience{})
	if err != nil {
		configslog.Log.Error("Failed to migrate experiences table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Experiences table migrated successfully")
	return nil
}
