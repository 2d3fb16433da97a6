package migrations

import (
	"portfolyo.link/configs/configslog"
	"portfolyo.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateSkillsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating skills table...")
	err := db.AutoMigrate(&models.Skill{})
	if err != nil {
		configslog.Log.Error("Failed to migrate skills table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Skills table migrated successfully")
	return nil
}
