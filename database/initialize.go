package database

import (
	"portfolyo.link/configs/configslog"
	"portfolyo.link/database/migrations"
	"portfolyo.link/database/seeders"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func Initialize(db *gorm.DB, migrate bool, seed bool) {
	if !migrate && !seed {
		configslog.SLog.Info("Migrate veya seed bayrağı belirtilmedi, işlem yapılmayacak.")
		return
	}

	tx := db.Begin()
	if tx.Error != nil {
		configslog.Log.Fatal("Veritabanı transaction başlatılamadı", zap.Error(tx.Error))
		return
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			configslog.Log.Fatal("Veritabanı başlatma işlemi başarısız oldu (panic)", zap.Any("panic_info", r))
		} else if err := tx.Error; err != nil && err != gorm.ErrInvalidTransaction {
			configslog.SLog.Warn("Başlatma sırasında hata oluştuğu için işlem geri alınıyor.", zap.Error(err))
			rbErr := tx.Rollback().Error
			if rbErr != nil && rbErr != gorm.ErrInvalidTransaction {
				configslog.Log.Error("Rollback sırasında ek hata oluştu", zap.Error(rbErr))
			}
		}
	}()

	configslog.SLog.Info("Veritabanı başlatma işlemi başlıyor...")

	if migrate {
		configslog.SLog.Info("Migrasyonlar çalıştırılıyor...")
		if err := RunMigrationsInOrder(tx); err != nil {
			configslog.Log.Error("Migrasyon başarısız oldu", zap.Error(err))
			return
		}
		configslog.SLog.Info("Migrasyonlar tamamlandı.")
	}

	if seed {
		configslog.SLog.Info("Seeder'lar çalıştırılıyor...")
		if err := CheckAndRunSeeders(tx); err != nil {
			configslog.Log.Error("Seeding başarısız oldu", zap.Error(err))
			return
		}
		configslog.SLog.Info("Seeder'lar tamamlandı.")
	}

	if err := tx.Commit().Error; err != nil {
		tx.Error = err
		configslog.Log.Error("Commit başarısız oldu", zap.Error(err))
		return
	}

	configslog.SLog.Info("Veritabanı başlatma işlemi başarıyla tamamlandı")
}

func RunMigrationsInOrder(db *gorm.DB) error {
	configslog.SLog.Info("Migrasyonlar sırayla çalıştırılıyor...")

	if err := migrations.MigrateUsersTable(db); err != nil {
		configslog.Log.Error("Users tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	if err := migrations.MigrateProjectsTable(db); err != nil {
		configslog.Log.Error("Projects tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	if err := migrations.MigrateSkillsTable(db); err != nil {
		configslog.Log.Error("Skills tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	if err := migrations.MigrateAboutContentsTable(db); err != nil {
		configslog.Log.Error("About_contents tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	if err := migrations.MigrateExperiencesTable(db); err != nil {
		configslog.Log.Error("Experiences tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	if err := migrations.MigrateAvatarConfigsTable(db); err != nil {
		configslog.Log.Error("Avatar_configs tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}

	configslog.SLog.Info("Tüm migrasyonlar başarıyla çalıştırıldı.")
	return nil
}

func CheckAndRunSeeders(db *gorm.DB) error {
	configslog.SLog.Info("Yönetici hesabı kontrol ediliyor/oluşturuluyor...")
	if err := seeders.SeedAdminUser(db); err != nil {
		configslog.Log.Error("Yönetici hesabı seed işlemi başarısız", zap.Error(err))
		return err
	}

	configslog.SLog.Info("Avatar yapılandırması kontrol ediliyor...")
	if err := seeders.SeedAvatarConfig(db); err != nil {
		configslog.Log.Error("Avatar yapılandırması seed edilemedi", zap.Error(err))
		return err
	}

	configslog.SLog.Info("Tüm seeder'lar başarıyla kontrol edildi/çalıştırıldı.")
	return nil
}
