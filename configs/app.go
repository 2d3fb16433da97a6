package configs

import (
	"os"

	"github.com/joho/godotenv"

	"portfolyo.link/configs/configslog"
)

// LoadEnv .env dosyasını yükler. Dosya yoksa (ör. production'da gerçek env
// değişkenleri kullanılıyorsa) sessizce devam edilir.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		configslog.SLog.Info(".env dosyası bulunamadı, mevcut ortam değişkenleri kullanılacak.")
	}
}

// GetEnv ortam değişkenini okur, boşsa fallback döner.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

// GetListenAddr HTTP sunucusunun dinleyeceği adresi döndürür.
func GetListenAddr() string {
	return GetEnv("APP_ADDR", ":3000")
}

// GetStorageRoot yüklenen dosyaların (CV, avatar, proje görselleri)
// saklanacağı kök dizini döndürür.
func GetStorageRoot() string {
	return GetEnv("STORAGE_ROOT", "./storage")
}

// GetStaticResumePath depoda CV bulunamadığında kullanılacak statik
// yedek PDF'in yolunu döndürür.
func GetStaticResumePath() string {
	return GetEnv("STATIC_RESUME_PATH", "./public/resume.pdf")
}

// GetContactEmail public sitedeki iletişim bölümünde kullanılacak e-posta
// adresini döndürür. Boşsa mailto bağlantısı gösterilmez.
func GetContactEmail() string {
	return GetEnv("CONTACT_EMAIL", "")
}
