package models

// Orbital animasyon hızının saniye cinsinden sınırları ve varsayılanları.
const (
	OrbitalSpeedMin      = 5
	OrbitalSpeedMax      = 60
	OrbitalSpeedDefault1 = 20
	OrbitalSpeedDefault2 = 30
)

// AvatarConfig ana sayfadaki avatar bileşeninin görsel ayarlarını tutar.
// Tabloda tek satır bulunur (singleton). Bool alanlara bilinçli olarak
// kolon varsayılanı verilmez: GORM default'lu sıfır değeri insert'te
// atladığı için kapalı bir ayar sessizce açık kaydedilirdi.
type AvatarConfig struct {
	BaseModel
	ShowOrbitalElements   bool
	OrbitalSpeed1         int `gorm:"default:20"` // saniye, 5-60 arası
	OrbitalSpeed2         int `gorm:"default:30"`
	ShowFloatingParticles bool
	ShowAnimatedBorder    bool
	AvatarURL             string `gorm:"type:varchar(500)"`
}
