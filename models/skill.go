package models

// Yetkinlik seviyesi sınırları. Form 1-5 aralığını zorlar, servis katmanı
// da kalıcılıktan önce aynı aralığı doğrular.
const (
	SkillLevelMin = 1
	SkillLevelMax = 5
)

// SkillCategories yetkinliklerin gruplandığı kategoriler.
var SkillCategories = []string{
	"Frontend", "Backend", "Database", "DevOps", "Design", "Mobile", "Other",
}

// Skill portfolyoda listelenen bir yetkinliği temsil eder.
type Skill struct {
	BaseModel
	Name       string `gorm:"type:varchar(100);not null"`
	Category   string `gorm:"type:varchar(50);not null;index"`
	Level      int    `gorm:"default:3"` // 1-5 arası
	IconName   string `gorm:"type:varchar(100)"`
	OrderIndex int    `gorm:"default:0;index"`
}
