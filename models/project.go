package models

import helpers "portfolyo.link/models/helpers"

// Proje kategorileri. Public sitedeki sekme filtresi de bu değerleri kullanır.
// "all" veritabanına yazılmaz; yalnızca filtre değeridir.
const (
	ProjectCategoryAll      = "all"
	ProjectCategoryWebsites = "websites"
	ProjectCategoryBackend  = "backend"
	ProjectCategoryMobile   = "mobile"
)

// ProjectCategories geçerli kategori değerlerinin sıralı listesi.
var ProjectCategories = []string{
	ProjectCategoryWebsites,
	ProjectCategoryBackend,
	ProjectCategoryMobile,
}

// IsValidProjectCategory kategori değerinin geçerli olup olmadığını söyler.
func IsValidProjectCategory(category string) bool {
	for _, c := range ProjectCategories {
		if c == category {
			return true
		}
	}
	return false
}

// Project portfolyoda sergilenen bir projeyi temsil eder.
type Project struct {
	BaseModel
	Title       string              `gorm:"type:varchar(150);not null"`
	Description string              `gorm:"type:text;not null"`
	ImageURL    string              `gorm:"type:varchar(500)"`
	Tags        helpers.StringArray `gorm:"type:jsonb"`
	Category    string              `gorm:"type:varchar(20);default:'websites';index"`
	LiveURL     string              `gorm:"type:varchar(500)"`
	RepoURL     string              `gorm:"type:varchar(500)"`
	Featured    bool                `gorm:"default:false;index"` // Ana sayfa teaser listesi için
	OrderIndex  int                 `gorm:"default:0;index"`     // Görüntüleme sırası
}
