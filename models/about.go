package models

// AboutContent public sitedeki "hakkımda" bölümünün içeriğidir.
// Tabloda en fazla bir satır bulunur (singleton); yoksa varsayılan
// içerik render edilir.
type AboutContent struct {
	BaseModel
	Title       string `gorm:"type:varchar(150)"`
	Description string `gorm:"type:text"` // Markdown; render sırasında sanitize edilir
	ImageURL    string `gorm:"type:varchar(500)"`
}
