package models

import (
	"time"

	helpers "portfolyo.link/models/helpers"
)

// Experience iş deneyimi zaman çizelgesindeki bir kaydı temsil eder.
// IsCurrent true ise EndDate her zaman null olarak saklanır; forma ne
// yazılmış olursa olsun servis katmanı bunu temizler.
type Experience struct {
	BaseModel
	CompanyName  string              `gorm:"type:varchar(150);not null"`
	Position     string              `gorm:"type:varchar(150);not null"`
	StartDate    time.Time           `gorm:"type:date;not null"`
	EndDate      *time.Time          `gorm:"type:date"`
	IsCurrent    bool                `gorm:"default:false"`
	Description  string              `gorm:"type:text"`
	Location     string              `gorm:"type:varchar(150)"`
	Technologies helpers.StringArray `gorm:"type:jsonb"`
	OrderIndex   int                 `gorm:"default:0;index"`
}
