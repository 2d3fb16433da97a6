package models

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// contextUserIDKey işlemi yapan kullanıcının ID'sini GORM hook'larına
// taşımak için kullanılan context anahtarıdır.
type contextKey string

const contextUserIDKey contextKey = "user_id"

// ContextWithUserID context'e işlemi yapan kullanıcı ID'sini ekler.
// Servis katmanı her mutasyondan önce bunu çağırır (audit alanları için).
func ContextWithUserID(ctx context.Context, userID uint) context.Context {
	return context.WithValue(ctx, contextUserIDKey, userID)
}

// UserIDFromContext context'teki kullanıcı ID'sini okur.
func UserIDFromContext(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(contextUserIDKey).(uint)
	return id, ok
}

// BaseModel tüm tablolarda ortak olan kimlik, zaman ve audit alanlarını taşır.
type BaseModel struct {
	ID        uint           `gorm:"primarykey"`
	CreatedAt time.Time      `gorm:"index"`
	UpdatedAt time.Time      `gorm:"index"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
	CreatedBy uint           `gorm:"index"`
	UpdatedBy uint           `gorm:"index"`
	DeletedBy uint           `gorm:"index"`
}

// BeforeCreate context'ten kullanıcı ID'sini okuyup CreatedBy alanını doldurur.
func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if userID, ok := UserIDFromContext(tx.Statement.Context); ok {
		m.CreatedBy = userID
		m.UpdatedBy = userID
	}
	return nil
}

// BeforeUpdate context'ten kullanıcı ID'sini okuyup UpdatedBy alanını doldurur.
func (m *BaseModel) BeforeUpdate(tx *gorm.DB) error {
	if userID, ok := UserIDFromContext(tx.Statement.Context); ok {
		m.UpdatedBy = userID
	}
	return nil
}
