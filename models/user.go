package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User panel erişimi olan hesapları temsil eder. Public site için
// kullanıcı kaydı yoktur; hesaplar seeder ile oluşturulur.
type User struct {
	BaseModel
	Name      string     `gorm:"type:varchar(100);not null"`
	Email     string     `gorm:"type:varchar(100);uniqueIndex;not null"`
	Password  string     `gorm:"type:varchar(100);not null"` // bcrypt hash
	IsAdmin   bool       `gorm:"default:false;index"`        // Panel yetkisi (role claim karşılığı)
	IsActive  bool       `gorm:"default:true;index"`
	LastLogin *time.Time
}

// SetPassword düz metin şifreyi bcrypt ile hashleyip modele yazar.
func (u *User) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	return nil
}

// CheckPassword verilen şifreyi hash ile karşılaştırır.
func (u *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain)) == nil
}
