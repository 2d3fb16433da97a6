package helpers

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// StringArray sıralı bir string listesini tek kolonda JSON olarak saklar.
// Tags ve technologies gibi alanlar için kullanılır; Postgres'te jsonb,
// sqlite'ta text kolonuna yazılır.
type StringArray []string

// Value GORM'un kolona yazacağı değeri üretir.
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		a = StringArray{}
	}
	return json.Marshal(a)
}

// Scan kolondaki JSON değerini diziye çevirir.
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = StringArray{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("StringArray: desteklenmeyen kolon tipi")
	}
	if len(data) == 0 {
		*a = StringArray{}
		return nil
	}
	return json.Unmarshal(data, a)
}
