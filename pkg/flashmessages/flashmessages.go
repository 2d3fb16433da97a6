// Package flashmessages redirect sonrası tek seferlik bildirim ve form
// verisi taşımak için session tabanlı flash mesaj desteği sağlar.
package flashmessages

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"portfolyo.link/utils"
)

// Session'da kullanılan flash anahtarları.
const (
	FlashSuccessKey  = "flash_success"
	FlashErrorKey    = "flash_error"
	flashFormDataKey = "flash_form_data"
)

// SetFlashMessage verilen anahtara tek seferlik mesaj yazar.
func SetFlashMessage(c *fiber.Ctx, key, message string) error {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return err
	}
	sess.Set(key, message)
	return sess.Save()
}

// GetFlashMessage mesajı okur ve session'dan siler (tek seferlik).
func GetFlashMessage(c *fiber.Ctx, key string) string {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return ""
	}
	message, ok := sess.Get(key).(string)
	if !ok || message == "" {
		return ""
	}
	sess.Delete(key)
	_ = sess.Save()
	return message
}

// SetFlashFormData validasyon hatası sonrası formu yeniden doldurmak için
// form verisini JSON olarak session'a yazar.
func SetFlashFormData(c *fiber.Ctx, data interface{}) error {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return err
	}
	encoded, err := json.Marshal(data)
	if err != nil {
		return err
	}
	sess.Set(flashFormDataKey, string(encoded))
	return sess.Save()
}

// GetFlashFormData kayıtlı form verisini okur, siler ve map olarak döner.
// Veri yoksa nil döner.
func GetFlashFormData(c *fiber.Ctx) map[string]interface{} {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return nil
	}
	encoded, ok := sess.Get(flashFormDataKey).(string)
	if !ok || encoded == "" {
		return nil
	}
	sess.Delete(flashFormDataKey)
	_ = sess.Save()

	var data map[string]interface{}
	if err := json.Unmarshal([]byte(encoded), &data); err != nil {
		return nil
	}
	return data
}
