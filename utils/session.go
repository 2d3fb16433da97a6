package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// Session içinde tutulan anahtarlar.
const (
	SessionKeyUserID   = "user_id"
	SessionKeyUserName = "user_name"
	SessionKeyIsAdmin  = "is_admin"
)

// ErrSessionStoreMissing session store'un locals'a konmadığını belirtir
// (router middleware'i çalışmamış demektir).
var ErrSessionStoreMissing = errors.New("session store bulunamadı")

// SessionStart locals'taki store üzerinden mevcut isteğin session'ını açar.
func SessionStart(c *fiber.Ctx) (*session.Session, error) {
	store, ok := c.Locals("session_store").(*session.Store)
	if !ok || store == nil {
		return nil, ErrSessionStoreMissing
	}
	return store.Get(c)
}

// GetUserIDFromSession oturumdaki kullanıcı ID'sini okur.
func GetUserIDFromSession(sess *session.Session) (uint, error) {
	id, ok := sess.Get(SessionKeyUserID).(uint)
	if !ok || id == 0 {
		return 0, errors.New("oturumda kullanıcı ID yok")
	}
	return id, nil
}

// GetIsAdminFromSession oturumdaki admin bayrağını okur.
func GetIsAdminFromSession(sess *session.Session) (bool, error) {
	isAdmin, ok := sess.Get(SessionKeyIsAdmin).(bool)
	if !ok {
		return false, errors.New("oturumda admin bilgisi yok")
	}
	return isAdmin, nil
}
