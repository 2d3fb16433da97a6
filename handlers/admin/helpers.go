package handlers

import "github.com/gofiber/fiber/v2"

// currentUserID locals'taki kullanıcı ID'sini okur. AuthMiddleware'den
// geçen isteklerde her zaman doludur.
func currentUserID(c *fiber.Ctx) (uint, bool) {
	userID, ok := c.Locals("userID").(uint)
	return userID, ok && userID != 0
}

// formChecked checkbox/switch alanını okur. Tarayıcılar işaretli kutu
// için "on" gönderir; işaretsiz kutu hiç gönderilmez.
func formChecked(c *fiber.Ctx, field string) bool {
	value := c.FormValue(field, "")
	return value == "on" || value == "true" || value == "1"
}
