package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// Flash levels mirror the message tags the front-end styles on.
const (
	flashError   = "error"
	flashWarning = "warning"
	flashInfo    = "info"
	flashSuccess = "success"
)

// flashAndRedirect sets a short-lived flash cookie for the front-end to
// display and redirects. Every failure in the onboarding flow funnels
// through here; nothing is fatal.
func flashAndRedirect(c *fiber.Ctx, level, message, location string) error {
	c.Cookie(&fiber.Cookie{
		Name:    "flash",
		Value:   message,
		Expires: time.Now().Add(time.Minute),
		Path:    "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:    "flash_level",
		Value:   level,
		Expires: time.Now().Add(time.Minute),
		Path:    "/",
	})
	return c.Redirect(location, fiber.StatusSeeOther)
}
