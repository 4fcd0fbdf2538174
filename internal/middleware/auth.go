package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/movex-app/movex-backend/internal/models"
	"github.com/movex-app/movex-backend/internal/services"
	"github.com/movex-app/movex-backend/internal/storage"
)

// SessionCookie is the name of the login cookie.
const SessionCookie = "movex_session"

const (
	localsUser    = "current_user"
	localsSession = "current_session"
)

// RequireLogin resolves the session cookie and loads the user. Browsers
// without a valid session are redirected to the login page rather than
// handed an error code.
func RequireLogin(sessions *services.SessionService, store storage.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cookie := c.Cookies(SessionCookie)
		if cookie == "" {
			return c.Redirect("/login", fiber.StatusSeeOther)
		}

		session, err := sessions.Resolve(cookie)
		if err != nil {
			c.ClearCookie(SessionCookie)
			return c.Redirect("/login", fiber.StatusSeeOther)
		}

		user, err := store.GetUser(session.UserID)
		if err != nil {
			c.ClearCookie(SessionCookie)
			return c.Redirect("/login", fiber.StatusSeeOther)
		}

		c.Locals(localsUser, user)
		c.Locals(localsSession, session)
		return c.Next()
	}
}

// RedirectIfAuthenticated sends already-logged-in users home from the
// login and register endpoints.
func RedirectIfAuthenticated(sessions *services.SessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cookie := c.Cookies(SessionCookie); cookie != "" {
			if _, err := sessions.Resolve(cookie); err == nil {
				return c.Redirect("/", fiber.StatusSeeOther)
			}
		}
		return c.Next()
	}
}

// CurrentUser returns the user attached by RequireLogin.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(localsUser).(*models.User)
	return user
}

// CurrentSession returns the session attached by RequireLogin.
func CurrentSession(c *fiber.Ctx) *models.Session {
	session, _ := c.Locals(localsSession).(*models.Session)
	return session
}
