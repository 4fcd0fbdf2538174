package handlers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/movex-app/movex-backend/internal/middleware"
	"github.com/movex-app/movex-backend/internal/services"
	"github.com/movex-app/movex-backend/internal/validation"
)

// AuthHandler handles registration, login and the account-existence
// checks used by the front-end forms.
type AuthHandler struct {
	auth     *services.AuthService
	sessions *services.SessionService
}

func NewAuthHandler(auth *services.AuthService, sessions *services.SessionService) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions}
}

// SendOTP issues an email OTP. The code travels out-of-band; the
// response only acknowledges the request.
func (h *AuthHandler) SendOTP(c *fiber.Ctx) error {
	email := c.FormValue("email")
	if email == "" {
		return c.JSON(fiber.Map{"status": "error", "message": "Email required"})
	}
	if !validation.ValidateEmail(email) {
		return c.JSON(fiber.Map{"status": "error", "message": "Invalid email address"})
	}

	if err := h.auth.RequestEmailOTP(email); err != nil {
		log.Printf("Error issuing email OTP: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error", "message": "Could not send OTP",
		})
	}
	return c.JSON(fiber.Map{"status": "success", "message": "OTP sent!"})
}

// Register creates an account from email + password + OTP and opens a
// session.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	email := c.FormValue("email")
	password1 := c.FormValue("password1")
	password2 := c.FormValue("password2")
	code := c.FormValue("otp")

	if !validation.ValidatePassword(password1) {
		return flashAndRedirect(c, flashError, "Password must be at least 6 characters", "/register")
	}

	user, err := h.auth.Register(email, password1, password2, code)
	if err != nil {
		switch err {
		case services.ErrPasswordMismatch:
			return flashAndRedirect(c, flashError, "Passwords do not match", "/register")
		case services.ErrOTPNotFound:
			return flashAndRedirect(c, flashError, "Invalid OTP", "/register")
		case services.ErrOTPExpired:
			return flashAndRedirect(c, flashError, "OTP expired", "/register")
		case services.ErrUserExists:
			return flashAndRedirect(c, flashError, "User already exists", "/register")
		default:
			log.Printf("Error registering user: %v", err)
			return flashAndRedirect(c, flashError, "Something went wrong, please try again", "/register")
		}
	}

	if err := h.openSession(c, user.ID); err != nil {
		log.Printf("Error opening session: %v", err)
		return flashAndRedirect(c, flashError, "Something went wrong, please try again", "/login")
	}
	return flashAndRedirect(c, flashSuccess, "Registration successful!", "/")
}

// Login authenticates with email and password. The failure message is
// deliberately generic.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	email := c.FormValue("email")
	password := c.FormValue("password")

	user, err := h.auth.Login(email, password)
	if err != nil {
		return flashAndRedirect(c, flashError, "Email or Password is incorrect! Please try again.", "/login")
	}

	if err := h.openSession(c, user.ID); err != nil {
		log.Printf("Error opening session: %v", err)
		return flashAndRedirect(c, flashError, "Something went wrong, please try again", "/login")
	}
	return flashAndRedirect(c, flashSuccess, "Login Successful!", "/")
}

// Logout revokes the current session and clears the cookie.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if session := middleware.CurrentSession(c); session != nil {
		if err := h.sessions.Revoke(session); err != nil {
			log.Printf("Error revoking session: %v", err)
		}
	}
	c.ClearCookie(middleware.SessionCookie)
	return flashAndRedirect(c, flashInfo, "Logged out.", "/")
}

// CheckUserExists reports whether an email is registered.
func (h *AuthHandler) CheckUserExists(c *fiber.Ctx) error {
	exists, err := h.auth.EmailExists(c.FormValue("email"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "lookup failed"})
	}
	return c.JSON(fiber.Map{"exists": exists})
}

// CheckPhoneExists reports whether a phone number is registered.
func (h *AuthHandler) CheckPhoneExists(c *fiber.Ctx) error {
	exists, err := h.auth.PhoneExists(c.FormValue("phone"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "lookup failed"})
	}
	return c.JSON(fiber.Map{"exists": exists})
}

func (h *AuthHandler) openSession(c *fiber.Ctx, userID uint) error {
	cookie, err := h.sessions.Open(userID)
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    cookie,
		Expires:  time.Now().Add(14 * 24 * time.Hour),
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return nil
}
