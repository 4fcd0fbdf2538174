package handlers

import (
	"fmt"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/movex-app/movex-backend/internal/middleware"
	"github.com/movex-app/movex-backend/internal/services"
	"github.com/movex-app/movex-backend/internal/validation"
)

// ProfileHandler drives onboarding: phone verification, base profile,
// then host/driver role profiles.
type ProfileHandler struct {
	profiles  *services.ProfileService
	sessions  *services.SessionService
	uploadDir string
}

func NewProfileHandler(profiles *services.ProfileService, sessions *services.SessionService, uploadDir string) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, sessions: sessions, uploadDir: uploadDir}
}

// SendPhoneOTP issues a phone OTP for verification.
func (h *ProfileHandler) SendPhoneOTP(c *fiber.Ctx) error {
	phone := c.FormValue("phone")
	if phone == "" {
		return c.JSON(fiber.Map{"status": "error", "message": "Phone Number required"})
	}
	if !validation.ValidatePhone(phone) {
		return c.JSON(fiber.Map{"status": "error", "message": "Invalid phone number"})
	}

	if err := h.profiles.RequestPhoneOTP(phone); err != nil {
		log.Printf("Error issuing phone OTP: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error", "message": "Could not send OTP",
		})
	}
	return c.JSON(fiber.Map{"status": "success", "message": "OTP sent!"})
}

// ProfileCreatePage serves the base-profile step. A user whose base
// profile is already complete is bounced straight to the stored resume
// target (or home) so re-entry is idempotent.
func (h *ProfileHandler) ProfileCreatePage(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	if user.HasProfile() {
		return h.redirectAfterProfile(c)
	}
	return c.JSON(fiber.Map{"page": "profile-create"})
}

// ProfileCreate completes the base profile: name plus a phone number
// proven by OTP.
func (h *ProfileHandler) ProfileCreate(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	if user.HasProfile() {
		return h.redirectAfterProfile(c)
	}

	firstName := c.FormValue("f_name")
	lastName := c.FormValue("l_name")
	phone := c.FormValue("phone")
	code := c.FormValue("otp")

	err := h.profiles.CompleteBaseProfile(user, firstName, lastName, phone, code)
	if err != nil {
		switch err {
		case services.ErrMissingPhone:
			return flashAndRedirect(c, flashError, "Phone Number required", "/create-profile")
		case services.ErrOTPNotFound:
			return flashAndRedirect(c, flashError, "Invalid OTP", "/create-profile")
		case services.ErrOTPExpired:
			return flashAndRedirect(c, flashError, "OTP expired", "/create-profile")
		case services.ErrPhoneTaken:
			return flashAndRedirect(c, flashError, "Phone Number has already been used.", "/create-profile")
		default:
			log.Printf("Error completing base profile: %v", err)
			return flashAndRedirect(c, flashError, "Something went wrong, please try again", "/create-profile")
		}
	}

	target, err := h.sessions.PopResumeTarget(middleware.CurrentSession(c))
	if err != nil {
		log.Printf("Error consuming resume target: %v", err)
	}
	if target != "" {
		return flashAndRedirect(c, flashSuccess, "Profile created successfully!", target)
	}
	return flashAndRedirect(c, flashSuccess, "Profile created successfully!", "/")
}

// HostProfileCreatePage serves the host onboarding step, parking the
// resume pointer when the base profile is still missing.
func (h *ProfileHandler) HostProfileCreatePage(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	if exists, err := h.profiles.HasHostProfile(user); err == nil && exists {
		return flashAndRedirect(c, flashWarning, "You already have a Host Account.", "/")
	}
	if !user.HasProfile() {
		return h.deferToBaseProfile(c, "/host-profile-create")
	}
	return c.JSON(fiber.Map{"page": "host-profile-create"})
}

// HostProfileCreate stores the uploaded government ID and attaches a
// host profile.
func (h *ProfileHandler) HostProfileCreate(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	if exists, err := h.profiles.HasHostProfile(user); err == nil && exists {
		return flashAndRedirect(c, flashWarning, "You already have a Host Account.", "/")
	}
	if !user.HasProfile() {
		return h.deferToBaseProfile(c, "/host-profile-create")
	}

	document, err := c.FormFile("gov_id_image")
	if err != nil {
		return flashAndRedirect(c, flashError, "No ID image uploaded.", "/host-profile-create")
	}

	path, err := h.saveDocument(c, document, "gov_ids")
	if err != nil {
		log.Printf("Error saving government ID: %v", err)
		return flashAndRedirect(c, flashError, "Could not save uploaded image.", "/host-profile-create")
	}

	if _, err := h.profiles.CreateHostProfile(user, path); err != nil {
		log.Printf("Error creating host profile: %v", err)
		return flashAndRedirect(c, flashError, fmt.Sprintf("Error: %v", err), "/host-profile-create")
	}
	return flashAndRedirect(c, flashSuccess, "Host profile created successfully!", "/")
}

// DriverProfileCreatePage serves the driver onboarding step.
func (h *ProfileHandler) DriverProfileCreatePage(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	if exists, err := h.profiles.HasDriverProfile(user); err == nil && exists {
		return flashAndRedirect(c, flashWarning, "You already have a Driver Account.", "/")
	}
	if !user.HasProfile() {
		return h.deferToBaseProfile(c, "/driver-profile-create")
	}
	return c.JSON(fiber.Map{"page": "driver-profile-create"})
}

// DriverProfileCreate stores the uploaded license and attaches a driver
// profile.
func (h *ProfileHandler) DriverProfileCreate(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	if exists, err := h.profiles.HasDriverProfile(user); err == nil && exists {
		return flashAndRedirect(c, flashWarning, "You already have a Driver Account.", "/")
	}
	if !user.HasProfile() {
		return h.deferToBaseProfile(c, "/driver-profile-create")
	}

	document, err := c.FormFile("license_image")
	if err != nil {
		return flashAndRedirect(c, flashError, "No license image uploaded.", "/driver-profile-create")
	}

	path, err := h.saveDocument(c, document, "license")
	if err != nil {
		log.Printf("Error saving license: %v", err)
		return flashAndRedirect(c, flashError, "Could not save uploaded image.", "/driver-profile-create")
	}

	if _, err := h.profiles.CreateDriverProfile(user, path); err != nil {
		log.Printf("Error creating driver profile: %v", err)
		return flashAndRedirect(c, flashError, fmt.Sprintf("Error: %v", err), "/driver-profile-create")
	}
	return flashAndRedirect(c, flashSuccess, "Driver profile created successfully!", "/")
}

// deferToBaseProfile remembers which role-profile step interrupted the
// flow, then sends the user to base-profile creation.
func (h *ProfileHandler) deferToBaseProfile(c *fiber.Ctx, target string) error {
	if err := h.sessions.SetResumeTarget(middleware.CurrentSession(c), target); err != nil {
		log.Printf("Error storing resume target: %v", err)
	}
	return c.Redirect("/create-profile", fiber.StatusSeeOther)
}

func (h *ProfileHandler) redirectAfterProfile(c *fiber.Ctx) error {
	target, err := h.sessions.PopResumeTarget(middleware.CurrentSession(c))
	if err != nil {
		log.Printf("Error consuming resume target: %v", err)
	}
	if target != "" {
		return c.Redirect(target, fiber.StatusSeeOther)
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (h *ProfileHandler) saveDocument(c *fiber.Ctx, file *multipart.FileHeader, subdir string) (string, error) {
	dir := filepath.Join(h.uploadDir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, uuid.NewString()+filepath.Ext(file.Filename))
	if err := c.SaveFile(file, path); err != nil {
		return "", err
	}
	return path, nil
}
