package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/movex-app/movex-backend/internal/handlers"
	"github.com/movex-app/movex-backend/internal/middleware"
	"github.com/movex-app/movex-backend/internal/services"
	"github.com/movex-app/movex-backend/internal/storage"
)

// SetupRoutes configures all API routes.
func SetupRoutes(
	app *fiber.App,
	store storage.Store,
	auth *services.AuthService,
	profiles *services.ProfileService,
	sessions *services.SessionService,
	uploadDir string,
) {
	authHandler := handlers.NewAuthHandler(auth, sessions)
	profileHandler := handlers.NewProfileHandler(profiles, sessions, uploadDir)
	hostingHandler := handlers.NewHostingHandler(store)

	requireLogin := middleware.RequireLogin(sessions, store)
	redirectIfAuthenticated := middleware.RedirectIfAuthenticated(sessions)

	// Root endpoint
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to MOVEX Backend!",
			"version": "1.0.0",
			"endpoints": fiber.Map{
				"health":   "/health",
				"login":    "/login",
				"register": "/register",
				"hosting":  "/hosting",
			},
		})
	})

	// Authentication
	app.Get("/login", redirectIfAuthenticated, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"page": "login"})
	})
	app.Post("/login", redirectIfAuthenticated, authHandler.Login)
	app.Get("/register", redirectIfAuthenticated, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"page": "register"})
	})
	app.Post("/register", redirectIfAuthenticated, authHandler.Register)
	app.Get("/logout", requireLogin, authHandler.Logout)
	app.Post("/logout", requireLogin, authHandler.Logout)

	// Front-end form helpers
	app.Post("/check-user-exists", authHandler.CheckUserExists)
	app.Post("/check-phone-exists", authHandler.CheckPhoneExists)

	// OTP delivery
	app.Post("/send-otp", authHandler.SendOTP)
	app.Post("/verify-otp", profileHandler.SendPhoneOTP)

	// Onboarding
	app.Get("/create-profile", requireLogin, profileHandler.ProfileCreatePage)
	app.Post("/create-profile", requireLogin, profileHandler.ProfileCreate)
	app.Get("/host-profile-create", requireLogin, profileHandler.HostProfileCreatePage)
	app.Post("/host-profile-create", requireLogin, profileHandler.HostProfileCreate)
	app.Get("/driver-profile-create", requireLogin, profileHandler.DriverProfileCreatePage)
	app.Post("/driver-profile-create", requireLogin, profileHandler.DriverProfileCreate)

	// Hosting
	app.Get("/hosting", requireLogin, hostingHandler.Dashboard)
	app.Post("/hosting/spots", requireLogin, hostingHandler.CreateSpot)
}
