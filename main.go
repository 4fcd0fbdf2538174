package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/movex-app/movex-backend/database"
	"github.com/movex-app/movex-backend/internal/config"
	"github.com/movex-app/movex-backend/internal/jobs"
	"github.com/movex-app/movex-backend/internal/models"
	"github.com/movex-app/movex-backend/internal/routes"
	"github.com/movex-app/movex-backend/internal/services"
	"github.com/movex-app/movex-backend/internal/storage"
)

func main() {
	// Load .env file for local development
	if os.Getenv("INSTANCE_CONNECTION_NAME") == "" {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("⚠️  No .env file found - checking environment variables")
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize storage
	var store storage.Store
	if cfg.UseMemoryStore {
		log.Println("⚠️  Using in-memory storage (not for production!)")
		store = storage.NewMemoryStore()
	} else {
		log.Println("📦 Connecting to PostgreSQL database...")
		database.Connect(cfg)

		log.Println("🔄 Running database migrations...")
		err := database.DB.AutoMigrate(
			&models.User{},
			&models.EmailOTP{},
			&models.PhoneOTP{},
			&models.Session{},
			&models.HostProfile{},
			&models.DriverProfile{},
			&models.ParkingSpot{},
			&models.ParkingSpotCapacity{},
			&models.ParkingSpotImage{},
			&models.Booking{},
		)
		if err != nil {
			log.Fatal("Failed to migrate database:", err)
		}
		log.Println("✅ Database migrations completed!")

		store = storage.NewDatabaseStore(database.DB)
	}

	// Outbound notifications: fall back to log-only delivery when
	// credentials are absent so local development still works.
	var emailNotifier services.Notifier
	if mailer, err := services.NewMailerService(cfg); err != nil {
		log.Println("⚠️  SMTP not configured - OTP emails will be logged only")
		emailNotifier = services.LogNotifier{}
	} else {
		log.Println("✅ Mailer service initialized")
		emailNotifier = mailer
	}

	var smsNotifier services.Notifier
	if twilioService, err := services.NewTwilioService(cfg); err != nil {
		log.Println("⚠️  Twilio not configured - OTP SMS will be logged only")
		smsNotifier = services.LogNotifier{}
	} else {
		log.Println("✅ Twilio service initialized")
		smsNotifier = twilioService
	}

	notifier := &services.CompositeNotifier{Email: emailNotifier, SMS: smsNotifier}

	// Initialize services
	otpService := services.NewOTPService(store)
	authService := services.NewAuthService(store, otpService, notifier)
	profileService := services.NewProfileService(store, otpService, notifier)
	sessionService := services.NewSessionService(store, cfg.SessionSecret)

	// Sweep expired OTP rows in the background
	cleanupJob := jobs.NewCleanupJob(store, 15*time.Minute)
	cleanupJob.Start()

	// Create fiber app
	app := fiber.New(fiber.Config{
		AppName: "MOVEX Backend v1.0.0",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		status := "healthy"
		statusCode := 200

		if !cfg.UseMemoryStore && database.DB != nil {
			sqlDB, err := database.DB.DB()
			if err != nil || sqlDB.Ping() != nil {
				status = "unhealthy"
				statusCode = 503
			}
		}

		return c.Status(statusCode).JSON(fiber.Map{
			"status": status,
			"services": fiber.Map{
				"database": status == "healthy",
			},
		})
	})

	// Setup routes
	routes.SetupRoutes(app, store, authService, profileService, sessionService, cfg.UploadDir)

	// Handle graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("\n🛑 Gracefully shutting down...")
		cleanupJob.Stop()
		_ = app.Shutdown()
	}()

	// Start server
	log.Println("========================================")
	log.Printf("🚀 MOVEX Backend starting on port %s", cfg.Port)
	log.Printf("📊 Storage: %s", storageType(cfg))
	log.Println("========================================")

	log.Fatal(app.Listen(":" + cfg.Port))
}

func storageType(cfg config.Config) string {
	if cfg.UseMemoryStore {
		return "In-Memory (Testing)"
	}
	return "PostgreSQL Database"
}
