package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/movex-app/movex-backend/internal/middleware"
	"github.com/movex-app/movex-backend/internal/models"
	"github.com/movex-app/movex-backend/internal/storage"
)

// HostingHandler serves the host dashboard and spot management.
type HostingHandler struct {
	store storage.Store
}

func NewHostingHandler(store storage.Store) *HostingHandler {
	return &HostingHandler{store: store}
}

var validLandTypes = map[string]bool{
	models.LandTypeResidential:   true,
	models.LandTypeCommercial:    true,
	models.LandTypeInstitutional: true,
	models.LandTypeIndustrial:    true,
	models.LandTypePublic:        true,
	models.LandTypeSpecial:       true,
}

var validVehicleTypes = map[string]bool{
	models.VehicleBicycle: true,
	models.VehicleCar:     true,
	models.VehicleBike:    true,
	models.VehicleTruck:   true,
}

// Dashboard lists the host's spots and their count. Users without a
// host profile are sent to host onboarding instead.
func (h *HostingHandler) Dashboard(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	host, err := h.store.GetHostProfile(user.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Redirect("/host-profile-create", fiber.StatusSeeOther)
		}
		log.Printf("Error loading host profile: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "lookup failed"})
	}

	spots, err := h.store.GetParkingSpotsByHost(host.ID)
	if err != nil {
		log.Printf("Error listing parking spots: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "lookup failed"})
	}
	count, err := h.store.CountParkingSpotsByHost(host.ID)
	if err != nil {
		log.Printf("Error counting parking spots: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "lookup failed"})
	}

	return c.JSON(fiber.Map{
		"parking_spot_count": count,
		"parking_spots":      spots,
	})
}

// SpotRequest is the payload for listing a new parking spot.
type SpotRequest struct {
	LandType          string  `json:"land_type"`
	ReferenceLandmark string  `json:"reference_landmark"`
	Latitude          float64 `json:"latitude"`
	Longitude         float64 `json:"longitude"`
	StreetAddress     string  `json:"street_address"`
	PostalCode        string  `json:"postal_code"`
	Country           string  `json:"country"`
	StateProvince     string  `json:"state_province"`
	CityTownVillage   string  `json:"city_town_village"`
	SecurityFeatures  string  `json:"security_features"`
	IsSecured         bool    `json:"is_secured"`

	Capacities []struct {
		VehicleType string `json:"vehicle_type"`
		TotalSpots  uint   `json:"total_spots"`
	} `json:"capacities"`
}

// CreateSpot lists a new parking spot for the current host.
func (h *HostingHandler) CreateSpot(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	host, err := h.store.GetHostProfile(user.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Redirect("/host-profile-create", fiber.StatusSeeOther)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "lookup failed"})
	}
	if host.IsBanned {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "host account is banned"})
	}

	var req SpotRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if !validLandTypes[req.LandType] {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid land type"})
	}
	if req.ReferenceLandmark == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Reference landmark is required"})
	}
	for _, capacity := range req.Capacities {
		if !validVehicleTypes[capacity.VehicleType] {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid vehicle type"})
		}
	}

	spot := &models.ParkingSpot{
		HostID:            host.ID,
		LandType:          req.LandType,
		ReferenceLandmark: req.ReferenceLandmark,
		Latitude:          req.Latitude,
		Longitude:         req.Longitude,
		StreetAddress:     req.StreetAddress,
		PostalCode:        req.PostalCode,
		Country:           req.Country,
		StateProvince:     req.StateProvince,
		CityTownVillage:   req.CityTownVillage,
		SecurityFeatures:  req.SecurityFeatures,
		IsSecured:         req.IsSecured,
	}
	if spot.SecurityFeatures == "" {
		spot.SecurityFeatures = "{}"
	}
	for _, capacity := range req.Capacities {
		total := capacity.TotalSpots
		if total == 0 {
			total = 1
		}
		spot.Capacities = append(spot.Capacities, models.ParkingSpotCapacity{
			VehicleType:    capacity.VehicleType,
			TotalSpots:     total,
			AvailableSpots: total,
		})
	}

	if _, err := h.store.CreateParkingSpot(spot); err != nil {
		log.Printf("Error creating parking spot: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create parking spot"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Parking spot created successfully",
		"spot":    spot,
	})
}
