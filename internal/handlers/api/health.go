package api

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"ednalyzer/internal/catalog"
)

// Version is the service version reported by the health endpoint.
const Version = "1.0.0"

// HealthHandler serves the liveness/status endpoint.
type HealthHandler struct {
	catalog *catalog.Catalog
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(cat *catalog.Catalog) *HealthHandler {
	return &HealthHandler{catalog: cat}
}

// Check returns the service status payload.
func (h *HealthHandler) Check(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":              "healthy",
		"timestamp":           time.Now().Format(time.RFC3339),
		"available_databases": h.catalog.Count(),
		"version":             Version,
	})
}
