package api

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"

	"ednalyzer/internal/catalog"
)

// DatabaseHandler serves the reference database catalog.
type DatabaseHandler struct {
	catalog *catalog.Catalog
}

// NewDatabaseHandler creates a new database catalog handler.
func NewDatabaseHandler(cat *catalog.Catalog) *DatabaseHandler {
	return &DatabaseHandler{catalog: cat}
}

// List returns all database descriptors.
func (h *DatabaseHandler) List(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "success",
		"databases": h.catalog.List(),
		"count":     h.catalog.Count(),
	})
}

// Get returns a single database descriptor by name.
func (h *DatabaseHandler) Get(c fiber.Ctx) error {
	name := c.Params("name")

	db, err := h.catalog.Get(name)
	if err != nil {
		if errors.Is(err, catalog.ErrDatabaseNotFound) {
			return jsonError(c, fiber.StatusNotFound, fmt.Sprintf("Database %s not found", name))
		}
		return err
	}

	return c.JSON(fiber.Map{
		"status":   "success",
		"database": db,
	})
}
