package handlers

import (
	"github.com/gofiber/fiber/v3"
)

// PageHandler serves the HTML front end.
type PageHandler struct{}

// NewPageHandler creates a new page handler.
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Index renders the main application page.
func (h *PageHandler) Index(c fiber.Ctx) error {
	return c.Render("index", fiber.Map{
		"Title": "eDNA Biodiversity Analyzer",
	})
}
