package server

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ednalyzer/internal/blast"
	"ednalyzer/internal/catalog"
	"ednalyzer/internal/handlers"
	"ednalyzer/internal/handlers/api"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(cat *catalog.Catalog) {
	// Initialize handlers
	pageHandler := handlers.NewPageHandler()
	dbHandler := api.NewDatabaseHandler(cat)
	blastHandler := api.NewBlastHandler(blast.NewSearcher(cat))
	healthHandler := api.NewHealthHandler(cat)
	uploadHandler := api.NewUploadHandler(s.Cfg.UploadDir)

	// Front end
	s.App.Get("/", pageHandler.Index)

	// JSON API
	s.App.Get("/api/databases", dbHandler.List)
	s.App.Get("/api/databases/:name", dbHandler.Get)
	s.App.Post("/api/blast/:db_name", blastHandler.Run)
	s.App.Get("/api/health", healthHandler.Check)
	s.App.Post("/api/upload", uploadHandler.Upload)

	// Observability
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// JSON 404 for everything unmatched - must be registered last
	s.App.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":  "error",
			"message": "Endpoint not found",
		})
	})
}
