package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"ednalyzer/internal/blast"
	"ednalyzer/internal/catalog"
	"ednalyzer/internal/metrics"
)

// defaultMaxHits applies when the request omits max_hits.
const defaultMaxHits = 10

// BlastHandler runs mock BLAST searches.
type BlastHandler struct {
	searcher *blast.Searcher
}

// NewBlastHandler creates a new search handler.
func NewBlastHandler(searcher *blast.Searcher) *BlastHandler {
	return &BlastHandler{searcher: searcher}
}

// Run executes a search against the database named in the path.
func (h *BlastHandler) Run(c fiber.Ctx) error {
	dbName := c.Params("db_name")

	var body struct {
		Sequence  *string `json:"sequence"`
		BlastType string  `json:"blast_type"`
		MaxHits   *int    `json:"max_hits"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil || body.Sequence == nil {
		return jsonError(c, fiber.StatusBadRequest, "Sequence is required")
	}

	blastType := body.BlastType
	if blastType == "" {
		blastType = "blastn"
	}
	maxHits := defaultMaxHits
	if body.MaxHits != nil {
		maxHits = *body.MaxHits
	}

	result, err := h.searcher.Search(*body.Sequence, dbName, blastType, maxHits)
	if err != nil {
		switch {
		case errors.Is(err, blast.ErrSequenceTooShort):
			metrics.RecordBlastSearch(dbName, "invalid_sequence")
			return jsonError(c, fiber.StatusBadRequest, "Sequence too short (minimum 10 nucleotides)")
		case errors.Is(err, catalog.ErrDatabaseNotFound):
			metrics.RecordBlastSearch(dbName, "unknown_database")
			return jsonError(c, fiber.StatusNotFound, fmt.Sprintf("Database %s not found", dbName))
		}
		metrics.RecordBlastSearch(dbName, "error")
		slog.Error("blast search failed", "database", dbName, "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "Analysis failed")
	}

	slog.Info("blast search completed", "database", dbName, "type", blastType, "hits", len(result.Results))
	metrics.RecordBlastSearch(dbName, "success")

	return c.JSON(fiber.Map{
		"status":        "success",
		"blast_results": result,
	})
}
