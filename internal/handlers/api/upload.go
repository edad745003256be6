package api

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v3"

	"ednalyzer/internal/metrics"
)

// UploadHandler stages uploaded sequence files and echoes them back.
type UploadHandler struct {
	dir string
}

// NewUploadHandler creates a new upload handler writing into dir.
func NewUploadHandler(dir string) *UploadHandler {
	return &UploadHandler{dir: dir}
}

// Upload saves the uploaded file under its original name (last write wins),
// reads it back as text, and returns the content with its byte length.
func (h *UploadHandler) Upload(c fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		metrics.RecordUpload("missing_file")
		return jsonError(c, fiber.StatusBadRequest, "No file provided")
	}
	if fh.Filename == "" {
		metrics.RecordUpload("empty_filename")
		return jsonError(c, fiber.StatusBadRequest, "No file selected")
	}

	dest := filepath.Join(h.dir, fh.Filename)
	if err := c.SaveFile(fh, dest); err != nil {
		metrics.RecordUpload("error")
		slog.Error("failed to save upload", "filename", fh.Filename, "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "Upload failed")
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		metrics.RecordUpload("error")
		slog.Error("failed to read staged upload", "path", dest, "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "Upload failed")
	}

	content := string(data)
	metrics.RecordUpload("success")

	return c.JSON(fiber.Map{
		"status":   "success",
		"filename": fh.Filename,
		"content":  content,
		"size":     len(content),
	})
}
