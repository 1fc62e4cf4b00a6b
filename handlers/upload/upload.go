package upload

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/sankalp-academy/site-api/services/storage"
	"github.com/sankalp-academy/site-api/utils/response"
)

// UploadHandler handles media uploads to object storage
type UploadHandler struct {
	media *storage.MediaStore
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(media *storage.MediaStore) *UploadHandler {
	return &UploadHandler{media: media}
}

// UploadResponse is returned after a successful upload
type UploadResponse struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

// Upload handles POST /api/v1/upload (admin). Accepts a multipart
// "file" field plus an optional "category" selecting the storage
// folder, and returns the public URL to store on the content row.
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	if h.media == nil {
		return response.InternalServerError(c, "Media storage is not configured")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "Missing file field")
	}

	if fileHeader.Size > storage.MaxUploadSize {
		return response.BadRequest(c, fmt.Sprintf("File exceeds the %dMB upload limit", storage.MaxUploadSize/(1024*1024)))
	}

	if _, err := storage.ImageContentType(fileHeader.Filename); err != nil {
		return response.BadRequest(c, err.Error())
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.InternalServerError(c, "Failed to read uploaded file")
	}
	defer file.Close()

	category := c.FormValue("category", "misc")

	url, key, err := h.media.Upload(c.Context(), category, fileHeader.Filename, file)
	if err != nil {
		return response.InternalServerError(c, err.Error())
	}

	return response.Created(c, UploadResponse{URL: url, Key: key})
}
