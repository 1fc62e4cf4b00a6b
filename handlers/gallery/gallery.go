package gallery

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sankalp-academy/site-api/model"
	"github.com/sankalp-academy/site-api/utils/response"
	"github.com/sankalp-academy/site-api/utils/validation"
	"gorm.io/gorm"
)

// GalleryHandler handles gallery image requests
type GalleryHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewGalleryHandler creates a new gallery handler
func NewGalleryHandler(db *gorm.DB) *GalleryHandler {
	return &GalleryHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateGalleryImageRequest represents the request body for adding an image
type CreateGalleryImageRequest struct {
	Title       string `json:"title" validate:"required,min=2,max=255"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	ImageURL    string `json:"image_url" validate:"required,max=2048"`
	Category    string `json:"category" validate:"omitempty,oneof=campus facilities students events achievements other"`
	IsActive    *bool  `json:"is_active"`
}

// UpdateGalleryImageRequest admits partial field sets
type UpdateGalleryImageRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=2,max=255"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	ImageURL    *string `json:"image_url" validate:"omitempty,max=2048"`
	Category    *string `json:"category" validate:"omitempty,oneof=campus facilities students events achievements other"`
	IsActive    *bool   `json:"is_active"`
}

// ListImages handles GET /api/v1/gallery
func (h *GalleryHandler) ListImages(c *fiber.Ctx) error {
	query := h.db.Model(&model.GalleryImage{})

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if c.Query("active") == "true" {
		query = query.Where("is_active = ?", true)
	}

	limit, _ := strconv.Atoi(c.Query("limit", "0"))
	if limit > 0 {
		query = query.Limit(limit)
	}

	var images []model.GalleryImage
	if err := query.Order("created_at DESC").Find(&images).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch gallery images")
	}

	return response.Success(c, images)
}

// GetImage handles GET /api/v1/gallery/:id
func (h *GalleryHandler) GetImage(c *fiber.Ctx) error {
	var image model.GalleryImage
	if err := h.db.First(&image, c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Gallery image not found")
		}
		return response.InternalServerError(c, "Failed to fetch gallery image")
	}
	return response.Success(c, image)
}

// CreateImage handles POST /api/v1/gallery
func (h *GalleryHandler) CreateImage(c *fiber.Ctx) error {
	var req CreateGalleryImageRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	image := model.GalleryImage{
		Title:       validation.SanitizeString(req.Title),
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
		IsActive:    true,
	}
	if image.Category == "" {
		image.Category = "other"
	}
	if req.IsActive != nil {
		image.IsActive = *req.IsActive
	}

	if err := h.db.Create(&image).Error; err != nil {
		return response.InternalServerError(c, "Failed to create gallery image")
	}

	return response.Created(c, image)
}

// UpdateImage handles PUT /api/v1/gallery/:id
func (h *GalleryHandler) UpdateImage(c *fiber.Ctx) error {
	var req UpdateGalleryImageRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	var image model.GalleryImage
	if err := h.db.First(&image, c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Gallery image not found")
		}
		return response.InternalServerError(c, "Failed to fetch gallery image")
	}

	if req.Title != nil {
		image.Title = validation.SanitizeString(*req.Title)
	}
	if req.Description != nil {
		image.Description = *req.Description
	}
	if req.ImageURL != nil {
		image.ImageURL = *req.ImageURL
	}
	if req.Category != nil {
		image.Category = *req.Category
	}
	if req.IsActive != nil {
		image.IsActive = *req.IsActive
	}

	if err := h.db.Save(&image).Error; err != nil {
		return response.InternalServerError(c, "Failed to update gallery image")
	}

	return response.SuccessWithMessage(c, "Gallery image updated successfully", image)
}

// DeleteImage handles DELETE /api/v1/gallery/:id
func (h *GalleryHandler) DeleteImage(c *fiber.Ctx) error {
	var image model.GalleryImage
	if err := h.db.First(&image, c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Gallery image not found")
		}
		return response.InternalServerError(c, "Failed to fetch gallery image")
	}

	if err := h.db.Delete(&image).Error; err != nil {
		return response.InternalServerError(c, "Failed to delete gallery image")
	}

	return response.SuccessWithMessage(c, "Gallery image deleted successfully", nil)
}
