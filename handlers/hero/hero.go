package hero

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sankalp-academy/site-api/model"
	"github.com/sankalp-academy/site-api/utils/response"
	"github.com/sankalp-academy/site-api/utils/validation"
	"gorm.io/gorm"
)

// HeroHandler handles home page banner requests
type HeroHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewHeroHandler creates a new hero handler
func NewHeroHandler(db *gorm.DB) *HeroHandler {
	return &HeroHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateHeroRequest represents the request body for creating a banner
type CreateHeroRequest struct {
	Title         string `json:"title" validate:"required,min=2,max=255"`
	Subtitle      string `json:"subtitle" validate:"omitempty,max=1000"`
	CTAText       string `json:"cta_text" validate:"omitempty,max=100"`
	CTALink       string `json:"cta_link" validate:"omitempty,max=255"`
	BackgroundURL string `json:"background_url" validate:"omitempty,max=2048"`
	DisplayOrder  int    `json:"display_order"`
	IsActive      *bool  `json:"is_active"`
}

// UpdateHeroRequest admits partial field sets
type UpdateHeroRequest struct {
	Title         *string `json:"title" validate:"omitempty,min=2,max=255"`
	Subtitle      *string `json:"subtitle" validate:"omitempty,max=1000"`
	CTAText       *string `json:"cta_text" validate:"omitempty,max=100"`
	CTALink       *string `json:"cta_link" validate:"omitempty,max=255"`
	BackgroundURL *string `json:"background_url" validate:"omitempty,max=2048"`
	DisplayOrder  *int    `json:"display_order"`
	IsActive      *bool   `json:"is_active"`
}

// ListBanners handles GET /api/v1/hero — ordered by display order so
// the public page can rotate through active banners first-to-last.
func (h *HeroHandler) ListBanners(c *fiber.Ctx) error {
	query := h.db.Model(&model.HeroContent{})

	if c.Query("active") == "true" {
		query = query.Where("is_active = ?", true)
	}

	limit, _ := strconv.Atoi(c.Query("limit", "0"))
	if limit > 0 {
		query = query.Limit(limit)
	}

	var banners []model.HeroContent
	if err := query.Order("display_order ASC").Find(&banners).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch hero content")
	}

	return response.Success(c, banners)
}

// GetBanner handles GET /api/v1/hero/:id
func (h *HeroHandler) GetBanner(c *fiber.Ctx) error {
	var banner model.HeroContent
	if err := h.db.First(&banner, c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Hero content not found")
		}
		return response.InternalServerError(c, "Failed to fetch hero content")
	}
	return response.Success(c, banner)
}

// CreateBanner handles POST /api/v1/hero
func (h *HeroHandler) CreateBanner(c *fiber.Ctx) error {
	var req CreateHeroRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	banner := model.HeroContent{
		Title:         validation.SanitizeString(req.Title),
		Subtitle:      req.Subtitle,
		CTAText:       req.CTAText,
		CTALink:       req.CTALink,
		BackgroundURL: req.BackgroundURL,
		DisplayOrder:  req.DisplayOrder,
		IsActive:      true,
	}
	if req.IsActive != nil {
		banner.IsActive = *req.IsActive
	}

	if err := h.db.Create(&banner).Error; err != nil {
		return response.InternalServerError(c, "Failed to create hero content")
	}

	return response.Created(c, banner)
}

// UpdateBanner handles PUT /api/v1/hero/:id
func (h *HeroHandler) UpdateBanner(c *fiber.Ctx) error {
	var req UpdateHeroRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	var banner model.HeroContent
	if err := h.db.First(&banner, c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Hero content not found")
		}
		return response.InternalServerError(c, "Failed to fetch hero content")
	}

	if req.Title != nil {
		banner.Title = validation.SanitizeString(*req.Title)
	}
	if req.Subtitle != nil {
		banner.Subtitle = *req.Subtitle
	}
	if req.CTAText != nil {
		banner.CTAText = *req.CTAText
	}
	if req.CTALink != nil {
		banner.CTALink = *req.CTALink
	}
	if req.BackgroundURL != nil {
		banner.BackgroundURL = *req.BackgroundURL
	}
	if req.DisplayOrder != nil {
		banner.DisplayOrder = *req.DisplayOrder
	}
	if req.IsActive != nil {
		banner.IsActive = *req.IsActive
	}

	if err := h.db.Save(&banner).Error; err != nil {
		return response.InternalServerError(c, "Failed to update hero content")
	}

	return response.SuccessWithMessage(c, "Hero content updated successfully", banner)
}

// DeleteBanner handles DELETE /api/v1/hero/:id
func (h *HeroHandler) DeleteBanner(c *fiber.Ctx) error {
	var banner model.HeroContent
	if err := h.db.First(&banner, c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Hero content not found")
		}
		return response.InternalServerError(c, "Failed to fetch hero content")
	}

	if err := h.db.Delete(&banner).Error; err != nil {
		return response.InternalServerError(c, "Failed to delete hero content")
	}

	return response.SuccessWithMessage(c, "Hero content deleted successfully", nil)
}
