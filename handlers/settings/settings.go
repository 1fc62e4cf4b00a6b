package settings

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sankalp-academy/site-api/model"
	"github.com/sankalp-academy/site-api/utils/response"
	"github.com/sankalp-academy/site-api/utils/validation"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SettingsHandler handles the site settings singleton
type SettingsHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(db *gorm.DB) *SettingsHandler {
	return &SettingsHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// UpdateSettingsRequest admits partial field sets
type UpdateSettingsRequest struct {
	SiteName        *string        `json:"site_name" validate:"omitempty,min=2,max=255"`
	Tagline         *string        `json:"tagline" validate:"omitempty,max=255"`
	ContactPhone    *string        `json:"contact_phone" validate:"omitempty,max=20"`
	ContactEmail    *string        `json:"contact_email" validate:"omitempty,email"`
	ContactAddress  *string        `json:"contact_address" validate:"omitempty,max=1000"`
	SocialLinks     datatypes.JSON `json:"social_links"`
	MetaTitle       *string        `json:"meta_title" validate:"omitempty,max=255"`
	MetaDescription *string        `json:"meta_description" validate:"omitempty,max=2000"`
	MetaKeywords    *string        `json:"meta_keywords" validate:"omitempty,max=2000"`
	LogoURL         *string        `json:"logo_url" validate:"omitempty,max=2048"`
	FaviconURL      *string        `json:"favicon_url" validate:"omitempty,max=2048"`
}

// GetSettings handles GET /api/v1/settings. The row is provisioned at
// migrate/seed time, so a missing row is a real error, not a cue to
// create defaults.
func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	var settings model.SiteSettings
	if err := h.db.First(&settings).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.InternalServerError(c, "Site settings have not been provisioned")
		}
		return response.InternalServerError(c, "Failed to fetch site settings")
	}
	return response.Success(c, settings)
}

// UpdateSettings handles PUT /api/v1/settings
func (h *SettingsHandler) UpdateSettings(c *fiber.Ctx) error {
	var req UpdateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	var settings model.SiteSettings
	if err := h.db.First(&settings).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.InternalServerError(c, "Site settings have not been provisioned")
		}
		return response.InternalServerError(c, "Failed to fetch site settings")
	}

	if req.SiteName != nil {
		settings.SiteName = validation.SanitizeString(*req.SiteName)
	}
	if req.Tagline != nil {
		settings.Tagline = *req.Tagline
	}
	if req.ContactPhone != nil {
		settings.ContactPhone = *req.ContactPhone
	}
	if req.ContactEmail != nil {
		settings.ContactEmail = *req.ContactEmail
	}
	if req.ContactAddress != nil {
		settings.ContactAddress = *req.ContactAddress
	}
	if len(req.SocialLinks) > 0 {
		settings.SocialLinks = req.SocialLinks
	}
	if req.MetaTitle != nil {
		settings.MetaTitle = *req.MetaTitle
	}
	if req.MetaDescription != nil {
		settings.MetaDescription = *req.MetaDescription
	}
	if req.MetaKeywords != nil {
		settings.MetaKeywords = *req.MetaKeywords
	}
	if req.LogoURL != nil {
		settings.LogoURL = *req.LogoURL
	}
	if req.FaviconURL != nil {
		settings.FaviconURL = *req.FaviconURL
	}

	if err := h.db.Save(&settings).Error; err != nil {
		return response.InternalServerError(c, "Failed to update site settings")
	}

	return response.SuccessWithMessage(c, "Site settings updated successfully", settings)
}
