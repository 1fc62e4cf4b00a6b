package testimonial

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sankalp-academy/site-api/model"
	"github.com/sankalp-academy/site-api/utils/response"
	"github.com/sankalp-academy/site-api/utils/validation"
	"gorm.io/gorm"
)

// TestimonialHandler handles testimonial requests
type TestimonialHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewTestimonialHandler creates a new testimonial handler
func NewTestimonialHandler(db *gorm.DB) *TestimonialHandler {
	return &TestimonialHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateTestimonialRequest represents the request body for creating a testimonial
type CreateTestimonialRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=255"`
	Role     string `json:"role" validate:"omitempty,oneof=student parent alumni"`
	Course   string `json:"course" validate:"omitempty,max=100"`
	Rating   int    `json:"rating" validate:"required,gte=1,lte=5"`
	Message  string `json:"message" validate:"required,min=5"`
	ImageURL string `json:"image_url" validate:"omitempty,max=2048"`
	IsActive *bool  `json:"is_active"`
}

// UpdateTestimonialRequest admits partial field sets
type UpdateTestimonialRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=2,max=255"`
	Role     *string `json:"role" validate:"omitempty,oneof=student parent alumni"`
	Course   *string `json:"course" validate:"omitempty,max=100"`
	Rating   *int    `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Message  *string `json:"message" validate:"omitempty,min=5"`
	ImageURL *string `json:"image_url" validate:"omitempty,max=2048"`
	IsActive *bool   `json:"is_active"`
}

// ListTestimonials handles GET /api/v1/testimonials
func (h *TestimonialHandler) ListTestimonials(c *fiber.Ctx) error {
	query := h.db.Model(&model.Testimonial{})

	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}
	if c.Query("active") == "true" {
		query = query.Where("is_active = ?", true)
	}

	limit, _ := strconv.Atoi(c.Query("limit", "0"))
	if limit > 0 {
		query = query.Limit(limit)
	}

	var testimonials []model.Testimonial
	if err := query.Order("created_at DESC").Find(&testimonials).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch testimonials")
	}

	return response.Success(c, testimonials)
}

// GetTestimonial handles GET /api/v1/testimonials/:id
func (h *TestimonialHandler) GetTestimonial(c *fiber.Ctx) error {
	var testimonial model.Testimonial
	if err := h.db.First(&testimonial, c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Testimonial not found")
		}
		return response.InternalServerError(c, "Failed to fetch testimonial")
	}
	return response.Success(c, testimonial)
}

// CreateTestimonial handles POST /api/v1/testimonials
func (h *TestimonialHandler) CreateTestimonial(c *fiber.Ctx) error {
	var req CreateTestimonialRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	testimonial := model.Testimonial{
		Name:     validation.SanitizeString(req.Name),
		Role:     req.Role,
		Course:   req.Course,
		Rating:   req.Rating,
		Message:  req.Message,
		ImageURL: req.ImageURL,
		IsActive: true,
	}
	if testimonial.Role == "" {
		testimonial.Role = "student"
	}
	if req.IsActive != nil {
		testimonial.IsActive = *req.IsActive
	}

	if err := h.db.Create(&testimonial).Error; err != nil {
		return response.InternalServerError(c, "Failed to create testimonial")
	}

	return response.Created(c, testimonial)
}

// UpdateTestimonial handles PUT /api/v1/testimonials/:id
func (h *TestimonialHandler) UpdateTestimonial(c *fiber.Ctx) error {
	var req UpdateTestimonialRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	var testimonial model.Testimonial
	if err := h.db.First(&testimonial, c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Testimonial not found")
		}
		return response.InternalServerError(c, "Failed to fetch testimonial")
	}

	if req.Name != nil {
		testimonial.Name = validation.SanitizeString(*req.Name)
	}
	if req.Role != nil {
		testimonial.Role = *req.Role
	}
	if req.Course != nil {
		testimonial.Course = *req.Course
	}
	if req.Rating != nil {
		testimonial.Rating = *req.Rating
	}
	if req.Message != nil {
		testimonial.Message = *req.Message
	}
	if req.ImageURL != nil {
		testimonial.ImageURL = *req.ImageURL
	}
	if req.IsActive != nil {
		testimonial.IsActive = *req.IsActive
	}

	if err := h.db.Save(&testimonial).Error; err != nil {
		return response.InternalServerError(c, "Failed to update testimonial")
	}

	return response.SuccessWithMessage(c, "Testimonial updated successfully", testimonial)
}

// DeleteTestimonial handles DELETE /api/v1/testimonials/:id
func (h *TestimonialHandler) DeleteTestimonial(c *fiber.Ctx) error {
	var testimonial model.Testimonial
	if err := h.db.First(&testimonial, c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Testimonial not found")
		}
		return response.InternalServerError(c, "Failed to fetch testimonial")
	}

	if err := h.db.Delete(&testimonial).Error; err != nil {
		return response.InternalServerError(c, "Failed to delete testimonial")
	}

	return response.SuccessWithMessage(c, "Testimonial deleted successfully", nil)
}
