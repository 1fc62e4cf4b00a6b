package course

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sankalp-academy/site-api/model"
	"github.com/sankalp-academy/site-api/utils/response"
	"github.com/sankalp-academy/site-api/utils/slug"
	"github.com/sankalp-academy/site-api/utils/validation"
	"gorm.io/gorm"
)

// CourseHandler handles course-related requests
type CourseHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(db *gorm.DB) *CourseHandler {
	return &CourseHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateCourseRequest represents the request body for creating a course
type CreateCourseRequest struct {
	Name        string           `json:"name" validate:"required,min=2,max=255"`
	Slug        string           `json:"slug" validate:"required"`
	Description string           `json:"description" validate:"omitempty,max=5000"`
	Category    string           `json:"category" validate:"omitempty,max=50"`
	Price       float64          `json:"price" validate:"omitempty,gte=0"`
	Duration    string           `json:"duration" validate:"omitempty,max=100"`
	Features    model.StringList `json:"features"`
	Syllabus    string           `json:"syllabus"`
	ImageURL    string           `json:"image_url" validate:"omitempty,max=2048"`
	IsActive    *bool            `json:"is_active"`
}

// UpdateCourseRequest admits partial field sets; every field is optional
type UpdateCourseRequest struct {
	Name        *string           `json:"name" validate:"omitempty,min=2,max=255"`
	Slug        *string           `json:"slug"`
	Description *string           `json:"description" validate:"omitempty,max=5000"`
	Category    *string           `json:"category" validate:"omitempty,max=50"`
	Price       *float64          `json:"price" validate:"omitempty,gte=0"`
	Duration    *string           `json:"duration" validate:"omitempty,max=100"`
	Features    *model.StringList `json:"features"`
	Syllabus    *string           `json:"syllabus"`
	ImageURL    *string           `json:"image_url" validate:"omitempty,max=2048"`
	IsActive    *bool             `json:"is_active"`
}

// ListCourses handles GET /api/v1/courses
func (h *CourseHandler) ListCourses(c *fiber.Ctx) error {
	query := h.db.Model(&model.Course{})

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

	var courses []model.Course
	if err := query.Order("created_at DESC").Find(&courses).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch courses")
	}

	return response.Success(c, courses)
}

// GetCourse handles GET /api/v1/courses/:id — accepts a numeric id or a slug
func (h *CourseHandler) GetCourse(c *fiber.Ctx) error {
	param := c.Params("id")

	var course model.Course
	var err error
	if _, numErr := strconv.Atoi(param); numErr == nil {
		err = h.db.First(&course, param).Error
	} else {
		err = h.db.Where("slug = ?", param).First(&course).Error
	}
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Course not found")
		}
		return response.InternalServerError(c, "Failed to fetch course")
	}

	return response.Success(c, course)
}

// CreateCourse handles POST /api/v1/courses
func (h *CourseHandler) CreateCourse(c *fiber.Ctx) error {
	var req CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	req.Name = validation.SanitizeString(req.Name)
	if !slug.IsValid(req.Slug) {
		return response.BadRequest(c, "Slug must be lowercase letters, numbers and hyphens")
	}

	// Friendly pre-check; the unique index is the real guarantee and a
	// racing insert still comes back as a 409.
	var existing model.Course
	if err := h.db.Where("slug = ?", req.Slug).First(&existing).Error; err == nil {
		return response.Conflict(c, "Course with this slug already exists")
	}

	course := model.Course{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Duration:    req.Duration,
		Features:    req.Features,
		Syllabus:    req.Syllabus,
		ImageURL:    req.ImageURL,
		IsActive:    true,
	}
	if req.IsActive != nil {
		course.IsActive = *req.IsActive
	}

	if err := h.db.Create(&course).Error; err != nil {
		return response.DatabaseError(c, err, "", "Course with this slug already exists")
	}

	return response.Created(c, course)
}

// UpdateCourse handles PUT /api/v1/courses/:id
func (h *CourseHandler) UpdateCourse(c *fiber.Ctx) error {
	id := c.Params("id")

	var req UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	var course model.Course
	if err := h.db.First(&course, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Course not found")
		}
		return response.InternalServerError(c, "Failed to fetch course")
	}

	if req.Name != nil {
		course.Name = validation.SanitizeString(*req.Name)
	}
	if req.Slug != nil && *req.Slug != course.Slug {
		if !slug.IsValid(*req.Slug) {
			return response.BadRequest(c, "Slug must be lowercase letters, numbers and hyphens")
		}
		var existing model.Course
		if err := h.db.Where("slug = ? AND id != ?", *req.Slug, id).First(&existing).Error; err == nil {
			return response.Conflict(c, "Course with this slug already exists")
		}
		course.Slug = *req.Slug
	}
	if req.Description != nil {
		course.Description = *req.Description
	}
	if req.Category != nil {
		course.Category = *req.Category
	}
	if req.Price != nil {
		course.Price = *req.Price
	}
	if req.Duration != nil {
		course.Duration = *req.Duration
	}
	if req.Features != nil {
		course.Features = *req.Features
	}
	if req.Syllabus != nil {
		course.Syllabus = *req.Syllabus
	}
	if req.ImageURL != nil {
		course.ImageURL = *req.ImageURL
	}
	if req.IsActive != nil {
		course.IsActive = *req.IsActive
	}

	if err := h.db.Save(&course).Error; err != nil {
		return response.DatabaseError(c, err, "Course not found", "Course with this slug already exists")
	}

	return response.SuccessWithMessage(c, "Course updated successfully", course)
}

// DeleteCourse handles DELETE /api/v1/courses/:id — hard delete
func (h *CourseHandler) DeleteCourse(c *fiber.Ctx) error {
	id := c.Params("id")

	var course model.Course
	if err := h.db.First(&course, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Course not found")
		}
		return response.InternalServerError(c, "Failed to fetch course")
	}

	if err := h.db.Delete(&course).Error; err != nil {
		return response.InternalServerError(c, "Failed to delete course")
	}

	return response.SuccessWithMessage(c, "Course deleted successfully", nil)
}
