package branch

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sankalp-academy/site-api/model"
	"github.com/sankalp-academy/site-api/utils/response"
	"github.com/sankalp-academy/site-api/utils/slug"
	"github.com/sankalp-academy/site-api/utils/validation"
	"gorm.io/gorm"
)

// BranchHandler handles branch campus requests
type BranchHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewBranchHandler creates a new branch handler
func NewBranchHandler(db *gorm.DB) *BranchHandler {
	return &BranchHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateBranchRequest represents the request body for creating a branch
type CreateBranchRequest struct {
	Name            string           `json:"name" validate:"required,min=2,max=255"`
	Slug            string           `json:"slug" validate:"required"`
	Address         string           `json:"address" validate:"omitempty,max=1000"`
	City            string           `json:"city" validate:"omitempty,max=100"`
	Phone           string           `json:"phone" validate:"omitempty,max=20"`
	Email           string           `json:"email" validate:"omitempty,email"`
	Latitude        *float64         `json:"latitude"`
	Longitude       *float64         `json:"longitude"`
	MapEmbedURL     string           `json:"map_embed_url" validate:"omitempty,max=2048"`
	Facilities      model.StringList `json:"facilities"`
	IsHeadOffice    *bool            `json:"is_head_office"`
	MainImageURL    string           `json:"main_image_url" validate:"omitempty,max=2048"`
	About           string           `json:"about"`
	EstablishedYear int              `json:"established_year" validate:"omitempty,gte=1900,lte=2100"`
	StudentCount    int              `json:"student_count" validate:"omitempty,gte=0"`
	FacultyCount    int              `json:"faculty_count" validate:"omitempty,gte=0"`
	Achievements    model.StringList `json:"achievements"`
	GalleryImages   model.StringList `json:"gallery_images"`
	Timing          string           `json:"timing" validate:"omitempty,max=255"`
}

// UpdateBranchRequest admits partial field sets
type UpdateBranchRequest struct {
	Name            *string           `json:"name" validate:"omitempty,min=2,max=255"`
	Slug            *string           `json:"slug"`
	Address         *string           `json:"address" validate:"omitempty,max=1000"`
	City            *string           `json:"city" validate:"omitempty,max=100"`
	Phone           *string           `json:"phone" validate:"omitempty,max=20"`
	Email           *string           `json:"email" validate:"omitempty,email"`
	Latitude        *float64          `json:"latitude"`
	Longitude       *float64          `json:"longitude"`
	MapEmbedURL     *string           `json:"map_embed_url" validate:"omitempty,max=2048"`
	Facilities      *model.StringList `json:"facilities"`
	IsHeadOffice    *bool             `json:"is_head_office"`
	MainImageURL    *string           `json:"main_image_url" validate:"omitempty,max=2048"`
	About           *string           `json:"about"`
	EstablishedYear *int              `json:"established_year" validate:"omitempty,gte=1900,lte=2100"`
	StudentCount    *int              `json:"student_count" validate:"omitempty,gte=0"`
	FacultyCount    *int              `json:"faculty_count" validate:"omitempty,gte=0"`
	Achievements    *model.StringList `json:"achievements"`
	GalleryImages   *model.StringList `json:"gallery_images"`
	Timing          *string           `json:"timing" validate:"omitempty,max=255"`
}

// ListBranches handles GET /api/v1/branches
func (h *BranchHandler) ListBranches(c *fiber.Ctx) error {
	query := h.db.Model(&model.Branch{})

	if city := c.Query("city"); city != "" {
		query = query.Where("city = ?", city)
	}

	limit, _ := strconv.Atoi(c.Query("limit", "0"))
	if limit > 0 {
		query = query.Limit(limit)
	}

	var branches []model.Branch
	if err := query.Order("is_head_office DESC, created_at ASC").Find(&branches).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch branches")
	}

	return response.Success(c, branches)
}

// GetBranch handles GET /api/v1/branches/:id — accepts a numeric id or a slug
func (h *BranchHandler) GetBranch(c *fiber.Ctx) error {
	param := c.Params("id")

	var branch model.Branch
	var err error
	if _, numErr := strconv.Atoi(param); numErr == nil {
		err = h.db.Preload("Courses.Course").First(&branch, param).Error
	} else {
		err = h.db.Preload("Courses.Course").Where("slug = ?", param).First(&branch).Error
	}
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Branch not found")
		}
		return response.InternalServerError(c, "Failed to fetch branch")
	}

	return response.Success(c, branch)
}

// CreateBranch handles POST /api/v1/branches
func (h *BranchHandler) CreateBranch(c *fiber.Ctx) error {
	var req CreateBranchRequest
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

	var existing model.Branch
	if err := h.db.Where("slug = ?", req.Slug).First(&existing).Error; err == nil {
		return response.Conflict(c, "Branch with this slug already exists")
	}

	branch := model.Branch{
		Name:            req.Name,
		Slug:            req.Slug,
		Address:         req.Address,
		City:            req.City,
		Phone:           req.Phone,
		Email:           req.Email,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		MapEmbedURL:     req.MapEmbedURL,
		Facilities:      req.Facilities,
		MainImageURL:    req.MainImageURL,
		About:           req.About,
		EstablishedYear: req.EstablishedYear,
		StudentCount:    req.StudentCount,
		FacultyCount:    req.FacultyCount,
		Achievements:    req.Achievements,
		GalleryImages:   req.GalleryImages,
		Timing:          req.Timing,
	}
	if req.IsHeadOffice != nil {
		branch.IsHeadOffice = *req.IsHeadOffice
	}

	if err := h.db.Create(&branch).Error; err != nil {
		return response.DatabaseError(c, err, "", "Branch with this slug already exists")
	}

	return response.Created(c, branch)
}

// UpdateBranch handles PUT /api/v1/branches/:id
func (h *BranchHandler) UpdateBranch(c *fiber.Ctx) error {
	id := c.Params("id")

	var req UpdateBranchRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	var branch model.Branch
	if err := h.db.First(&branch, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Branch not found")
		}
		return response.InternalServerError(c, "Failed to fetch branch")
	}

	if req.Name != nil {
		branch.Name = validation.SanitizeString(*req.Name)
	}
	if req.Slug != nil && *req.Slug != branch.Slug {
		if !slug.IsValid(*req.Slug) {
			return response.BadRequest(c, "Slug must be lowercase letters, numbers and hyphens")
		}
		var existing model.Branch
		if err := h.db.Where("slug = ? AND id != ?", *req.Slug, id).First(&existing).Error; err == nil {
			return response.Conflict(c, "Branch with this slug already exists")
		}
		branch.Slug = *req.Slug
	}
	if req.Address != nil {
		branch.Address = *req.Address
	}
	if req.City != nil {
		branch.City = *req.City
	}
	if req.Phone != nil {
		branch.Phone = *req.Phone
	}
	if req.Email != nil {
		branch.Email = *req.Email
	}
	if req.Latitude != nil {
		branch.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		branch.Longitude = req.Longitude
	}
	if req.MapEmbedURL != nil {
		branch.MapEmbedURL = *req.MapEmbedURL
	}
	if req.Facilities != nil {
		branch.Facilities = *req.Facilities
	}
	if req.IsHeadOffice != nil {
		branch.IsHeadOffice = *req.IsHeadOffice
	}
	if req.MainImageURL != nil {
		branch.MainImageURL = *req.MainImageURL
	}
	if req.About != nil {
		branch.About = *req.About
	}
	if req.EstablishedYear != nil {
		branch.EstablishedYear = *req.EstablishedYear
	}
	if req.StudentCount != nil {
		branch.StudentCount = *req.StudentCount
	}
	if req.FacultyCount != nil {
		branch.FacultyCount = *req.FacultyCount
	}
	if req.Achievements != nil {
		branch.Achievements = *req.Achievements
	}
	if req.GalleryImages != nil {
		branch.GalleryImages = *req.GalleryImages
	}
	if req.Timing != nil {
		branch.Timing = *req.Timing
	}

	if err := h.db.Save(&branch).Error; err != nil {
		return response.DatabaseError(c, err, "Branch not found", "Branch with this slug already exists")
	}

	return response.SuccessWithMessage(c, "Branch updated successfully", branch)
}

// DeleteBranch handles DELETE /api/v1/branches/:id — hard delete
func (h *BranchHandler) DeleteBranch(c *fiber.Ctx) error {
	id := c.Params("id")

	var branch model.Branch
	if err := h.db.First(&branch, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Branch not found")
		}
		return response.InternalServerError(c, "Failed to fetch branch")
	}

	if err := h.db.Delete(&branch).Error; err != nil {
		return response.InternalServerError(c, "Failed to delete branch")
	}

	return response.SuccessWithMessage(c, "Branch deleted successfully", nil)
}

// LinkCourse handles POST /api/v1/branches/:id/courses/:courseId (admin).
// Marks a course as offered at this branch.
func (h *BranchHandler) LinkCourse(c *fiber.Ctx) error {
	branchID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid branch id")
	}
	courseID, err := strconv.Atoi(c.Params("courseId"))
	if err != nil {
		return response.BadRequest(c, "Invalid course id")
	}

	var branch model.Branch
	if err := h.db.First(&branch, branchID).Error; err != nil {
		return response.NotFound(c, "Branch not found")
	}
	var course model.Course
	if err := h.db.First(&course, courseID).Error; err != nil {
		return response.NotFound(c, "Course not found")
	}

	link := model.BranchCourse{BranchID: uint(branchID), CourseID: uint(courseID)}
	if err := h.db.Create(&link).Error; err != nil {
		return response.DatabaseError(c, err, "", "Course is already offered at this branch")
	}

	return response.Created(c, link)
}

// UnlinkCourse handles DELETE /api/v1/branches/:id/courses/:courseId (admin)
func (h *BranchHandler) UnlinkCourse(c *fiber.Ctx) error {
	result := h.db.Where("branch_id = ? AND course_id = ?", c.Params("id"), c.Params("courseId")).
		Delete(&model.BranchCourse{})
	if result.Error != nil {
		return response.InternalServerError(c, "Failed to unlink course")
	}
	if result.RowsAffected == 0 {
		return response.NotFound(c, "Course is not offered at this branch")
	}

	return response.SuccessWithMessage(c, "Course unlinked successfully", nil)
}
