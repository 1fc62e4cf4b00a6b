package enrollment

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sankalp-academy/site-api/model"
	"github.com/sankalp-academy/site-api/utils/response"
	"github.com/sankalp-academy/site-api/utils/validation"
	"gorm.io/gorm"
)

// EnrollmentHandler manages student/course/branch enrollments (admin)
type EnrollmentHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewEnrollmentHandler creates a new enrollment handler
func NewEnrollmentHandler(db *gorm.DB) *EnrollmentHandler {
	return &EnrollmentHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateEnrollmentRequest links a student to a course at a branch
type CreateEnrollmentRequest struct {
	StudentID uint `json:"student_id" validate:"required,min=1"`
	CourseID  uint `json:"course_id" validate:"required,min=1"`
	BranchID  uint `json:"branch_id" validate:"required,min=1"`
}

// List handles GET /api/v1/enrollments (admin) with pagination
func (h *EnrollmentHandler) List(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))

	query := h.db.Model(&model.Enrollment{})
	if courseID := c.Query("course_id"); courseID != "" {
		query = query.Where("course_id = ?", courseID)
	}
	if branchID := c.Query("branch_id"); branchID != "" {
		query = query.Where("branch_id = ?", branchID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return response.InternalServerError(c, "Failed to count enrollments")
	}

	pagination := response.CalculatePagination(page, limit, total)
	offset := (pagination.CurrentPage - 1) * pagination.PerPage

	var enrollments []model.Enrollment
	if err := query.Preload("Student").Preload("Course").Preload("Branch").
		Order("created_at DESC").
		Limit(pagination.PerPage).
		Offset(offset).
		Find(&enrollments).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch enrollments")
	}

	return response.Paginated(c, enrollments, pagination)
}

// Create handles POST /api/v1/enrollments (admin)
func (h *EnrollmentHandler) Create(c *fiber.Ctx) error {
	var req CreateEnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	// All three referenced rows must exist
	var student model.Student
	if err := h.db.First(&student, req.StudentID).Error; err != nil {
		return response.NotFound(c, "Student not found")
	}
	var course model.Course
	if err := h.db.First(&course, req.CourseID).Error; err != nil {
		return response.NotFound(c, "Course not found")
	}
	var branch model.Branch
	if err := h.db.First(&branch, req.BranchID).Error; err != nil {
		return response.NotFound(c, "Branch not found")
	}

	enrollment := model.Enrollment{
		StudentID: req.StudentID,
		CourseID:  req.CourseID,
		BranchID:  req.BranchID,
	}
	if err := h.db.Create(&enrollment).Error; err != nil {
		return response.InternalServerError(c, "Failed to create enrollment")
	}

	return response.Created(c, enrollment)
}

// Delete handles DELETE /api/v1/enrollments/:id (admin)
func (h *EnrollmentHandler) Delete(c *fiber.Ctx) error {
	var enrollment model.Enrollment
	if err := h.db.First(&enrollment, c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Enrollment not found")
		}
		return response.InternalServerError(c, "Failed to fetch enrollment")
	}

	if err := h.db.Delete(&enrollment).Error; err != nil {
		return response.InternalServerError(c, "Failed to delete enrollment")
	}

	return response.SuccessWithMessage(c, "Enrollment deleted successfully", nil)
}
