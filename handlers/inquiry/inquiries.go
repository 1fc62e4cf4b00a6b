package inquiry

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sankalp-academy/site-api/model"
	"github.com/sankalp-academy/site-api/utils/response"
	"github.com/sankalp-academy/site-api/utils/validation"
	"gorm.io/gorm"
)

// InquiryHandler handles contact-form submissions and their admin inbox
type InquiryHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewInquiryHandler creates a new inquiry handler
func NewInquiryHandler(db *gorm.DB) *InquiryHandler {
	return &InquiryHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// SubmitInquiryRequest represents a public contact-form submission
type SubmitInquiryRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=255"`
	Email   string `json:"email" validate:"required"`
	Phone   string `json:"phone" validate:"omitempty,max=20"`
	Branch  string `json:"branch" validate:"omitempty,max=100"`
	Subject string `json:"subject" validate:"required,min=2,max=255"`
	Message string `json:"message" validate:"required,min=2"`
}

// UpdateInquiryStatusRequest moves an inquiry through the admin inbox
type UpdateInquiryStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new read archived"`
}

// Submit handles POST /api/v1/contact (public)
func (h *InquiryHandler) Submit(c *fiber.Ctx) error {
	var req SubmitInquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
		return response.BadRequest(c, "Name, email, subject and message are required")
	}

	if !validation.ValidateEmail(req.Email) {
		return response.BadRequest(c, "Invalid email address")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	inquiry := model.Inquiry{
		Name:    validation.SanitizeString(req.Name),
		Email:   req.Email,
		Phone:   req.Phone,
		Branch:  req.Branch,
		Subject: validation.SanitizeString(req.Subject),
		Message: req.Message,
		Status:  model.InquiryStatusNew,
	}

	if err := h.db.Create(&inquiry).Error; err != nil {
		return response.InternalServerError(c, "Failed to submit inquiry")
	}

	return response.Created(c, inquiry)
}

// List handles GET /api/v1/contact (admin) with pagination
func (h *InquiryHandler) List(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))

	query := h.db.Model(&model.Inquiry{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return response.InternalServerError(c, "Failed to count inquiries")
	}

	pagination := response.CalculatePagination(page, limit, total)
	offset := (pagination.CurrentPage - 1) * pagination.PerPage

	var inquiries []model.Inquiry
	if err := query.Order("created_at DESC").
		Limit(pagination.PerPage).
		Offset(offset).
		Find(&inquiries).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch inquiries")
	}

	return response.Paginated(c, inquiries, pagination)
}

// UpdateStatus handles PUT /api/v1/contact/:id/status (admin)
func (h *InquiryHandler) UpdateStatus(c *fiber.Ctx) error {
	var req UpdateInquiryStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	var inquiry model.Inquiry
	if err := h.db.First(&inquiry, c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Inquiry not found")
		}
		return response.InternalServerError(c, "Failed to fetch inquiry")
	}

	inquiry.Status = req.Status
	if err := h.db.Save(&inquiry).Error; err != nil {
		return response.InternalServerError(c, "Failed to update inquiry")
	}

	return response.SuccessWithMessage(c, "Inquiry updated successfully", inquiry)
}
