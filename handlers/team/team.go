package team

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sankalp-academy/site-api/model"
	"github.com/sankalp-academy/site-api/utils/response"
	"github.com/sankalp-academy/site-api/utils/validation"
	"gorm.io/gorm"
)

// TeamHandler handles team member profile requests
type TeamHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(db *gorm.DB) *TeamHandler {
	return &TeamHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateTeamMemberRequest represents the request body for creating a profile
type CreateTeamMemberRequest struct {
	Name         string `json:"name" validate:"required,min=2,max=255"`
	Role         string `json:"role" validate:"required,max=255"`
	Subtitle     string `json:"subtitle" validate:"omitempty,max=255"`
	ImageURL     string `json:"image_url" validate:"omitempty,max=2048"`
	Type         string `json:"type" validate:"omitempty,oneof=principal trustee"`
	DisplayOrder int    `json:"display_order"`
	IsActive     *bool  `json:"is_active"`
}

// UpdateTeamMemberRequest admits partial field sets
type UpdateTeamMemberRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=2,max=255"`
	Role         *string `json:"role" validate:"omitempty,max=255"`
	Subtitle     *string `json:"subtitle" validate:"omitempty,max=255"`
	ImageURL     *string `json:"image_url" validate:"omitempty,max=2048"`
	Type         *string `json:"type" validate:"omitempty,oneof=principal trustee"`
	DisplayOrder *int    `json:"display_order"`
	IsActive     *bool   `json:"is_active"`
}

// ListMembers handles GET /api/v1/team
func (h *TeamHandler) ListMembers(c *fiber.Ctx) error {
	query := h.db.Model(&model.TeamMember{})

	if memberType := c.Query("type"); memberType != "" {
		query = query.Where("type = ?", memberType)
	}
	if c.Query("active") == "true" {
		query = query.Where("is_active = ?", true)
	}

	limit, _ := strconv.Atoi(c.Query("limit", "0"))
	if limit > 0 {
		query = query.Limit(limit)
	}

	var members []model.TeamMember
	if err := query.Order("display_order ASC").Find(&members).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch team members")
	}

	return response.Success(c, members)
}

// GetMember handles GET /api/v1/team/:id
func (h *TeamHandler) GetMember(c *fiber.Ctx) error {
	var member model.TeamMember
	if err := h.db.First(&member, c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Team member not found")
		}
		return response.InternalServerError(c, "Failed to fetch team member")
	}
	return response.Success(c, member)
}

// CreateMember handles POST /api/v1/team
func (h *TeamHandler) CreateMember(c *fiber.Ctx) error {
	var req CreateTeamMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	member := model.TeamMember{
		Name:         validation.SanitizeString(req.Name),
		Role:         validation.SanitizeString(req.Role),
		Subtitle:     req.Subtitle,
		ImageURL:     req.ImageURL,
		Type:         req.Type,
		DisplayOrder: req.DisplayOrder,
		IsActive:     true,
	}
	if member.Type == "" {
		member.Type = "principal"
	}
	if req.IsActive != nil {
		member.IsActive = *req.IsActive
	}

	if err := h.db.Create(&member).Error; err != nil {
		return response.InternalServerError(c, "Failed to create team member")
	}

	return response.Created(c, member)
}

// UpdateMember handles PUT /api/v1/team/:id
func (h *TeamHandler) UpdateMember(c *fiber.Ctx) error {
	var req UpdateTeamMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	var member model.TeamMember
	if err := h.db.First(&member, c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Team member not found")
		}
		return response.InternalServerError(c, "Failed to fetch team member")
	}

	if req.Name != nil {
		member.Name = validation.SanitizeString(*req.Name)
	}
	if req.Role != nil {
		member.Role = validation.SanitizeString(*req.Role)
	}
	if req.Subtitle != nil {
		member.Subtitle = *req.Subtitle
	}
	if req.ImageURL != nil {
		member.ImageURL = *req.ImageURL
	}
	if req.Type != nil {
		member.Type = *req.Type
	}
	if req.DisplayOrder != nil {
		member.DisplayOrder = *req.DisplayOrder
	}
	if req.IsActive != nil {
		member.IsActive = *req.IsActive
	}

	if err := h.db.Save(&member).Error; err != nil {
		return response.InternalServerError(c, "Failed to update team member")
	}

	return response.SuccessWithMessage(c, "Team member updated successfully", member)
}

// DeleteMember handles DELETE /api/v1/team/:id
func (h *TeamHandler) DeleteMember(c *fiber.Ctx) error {
	var member model.TeamMember
	if err := h.db.First(&member, c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Team member not found")
		}
		return response.InternalServerError(c, "Failed to fetch team member")
	}

	if err := h.db.Delete(&member).Error; err != nil {
		return response.InternalServerError(c, "Failed to delete team member")
	}

	return response.SuccessWithMessage(c, "Team member deleted successfully", nil)
}
