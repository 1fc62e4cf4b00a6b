package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sankalp-academy/site-api/model"
	"github.com/sankalp-academy/site-api/utils/auth"
	"github.com/sankalp-academy/site-api/utils/response"
	"github.com/sankalp-academy/site-api/utils/validation"
)

// RegisterRequest creates an admin or student account. Admin-only.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required,min=2,max=100"`
	UserType string `json:"user_type" validate:"required,oneof=admin student"`
	Phone    string `json:"phone" validate:"omitempty,max=20"`
	RollNo   string `json:"roll_no" validate:"omitempty,max=50"`
}

// Register creates a new principal account
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	req.Name = validation.SanitizeString(req.Name)

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	if req.UserType == "student" {
		if req.RollNo == "" {
			return response.BadRequest(c, "Roll number is required for students")
		}

		student := model.Student{
			Email:        req.Email,
			PasswordHash: passwordHash,
			Name:         req.Name,
			Phone:        req.Phone,
			RollNo:       req.RollNo,
			Role:         "student",
		}
		if err := h.db.Create(&student).Error; err != nil {
			return response.DatabaseError(c, err, "", "An account with this email or roll number already exists")
		}
		return response.Created(c, studentResponse(&student))
	}

	admin := model.Admin{
		Email:        req.Email,
		PasswordHash: passwordHash,
		Name:         req.Name,
		Role:         "admin",
	}
	if err := h.db.Create(&admin).Error; err != nil {
		return response.DatabaseError(c, err, "", "An account with this email already exists")
	}
	return response.Created(c, adminResponse(&admin))
}
