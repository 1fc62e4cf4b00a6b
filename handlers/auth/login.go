package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sankalp-academy/site-api/model"
	"github.com/sankalp-academy/site-api/utils/auth"
	"github.com/sankalp-academy/site-api/utils/middleware"
	"github.com/sankalp-academy/site-api/utils/response"
	"gorm.io/gorm"
)

// LoginRequest represents a login request for either principal type
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	UserType string `json:"user_type" validate:"omitempty,oneof=admin student"`
}

// LoginResponse represents a successful login response
type LoginResponse struct {
	User      UserResponse `json:"user"`
	Token     string       `json:"token"`
	ExpiresIn int          `json:"expires_in"` // in seconds
}

// Login authenticates an admin or student and issues a token.
// The same "Invalid email or password" message covers both an unknown
// email and a wrong password, so accounts cannot be enumerated.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Email == "" || req.Password == "" {
		return response.BadRequest(c, "Email and password are required")
	}

	if req.UserType == "" {
		req.UserType = "admin"
	}

	ip := c.IP()

	var user UserResponse
	var passwordHash, rollNo string

	switch req.UserType {
	case "student":
		var student model.Student
		if err := h.db.Where("email = ?", req.Email).First(&student).Error; err != nil {
			return h.failLogin(c, ip)
		}
		user = studentResponse(&student)
		passwordHash = student.PasswordHash
		rollNo = student.RollNo
	default:
		var admin model.Admin
		if err := h.db.Where("email = ?", req.Email).First(&admin).Error; err != nil {
			return h.failLogin(c, ip)
		}
		user = adminResponse(&admin)
		passwordHash = admin.PasswordHash
	}

	if err := auth.VerifyPassword(passwordHash, req.Password); err != nil {
		return h.failLogin(c, ip)
	}

	if h.bruteForceProtection != nil {
		h.bruteForceProtection.RecordSuccessfulAttempt(c, ip)
	}

	token, err := h.jwtManager.GenerateToken(user.ID, user.Email, user.Name, user.Role, rollNo)
	if err != nil {
		return response.InternalServerError(c, "Failed to generate token")
	}

	h.setAuthCookie(c, token)

	return response.Success(c, LoginResponse{
		User:      user,
		Token:     token,
		ExpiresIn: h.jwtManager.Expiry(),
	})
}

func (h *AuthHandler) failLogin(c *fiber.Ctx, ip string) error {
	if h.bruteForceProtection != nil {
		h.bruteForceProtection.RecordFailedAttempt(c, ip)
	}
	return response.Unauthorized(c, "Invalid email or password")
}

// setAuthCookie mirrors the token into an HttpOnly cookie for the
// admin dashboard; API clients keep using the bearer header.
func (h *AuthHandler) setAuthCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.AuthCookieName,
		Value:    token,
		Expires:  time.Now().Add(auth.DefaultExpiry),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
}

// Logout clears the auth cookie. Tokens themselves stay valid until
// expiry; there is no revocation list.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.AuthCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
	return response.SuccessWithMessage(c, "Logged out successfully", nil)
}

// Me returns the current principal; students include their enrollments
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		return response.Unauthorized(c, "")
	}

	if claims.Role == "student" {
		var student model.Student
		err := h.db.Preload("Enrollments.Course").Preload("Enrollments.Branch").
			First(&student, claims.UserID).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return response.Unauthorized(c, "Account no longer exists")
			}
			return response.InternalServerError(c, "")
		}
		return response.Success(c, fiber.Map{
			"user":        studentResponse(&student),
			"enrollments": student.Enrollments,
		})
	}

	var admin model.Admin
	if err := h.db.First(&admin, claims.UserID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.Unauthorized(c, "Account no longer exists")
		}
		return response.InternalServerError(c, "")
	}
	return response.Success(c, fiber.Map{"user": adminResponse(&admin)})
}
