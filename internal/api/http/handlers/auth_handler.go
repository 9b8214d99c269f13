package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/civic-voice/internal/api/dto"
	"github.com/spec-kit/civic-voice/internal/domain"
	"github.com/spec-kit/civic-voice/internal/service"
	apperrors "github.com/spec-kit/civic-voice/pkg/util"
)

// AuthHandler exposes registration and login endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.AadharCardNo == "" || req.PhoneNo == "" || req.Password == "" {
		return apperrors.NewValidationError("email, aadharCardNo, phoneNo, password required", nil)
	}

	user, token, exp, err := h.auth.Register(c.Context(), service.RegisterInput{
		Email:        req.Email,
		AadharCardNo: req.AadharCardNo,
		PhoneNo:      req.PhoneNo,
		Password:     req.Password,
		DisplayName:  req.DisplayName,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": dto.AuthData{
			Token:     token,
			ExpiresAt: exp,
			User:      userSummary(user, false),
		},
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}

	user, token, exp, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": dto.AuthData{
			Token:     token,
			ExpiresAt: exp,
			User:      userSummary(user, true),
		},
	})
}

func userSummary(user *domain.User, withStats bool) dto.UserSummary {
	summary := dto.UserSummary{
		UserID:      user.PublicID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		PhoneNo:     user.PhoneNo,
	}
	if withStats {
		summary.Stats = &dto.StatsResponse{
			TotalIssuesReported: user.Stats.TotalIssuesReported,
			TotalIssuesResolved: user.Stats.TotalIssuesResolved,
			Points:              user.Stats.Points,
		}
	}
	return summary
}
