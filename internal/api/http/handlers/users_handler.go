package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/civic-voice/internal/api/dto"
	"github.com/spec-kit/civic-voice/internal/auth"
	"github.com/spec-kit/civic-voice/internal/domain"
	"github.com/spec-kit/civic-voice/internal/service"
	apperrors "github.com/spec-kit/civic-voice/pkg/util"
)

// UsersHandler serves profile and location endpoints.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(userService *service.UserService) *UsersHandler {
	return &UsersHandler{users: userService}
}

// Profile handles GET /api/users/profile.
func (h *UsersHandler) Profile(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}

	user, err := h.users.Profile(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"data": profileResponse(user)})
}

// UpdateLocation handles PUT /api/users/location.
func (h *UsersHandler) UpdateLocation(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}

	var req dto.UpdateLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	loc := domain.UserLocation{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Address:   req.Address,
		City:      req.City,
		State:     req.State,
	}
	if err := h.users.UpdateLocation(c.Context(), principal.User.ID, loc); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"data": fiber.Map{"message": "location updated"}})
}

func profileResponse(user *domain.User) dto.ProfileResponse {
	return dto.ProfileResponse{
		UserID:       user.PublicID,
		Email:        user.Email,
		AadharCardNo: user.AadharCardNo,
		PhoneNo:      user.PhoneNo,
		DisplayName:  user.DisplayName,
		Location: dto.LocationResponse{
			Latitude:  user.Location.Latitude,
			Longitude: user.Location.Longitude,
			Address:   user.Location.Address,
			City:      user.Location.City,
			State:     user.Location.State,
		},
		Stats: dto.StatsResponse{
			TotalIssuesReported: user.Stats.TotalIssuesReported,
			TotalIssuesResolved: user.Stats.TotalIssuesResolved,
			Points:              user.Stats.Points,
		},
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
