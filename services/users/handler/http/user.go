package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/spendly/internal/pkg/logger"
	"github.com/piresc/spendly/internal/pkg/middleware"
	"github.com/piresc/spendly/internal/pkg/models"
	"github.com/piresc/spendly/internal/utils"
	"github.com/piresc/spendly/services/users"
)

// UserHandler handles HTTP requests for the signed-in user's profile
type UserHandler struct {
	userUC users.UserUC
}

// NewUserHandler creates a new user handler
func NewUserHandler(
	userUC users.UserUC,
) *UserHandler {
	return &UserHandler{
		userUC: userUC,
	}
}

// GetProfile returns the caller's account
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	user, err := h.userUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return utils.DomainErrorResponse(c, err, "Failed to fetch user profile")
	}

	return utils.SuccessResponse(c, http.StatusOK, "User profile retrieved successfully", map[string]interface{}{
		"user": user,
	})
}

// UpdateProfile renames the caller
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.userUC.UpdateProfile(c.Request().Context(), userID, req.Name)
	if err != nil {
		return utils.DomainErrorResponse(c, err, "Failed to update profile")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", map[string]interface{}{
		"user": user,
	})
}

// UpdateSalary sets the caller's monthly salary
func (h *UserHandler) UpdateSalary(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.UpdateSalaryRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for salary update",
			logger.ErrorField(err),
			logger.String("endpoint", "UpdateSalary"))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.userUC.UpdateSalary(c.Request().Context(), userID, req.Salary)
	if err != nil {
		return utils.DomainErrorResponse(c, err, "Failed to update salary")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Salary updated successfully", map[string]interface{}{
		"user":   user,
		"salary": user.Salary,
	})
}
