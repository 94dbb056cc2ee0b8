package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/spendly/internal/pkg/logger"
	"github.com/piresc/spendly/internal/pkg/models"
	"github.com/piresc/spendly/internal/utils"
	"github.com/piresc/spendly/services/users"
)

// AuthHandler handles sign-up, login and password reset
type AuthHandler struct {
	userUC users.UserUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(
	userUC users.UserUC,
) *AuthHandler {
	return &AuthHandler{
		userUC: userUC,
	}
}

// Register handles account creation
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for registration",
			logger.ErrorField(err),
			logger.String("endpoint", "Register"))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.userUC.Register(c.Request().Context(), &req)
	if err != nil {
		logger.Warn("Registration failed",
			logger.String("email", utils.MaskEmail(req.Email)),
			logger.ErrorField(err))
		return utils.DomainErrorResponse(c, err, "Failed to create user account")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "User registered successfully", resp)
}

// Login handles email and password sign-in
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.userUC.Login(c.Request().Context(), &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err, "Login failed")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// SendOTP mails a password reset code
func (h *AuthHandler) SendOTP(c echo.Context) error {
	var req models.SendOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Email == "" {
		return utils.BadRequestResponse(c, "Email is required")
	}

	if err := h.userUC.SendOTP(c.Request().Context(), req.Email); err != nil {
		return utils.DomainErrorResponse(c, err, "Failed to send OTP")
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP sent successfully to your email", nil)
}

// VerifyOTP checks a password reset code
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Email == "" || req.OTP == "" {
		return utils.BadRequestResponse(c, "Email and OTP are required")
	}

	if err := h.userUC.VerifyOTP(c.Request().Context(), req.Email, req.OTP); err != nil {
		return utils.DomainErrorResponse(c, err, "Failed to verify OTP")
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP verified successfully", nil)
}

// ResetPassword sets a new password after a verified OTP
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req models.ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Email == "" || req.NewPassword == "" {
		return utils.BadRequestResponse(c, "Email and new password are required")
	}

	if err := h.userUC.ResetPassword(c.Request().Context(), req.Email, req.NewPassword); err != nil {
		return utils.DomainErrorResponse(c, err, "Failed to reset password")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Password reset successfully", nil)
}
