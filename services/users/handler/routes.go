package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/spendly/services/users/handler/http"
)

// Handler registers the account routes
type Handler struct {
	authHandler *http.AuthHandler
	userHandler *http.UserHandler
}

// NewHandler creates the account route handler
func NewHandler(authHandler *http.AuthHandler, userHandler *http.UserHandler) *Handler {
	return &Handler{
		authHandler: authHandler,
		userHandler: userHandler,
	}
}

// RegisterRoutes mounts the public auth routes and the profile routes
// behind auth
func (h *Handler) RegisterRoutes(api *echo.Group, auth echo.MiddlewareFunc) {
	authGroup := api.Group("/auth")
	authGroup.POST("/register", h.authHandler.Register)
	authGroup.POST("/login", h.authHandler.Login)
	authGroup.POST("/send-otp", h.authHandler.SendOTP)
	authGroup.POST("/verify-otp", h.authHandler.VerifyOTP)
	authGroup.POST("/reset-password", h.authHandler.ResetPassword)

	userGroup := api.Group("/user", auth)
	userGroup.GET("/profile", h.userHandler.GetProfile)
	userGroup.PUT("/profile", h.userHandler.UpdateProfile)
	userGroup.PUT("/salary", h.userHandler.UpdateSalary)
}
