package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/spendly/services/categories/handler/http"
)

// Handler registers the category routes
type Handler struct {
	categoryHandler *http.CategoryHandler
}

// NewHandler creates the category route handler
func NewHandler(categoryHandler *http.CategoryHandler) *Handler {
	return &Handler{
		categoryHandler: categoryHandler,
	}
}

// RegisterRoutes mounts the category routes under api behind auth
func (h *Handler) RegisterRoutes(api *echo.Group, auth echo.MiddlewareFunc) {
	group := api.Group("/categories", auth)
	group.GET("", h.categoryHandler.GetCategories)
	group.POST("", h.categoryHandler.CreateCategory)
	group.POST("/bulk", h.categoryHandler.BulkCreateCategories)
	group.POST("/recalculate", h.categoryHandler.RecalculateBalances)
	group.PUT("/:id", h.categoryHandler.UpdateCategory)
	group.DELETE("/:id", h.categoryHandler.DeleteCategory)
}
