package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/piresc/spendly/internal/pkg/logger"
	"github.com/piresc/spendly/internal/pkg/middleware"
	"github.com/piresc/spendly/internal/pkg/models"
	"github.com/piresc/spendly/internal/utils"
	"github.com/piresc/spendly/services/categories"
)

// CategoryHandler handles HTTP requests for category operations
type CategoryHandler struct {
	categoryUC categories.CategoryUC
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(
	categoryUC categories.CategoryUC,
) *CategoryHandler {
	return &CategoryHandler{
		categoryUC: categoryUC,
	}
}

// GetCategories lists the caller's categories
func (h *CategoryHandler) GetCategories(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	list, err := h.categoryUC.ListCategories(c.Request().Context(), userID)
	if err != nil {
		logger.Error("Failed to fetch categories",
			logger.Int64("user_id", userID),
			logger.ErrorField(err))
		return utils.DomainErrorResponse(c, err, "Failed to fetch categories")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Categories retrieved successfully", map[string]interface{}{
		"categories": list,
	})
}

// CreateCategory handles category creation requests
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CategoryRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for category creation",
			logger.ErrorField(err),
			logger.String("endpoint", "CreateCategory"))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	category, err := h.categoryUC.CreateCategory(c.Request().Context(), userID, &req)
	if err != nil {
		logger.Warn("Failed to create category",
			logger.Int64("user_id", userID),
			logger.ErrorField(err))
		return utils.DomainErrorResponse(c, err, "Failed to create category")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Category created successfully", map[string]interface{}{
		"category": category,
	})
}

// BulkCreateCategories handles batch creation, used to apply a default budget plan
func (h *CategoryHandler) BulkCreateCategories(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.BulkCategoryRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for bulk category creation",
			logger.ErrorField(err),
			logger.String("endpoint", "BulkCreateCategories"))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	created, err := h.categoryUC.BulkCreateCategories(c.Request().Context(), userID, req.Categories)
	if err != nil {
		return utils.DomainErrorResponse(c, err, "Failed to create categories")
	}

	if len(created) == 0 {
		return utils.SuccessResponse(c, http.StatusOK, "All categories already exist", map[string]interface{}{
			"categories": created,
		})
	}

	return utils.SuccessResponse(c, http.StatusCreated, strconv.Itoa(len(created))+" categories created successfully", map[string]interface{}{
		"categories": created,
	})
}

// UpdateCategory handles category update requests
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	categoryID, err := parseID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid category ID")
	}

	var req models.CategoryRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	category, err := h.categoryUC.UpdateCategory(c.Request().Context(), userID, categoryID, &req)
	if err != nil {
		logger.Warn("Failed to update category",
			logger.Int64("user_id", userID),
			logger.Int64("category_id", categoryID),
			logger.ErrorField(err))
		return utils.DomainErrorResponse(c, err, "Failed to update category")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Category updated successfully", map[string]interface{}{
		"category": category,
	})
}

// DeleteCategory handles category deletion requests
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	categoryID, err := parseID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid category ID")
	}

	if err := h.categoryUC.DeleteCategory(c.Request().Context(), userID, categoryID); err != nil {
		return utils.DomainErrorResponse(c, err, "Failed to delete category")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Category deleted successfully", nil)
}

// RecalculateBalances resets all balances from the caller's salary
func (h *CategoryHandler) RecalculateBalances(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	list, err := h.categoryUC.RecalculateBalances(c.Request().Context(), userID)
	if err != nil {
		return utils.DomainErrorResponse(c, err, "Failed to recalculate balances")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Balances recalculated successfully", map[string]interface{}{
		"categories": list,
	})
}

func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.ErrBadRequest
	}
	return id, nil
}
