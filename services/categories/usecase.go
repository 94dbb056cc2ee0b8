package categories

import (
	"context"

	"github.com/piresc/spendly/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/spendly/services/categories CategoryUC

// CategoryUC is the allocation engine: category management and salary driven
// balance recalculation
type CategoryUC interface {
	ListCategories(ctx context.Context, userID int64) ([]*models.Category, error)
	CreateCategory(ctx context.Context, userID int64, req *models.CategoryRequest) (*models.Category, error)
	BulkCreateCategories(ctx context.Context, userID int64, reqs []models.CategoryRequest) ([]*models.Category, error)
	UpdateCategory(ctx context.Context, userID, categoryID int64, req *models.CategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, userID, categoryID int64) error

	// RecalculateBalances resets every category balance from the user's salary
	RecalculateBalances(ctx context.Context, userID int64) ([]*models.Category, error)
}
