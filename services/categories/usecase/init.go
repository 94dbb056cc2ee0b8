package usecase

import (
	"time"

	"github.com/piresc/spendly/internal/pkg/models"
	"github.com/piresc/spendly/services/categories"
)

type CategoryUC struct {
	categoryRepo categories.CategoryRepo
	categoryGW   categories.CategoryGW
	cfg          *models.Config
	now          func() time.Time
}

// NewCategoryUC creates a new category usecase instance
func NewCategoryUC(
	categoryRepo categories.CategoryRepo,
	categoryGW categories.CategoryGW,
	cfg *models.Config,
) *CategoryUC {
	return &CategoryUC{
		categoryRepo: categoryRepo,
		categoryGW:   categoryGW,
		cfg:          cfg,
		now:          time.Now,
	}
}
