package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/piresc/spendly/internal/pkg/logger"
	"github.com/piresc/spendly/internal/pkg/models"
	"github.com/piresc/spendly/internal/utils"
	"github.com/piresc/spendly/services/categories"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ListCategories returns the user's categories, oldest first
func (uc *CategoryUC) ListCategories(ctx context.Context, userID int64) ([]*models.Category, error) {
	return uc.categoryRepo.ListByUser(ctx, userID)
}

// CreateCategory validates req and stores a new category with a zero balance
func (uc *CategoryUC) CreateCategory(ctx context.Context, userID int64, req *models.CategoryRequest) (*models.Category, error) {
	category, err := uc.categoryFromRequest(req)
	if err != nil {
		return nil, err
	}

	exists, err := uc.categoryRepo.NameExists(ctx, userID, category.Name, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.ErrDuplicateName
	}

	category.UserID = userID
	category.CurrentBalance = decimal.Zero
	category.CreatedAt = uc.now().UTC()

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	logger.Info("Category created",
		logger.Int64("user_id", userID),
		logger.Int64("category_id", category.ID),
		logger.String("name", category.Name))

	return category, nil
}

// BulkCreateCategories creates every category in reqs in one database
// transaction. Names the user already has, or that repeat earlier in the
// batch, are skipped. Only the categories actually created are returned.
func (uc *CategoryUC) BulkCreateCategories(ctx context.Context, userID int64, reqs []models.CategoryRequest) ([]*models.Category, error) {
	if len(reqs) == 0 {
		return nil, models.ErrEmptyBatch
	}

	pending := make([]*models.Category, 0, len(reqs))
	for i := range reqs {
		category, err := uc.categoryFromRequest(&reqs[i])
		if err != nil {
			return nil, err
		}
		pending = append(pending, category)
	}

	now := uc.now().UTC()
	var created []*models.Category

	err := uc.categoryRepo.WithinTx(ctx, func(repo categories.CategoryRepo) error {
		existing, err := repo.ListByUser(ctx, userID)
		if err != nil {
			return err
		}

		seen := make(map[string]bool, len(existing)+len(pending))
		for _, c := range existing {
			seen[models.CategoryNameKey(c.Name)] = true
		}

		created = make([]*models.Category, 0, len(pending))
		for _, c := range pending {
			key := models.CategoryNameKey(c.Name)
			if seen[key] {
				continue
			}
			seen[key] = true

			c.UserID = userID
			c.CurrentBalance = decimal.Zero
			c.CreatedAt = now
			if err := repo.Create(ctx, c); err != nil {
				return err
			}
			created = append(created, c)
		}
		return nil
	})
	if err != nil {
		logger.Error("Failed to create categories in bulk",
			logger.Int64("user_id", userID),
			logger.Int("requested", len(reqs)),
			logger.ErrorField(err))
		return nil, err
	}

	logger.Info("Bulk categories created",
		logger.Int64("user_id", userID),
		logger.Int("requested", len(reqs)),
		logger.Int("created", len(created)))

	return created, nil
}

// UpdateCategory applies req to a category owned by the user
func (uc *CategoryUC) UpdateCategory(ctx context.Context, userID, categoryID int64, req *models.CategoryRequest) (*models.Category, error) {
	changes, err := uc.categoryFromRequest(req)
	if err != nil {
		return nil, err
	}

	category, err := uc.categoryRepo.GetByID(ctx, userID, categoryID)
	if err != nil {
		return nil, err
	}

	exists, err := uc.categoryRepo.NameExists(ctx, userID, changes.Name, categoryID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.ErrDuplicateName
	}

	category.Name = changes.Name
	category.Percentage = changes.Percentage
	category.FixedAmount = changes.FixedAmount
	category.Color = changes.Color

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// DeleteCategory removes a category owned by the user
func (uc *CategoryUC) DeleteCategory(ctx context.Context, userID, categoryID int64) error {
	if err := uc.categoryRepo.Delete(ctx, userID, categoryID); err != nil {
		return err
	}

	logger.Info("Category deleted",
		logger.Int64("user_id", userID),
		logger.Int64("category_id", categoryID))
	return nil
}

// categoryFromRequest validates req and returns the category it describes
func (uc *CategoryUC) categoryFromRequest(req *models.CategoryRequest) (*models.Category, error) {
	name := utils.SanitizeString(req.Name)
	if name == "" {
		return nil, models.ErrInvalidCategoryName
	}
	if req.Percentage.IsNegative() || req.Percentage.GreaterThan(hundred) {
		return nil, models.ErrInvalidPercentage
	}
	if req.FixedAmount.IsNegative() {
		return nil, models.ErrInvalidAmount
	}
	if !req.Percentage.IsZero() && !req.FixedAmount.IsZero() {
		return nil, models.ErrConflictingAllocation
	}

	color := strings.TrimSpace(req.Color)
	if color == "" {
		color = uc.defaultColor()
	}

	return &models.Category{
		Name:        name,
		Percentage:  req.Percentage,
		FixedAmount: req.FixedAmount,
		Color:       color,
	}, nil
}

func (uc *CategoryUC) defaultColor() string {
	if uc.cfg != nil && uc.cfg.Budget.DefaultColor != "" {
		return uc.cfg.Budget.DefaultColor
	}
	return models.DefaultCategoryColor
}

// errorf keeps domain errors intact and wraps everything else
func errorf(msg string, err error) error {
	if _, ok := models.AsAppError(err); ok {
		return err
	}
	return fmt.Errorf("%s: %w", msg, err)
}
