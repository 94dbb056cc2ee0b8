package usecase

import (
	"context"
	"fmt"

	"github.com/piresc/spendly/internal/pkg/logger"
	"github.com/piresc/spendly/internal/pkg/models"
	"github.com/piresc/spendly/services/categories"
)

// RecalculateBalances sets every category balance to what its allocation
// rule grants from the current salary. All balances change together or not
// at all.
func (uc *CategoryUC) RecalculateBalances(ctx context.Context, userID int64) ([]*models.Category, error) {
	salary, err := uc.categoryRepo.GetSalary(ctx, userID)
	if err != nil {
		return nil, errorf("failed to load salary", err)
	}
	if !salary.IsPositive() {
		return nil, models.ErrNoSalarySet
	}

	var updated []*models.Category
	err = uc.categoryRepo.WithinTx(ctx, func(repo categories.CategoryRepo) error {
		list, err := repo.ListByUser(ctx, userID)
		if err != nil {
			return err
		}

		for _, category := range list {
			balance := category.Rule().Entitlement(salary)
			if err := repo.SetBalance(ctx, userID, category.ID, balance); err != nil {
				return fmt.Errorf("category %d: %w", category.ID, err)
			}
			category.CurrentBalance = balance
		}

		updated = list
		return nil
	})
	if err != nil {
		logger.Error("Failed to recalculate balances",
			logger.Int64("user_id", userID),
			logger.ErrorField(err))
		return nil, fmt.Errorf("%w: %v", models.ErrRecalculationFailed, err)
	}

	logger.Info("Category balances recalculated",
		logger.Int64("user_id", userID),
		logger.Int("categories", len(updated)))

	event := &models.BalancesRecalculatedEvent{
		UserID:     userID,
		Salary:     salary,
		Categories: len(updated),
		OccurredAt: uc.now().UTC(),
	}
	if err := uc.categoryGW.PublishBalancesRecalculated(ctx, event); err != nil {
		logger.Warn("Failed to publish balances recalculated event",
			logger.Int64("user_id", userID),
			logger.ErrorField(err))
	}

	return updated, nil
}
