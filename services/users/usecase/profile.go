package usecase

import (
	"context"

	"github.com/piresc/spendly/internal/pkg/logger"
	"github.com/piresc/spendly/internal/pkg/models"
	"github.com/piresc/spendly/internal/utils"
	"github.com/shopspring/decimal"
)

// GetProfile returns the account of userID
func (u *UserUC) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	return u.userRepo.GetUserByID(ctx, userID)
}

// UpdateProfile renames the account
func (u *UserUC) UpdateProfile(ctx context.Context, userID int64, name string) (*models.User, error) {
	name = utils.SanitizeString(name)
	if name == "" {
		return nil, models.ErrInvalidName
	}

	if err := u.userRepo.UpdateName(ctx, userID, name); err != nil {
		return nil, err
	}

	logger.Info("Profile updated",
		logger.Int64("user_id", userID))

	return u.userRepo.GetUserByID(ctx, userID)
}

// UpdateSalary sets the monthly salary. Category balances keep their values
// until the next recalculation.
func (u *UserUC) UpdateSalary(ctx context.Context, userID int64, salary decimal.Decimal) (*models.User, error) {
	if !salary.IsPositive() {
		return nil, models.ErrInvalidSalary
	}

	if err := u.userRepo.UpdateSalary(ctx, userID, salary); err != nil {
		return nil, err
	}

	logger.Info("Salary updated",
		logger.Int64("user_id", userID),
		logger.Stringer("salary", salary))

	return u.userRepo.GetUserByID(ctx, userID)
}
