package usecase

import (
	"context"
	"errors"
	"regexp"

	"github.com/piresc/spendly/internal/pkg/models"
)

var upiPattern = regexp.MustCompile(`^[\w.-]+@[\w.-]+$`)

// amountPlaces is the precision money is stored with
const amountPlaces = 2

// ValidatePayment runs every payment check and reports all violations
// together. The category is returned when it exists, even if the payment
// is rejected.
func (uc *TransactionUC) ValidatePayment(ctx context.Context, userID int64, req *models.PaymentRequest) (*models.Category, error) {
	var violations []*models.AppError

	// 0.001 would be stored as 0.00
	if !req.Amount.IsPositive() || !req.Amount.Equal(req.Amount.Round(amountPlaces)) {
		violations = append(violations, models.ErrInvalidAmount)
	}

	var category *models.Category
	if req.CategoryID > 0 {
		found, err := uc.transactionRepo.GetCategory(ctx, userID, req.CategoryID)
		switch {
		case err == nil:
			category = found
		case errors.Is(err, models.ErrCategoryNotFound):
		default:
			return nil, err
		}
	}
	if category == nil {
		violations = append(violations, models.ErrCategoryNotFound)
	}

	if !upiPattern.MatchString(req.MerchantUPI) {
		violations = append(violations, models.ErrInvalidUpiFormat)
	}

	if category != nil && req.Amount.GreaterThan(category.CurrentBalance) {
		violations = append(violations, models.NewInsufficientBalanceError(category.CurrentBalance))
	}

	if len(violations) > 0 {
		return category, &models.ValidationError{Violations: violations}
	}
	return category, nil
}
