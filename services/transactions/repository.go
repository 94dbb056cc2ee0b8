package transactions

import (
	"context"

	"github.com/piresc/spendly/internal/pkg/models"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/spendly/services/transactions TransactionRepo

// TransactionRepo defines transaction persistence and the category balance
// writes a payment needs
type TransactionRepo interface {
	ListByUser(ctx context.Context, userID int64, limit int) ([]*models.Transaction, error)
	GetByID(ctx context.Context, userID, id int64) (*models.Transaction, error)
	Create(ctx context.Context, tx *models.Transaction) error
	GetCategory(ctx context.Context, userID, categoryID int64) (*models.Category, error)

	// CompareAndSetStatus moves the transaction from one status to another
	// and reports whether this call made the change
	CompareAndSetStatus(ctx context.Context, userID, id int64, from, to models.TransactionStatus) (bool, error)
	DebitCategory(ctx context.Context, userID, categoryID int64, amount decimal.Decimal) error

	WithinTx(ctx context.Context, fn func(repo TransactionRepo) error) error
}
