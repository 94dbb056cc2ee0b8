package transactions

import (
	"context"

	"github.com/piresc/spendly/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/spendly/services/transactions TransactionUC

// TransactionUC validates payments and drives a transaction from pending to
// its final status
type TransactionUC interface {
	ListTransactions(ctx context.Context, userID int64) ([]*models.Transaction, error)
	GetTransaction(ctx context.Context, userID, id int64) (*models.Transaction, error)

	// ValidatePayment checks req against the user's categories and returns
	// the category it would be charged to
	ValidatePayment(ctx context.Context, userID int64, req *models.PaymentRequest) (*models.Category, error)
	InitiatePayment(ctx context.Context, userID int64, req *models.PaymentRequest) (*models.PaymentIntent, error)
	FinalizeTransaction(ctx context.Context, userID, id int64, status models.TransactionStatus) (*models.Transaction, error)
}
