package transactions

import (
	"context"

	"github.com/piresc/spendly/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/spendly/services/transactions TransactionGW

// TransactionGW defines the outbound transaction events
type TransactionGW interface {
	PublishTransactionInitiated(ctx context.Context, event *models.TransactionEvent) error
	PublishTransactionFinalized(ctx context.Context, event *models.TransactionEvent) error
}
