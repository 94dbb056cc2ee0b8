package categories

import (
	"context"

	"github.com/piresc/spendly/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/spendly/services/categories CategoryGW

// CategoryGW defines the outbound events of the allocation engine
type CategoryGW interface {
	PublishBalancesRecalculated(ctx context.Context, event *models.BalancesRecalculatedEvent) error
}
