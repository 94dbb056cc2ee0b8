package gateway

import (
	"context"

	"github.com/piresc/spendly/internal/pkg/constants"
	"github.com/piresc/spendly/internal/pkg/models"
	natspkg "github.com/piresc/spendly/internal/pkg/nats"
)

// CategoryGW publishes allocation events to NATS. With no client it drops
// events silently.
type CategoryGW struct {
	natsClient *natspkg.Client
}

// NewCategoryGW creates a new category gateway
func NewCategoryGW(client *natspkg.Client) *CategoryGW {
	return &CategoryGW{
		natsClient: client,
	}
}

// PublishBalancesRecalculated publishes a balances recalculated event
func (g *CategoryGW) PublishBalancesRecalculated(ctx context.Context, event *models.BalancesRecalculatedEvent) error {
	if g.natsClient == nil {
		return nil
	}
	return g.natsClient.PublishJSON(constants.SubjectBalancesRecalculated, event)
}
