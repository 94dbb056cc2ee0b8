package gateway

import (
	"context"

	"github.com/piresc/spendly/internal/pkg/constants"
	"github.com/piresc/spendly/internal/pkg/models"
	natspkg "github.com/piresc/spendly/internal/pkg/nats"
)

// TransactionGW publishes transaction events to NATS. With no client it
// drops events silently.
type TransactionGW struct {
	natsClient *natspkg.Client
}

// NewTransactionGW creates a new transaction gateway
func NewTransactionGW(client *natspkg.Client) *TransactionGW {
	return &TransactionGW{
		natsClient: client,
	}
}

// PublishTransactionInitiated publishes a transaction initiated event
func (g *TransactionGW) PublishTransactionInitiated(ctx context.Context, event *models.TransactionEvent) error {
	return g.publish(constants.SubjectTransactionInitiated, event)
}

// PublishTransactionFinalized publishes a transaction finalized event
func (g *TransactionGW) PublishTransactionFinalized(ctx context.Context, event *models.TransactionEvent) error {
	return g.publish(constants.SubjectTransactionFinalized, event)
}

func (g *TransactionGW) publish(subject string, event *models.TransactionEvent) error {
	if g.natsClient == nil {
		return nil
	}
	return g.natsClient.PublishJSON(subject, event)
}
