package usecase

import (
	"time"

	"github.com/piresc/spendly/internal/pkg/models"
	"github.com/piresc/spendly/services/transactions"
)

const defaultHistoryLimit = 50

type TransactionUC struct {
	transactionRepo transactions.TransactionRepo
	transactionGW   transactions.TransactionGW
	cfg             *models.Config
	now             func() time.Time
}

// NewTransactionUC creates a new transaction usecase instance
func NewTransactionUC(
	transactionRepo transactions.TransactionRepo,
	transactionGW transactions.TransactionGW,
	cfg *models.Config,
) *TransactionUC {
	return &TransactionUC{
		transactionRepo: transactionRepo,
		transactionGW:   transactionGW,
		cfg:             cfg,
		now:             time.Now,
	}
}

func (uc *TransactionUC) historyLimit() int {
	if uc.cfg.Budget.HistoryLimit > 0 {
		return uc.cfg.Budget.HistoryLimit
	}
	return defaultHistoryLimit
}
