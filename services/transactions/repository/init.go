package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/piresc/spendly/internal/pkg/models"
)

// TransactionRepo implements transactions.TransactionRepo over sqlx
type TransactionRepo struct {
	cfg *models.Config
	db  *sqlx.DB
	q   sqlx.ExtContext
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(
	cfg *models.Config,
	db *sqlx.DB,
) *TransactionRepo {
	return &TransactionRepo{
		cfg: cfg,
		db:  db,
		q:   db,
	}
}
