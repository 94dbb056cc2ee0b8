package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/piresc/spendly/internal/pkg/models"
)

// CategoryRepo implements categories.CategoryRepo over sqlx. q is the
// database itself or, inside WithinTx, the open transaction.
type CategoryRepo struct {
	cfg *models.Config
	db  *sqlx.DB
	q   sqlx.ExtContext
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(
	cfg *models.Config,
	db *sqlx.DB,
) *CategoryRepo {
	return &CategoryRepo{
		cfg: cfg,
		db:  db,
		q:   db,
	}
}
