package categories

import (
	"context"

	"github.com/piresc/spendly/internal/pkg/models"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/spendly/services/categories CategoryRepo

// CategoryRepo defines category persistence. Every method is scoped to the
// owning user.
type CategoryRepo interface {
	ListByUser(ctx context.Context, userID int64) ([]*models.Category, error)
	GetByID(ctx context.Context, userID, categoryID int64) (*models.Category, error)
	NameExists(ctx context.Context, userID int64, name string, excludeID int64) (bool, error)
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, userID, categoryID int64) error
	SetBalance(ctx context.Context, userID, categoryID int64, balance decimal.Decimal) error
	GetSalary(ctx context.Context, userID int64) (decimal.Decimal, error)

	// WithinTx runs fn against a repository bound to one database
	// transaction, committing only when fn returns nil
	WithinTx(ctx context.Context, fn func(repo CategoryRepo) error) error
}
