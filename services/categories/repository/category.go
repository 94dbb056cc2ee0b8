package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/spendly/internal/pkg/database"
	"github.com/piresc/spendly/internal/pkg/models"
	"github.com/piresc/spendly/services/categories"
	"github.com/shopspring/decimal"
)

const categoryColumns = `id, user_id, name, percentage, fixed_amount, current_balance, color, created_at`

// ListByUser returns the user's categories, oldest first
func (r *CategoryRepo) ListByUser(ctx context.Context, userID int64) ([]*models.Category, error) {
	query := r.q.Rebind(`
		SELECT ` + categoryColumns + `
		FROM categories
		WHERE user_id = ?
		ORDER BY created_at ASC, id ASC
	`)

	result := make([]*models.Category, 0)
	if err := sqlx.SelectContext(ctx, r.q, &result, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return result, nil
}

// GetByID returns a category owned by userID
func (r *CategoryRepo) GetByID(ctx context.Context, userID, categoryID int64) (*models.Category, error) {
	query := r.q.Rebind(`
		SELECT ` + categoryColumns + `
		FROM categories
		WHERE id = ? AND user_id = ?
	`)

	var category models.Category
	if err := sqlx.GetContext(ctx, r.q, &category, query, categoryID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &category, nil
}

// NameExists reports whether the user already has a category called name,
// ignoring case. excludeID skips one category so an update can keep its name.
func (r *CategoryRepo) NameExists(ctx context.Context, userID int64, name string, excludeID int64) (bool, error) {
	query := r.q.Rebind(`
		SELECT COUNT(1)
		FROM categories
		WHERE user_id = ? AND name_key = ? AND id <> ?
	`)

	var count int
	if err := sqlx.GetContext(ctx, r.q, &count, query, userID, models.CategoryNameKey(name), excludeID); err != nil {
		return false, fmt.Errorf("failed to check category name: %w", err)
	}
	return count > 0, nil
}

// Create inserts category and sets its ID
func (r *CategoryRepo) Create(ctx context.Context, category *models.Category) error {
	query := r.q.Rebind(`
		INSERT INTO categories (user_id, name, name_key, percentage, fixed_amount, current_balance, color, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`)

	err := r.q.QueryRowxContext(ctx, query,
		category.UserID,
		category.Name,
		models.CategoryNameKey(category.Name),
		category.Percentage,
		category.FixedAmount,
		category.CurrentBalance,
		category.Color,
		category.CreatedAt,
	).Scan(&category.ID)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return models.ErrDuplicateName
		}
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// Update rewrites the name, allocation rule and color. The balance is left
// to recalculation and payments.
func (r *CategoryRepo) Update(ctx context.Context, category *models.Category) error {
	query := r.q.Rebind(`
		UPDATE categories
		SET name = ?, name_key = ?, percentage = ?, fixed_amount = ?, color = ?
		WHERE id = ? AND user_id = ?
	`)

	result, err := r.q.ExecContext(ctx, query,
		category.Name,
		models.CategoryNameKey(category.Name),
		category.Percentage,
		category.FixedAmount,
		category.Color,
		category.ID,
		category.UserID,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return models.ErrDuplicateName
		}
		return fmt.Errorf("failed to update category: %w", err)
	}
	return requireAffected(result, "update category")
}

// Delete removes a category. Its transactions go with it.
func (r *CategoryRepo) Delete(ctx context.Context, userID, categoryID int64) error {
	query := r.q.Rebind(`DELETE FROM categories WHERE id = ? AND user_id = ?`)

	result, err := r.q.ExecContext(ctx, query, categoryID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return requireAffected(result, "delete category")
}

// SetBalance overwrites the current balance of a category
func (r *CategoryRepo) SetBalance(ctx context.Context, userID, categoryID int64, balance decimal.Decimal) error {
	query := r.q.Rebind(`UPDATE categories SET current_balance = ? WHERE id = ? AND user_id = ?`)

	result, err := r.q.ExecContext(ctx, query, balance, categoryID, userID)
	if err != nil {
		return fmt.Errorf("failed to set balance: %w", err)
	}
	return requireAffected(result, "set balance")
}

// GetSalary returns the monthly salary of the user
func (r *CategoryRepo) GetSalary(ctx context.Context, userID int64) (decimal.Decimal, error) {
	query := r.q.Rebind(`SELECT salary FROM users WHERE id = ?`)

	var salary decimal.Decimal
	if err := sqlx.GetContext(ctx, r.q, &salary, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, models.ErrUserNotFound
		}
		return decimal.Zero, fmt.Errorf("failed to get salary: %w", err)
	}
	return salary, nil
}

// WithinTx runs fn in a database transaction. Calls made while already
// inside one reuse it.
func (r *CategoryRepo) WithinTx(ctx context.Context, fn func(repo categories.CategoryRepo) error) error {
	if _, ok := r.q.(*sqlx.Tx); ok {
		return fn(r)
	}
	return database.RunInTx(ctx, r.db, func(tx *sqlx.Tx) error {
		return fn(&CategoryRepo{cfg: r.cfg, db: r.db, q: tx})
	})
}

func requireAffected(result sql.Result, op string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	if rows == 0 {
		return models.ErrCategoryNotFound
	}
	return nil
}
