package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/spendly/internal/pkg/database"
	"github.com/piresc/spendly/internal/pkg/models"
	"github.com/piresc/spendly/services/transactions"
	"github.com/shopspring/decimal"
)

const joinedColumns = `t.id, t.user_id, t.category_id, t.amount, t.merchant_upi, t.merchant_name,
		t.transaction_id, t.status, t.note, t.created_at,
		c.name AS category_name, c.color AS category_color`

// ListByUser returns the newest transactions of the user with their
// category name and color
func (r *TransactionRepo) ListByUser(ctx context.Context, userID int64, limit int) ([]*models.Transaction, error) {
	query := r.q.Rebind(`
		SELECT ` + joinedColumns + `
		FROM transactions t
		JOIN categories c ON t.category_id = c.id
		WHERE t.user_id = ?
		ORDER BY t.created_at DESC, t.id DESC
		LIMIT ?
	`)

	result := make([]*models.Transaction, 0)
	if err := sqlx.SelectContext(ctx, r.q, &result, query, userID, limit); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return result, nil
}

// GetByID returns one transaction owned by userID
func (r *TransactionRepo) GetByID(ctx context.Context, userID, id int64) (*models.Transaction, error) {
	query := r.q.Rebind(`
		SELECT ` + joinedColumns + `
		FROM transactions t
		JOIN categories c ON t.category_id = c.id
		WHERE t.id = ? AND t.user_id = ?
	`)

	var tx models.Transaction
	if err := sqlx.GetContext(ctx, r.q, &tx, query, id, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &tx, nil
}

// Create inserts tx and sets its ID
func (r *TransactionRepo) Create(ctx context.Context, tx *models.Transaction) error {
	query := r.q.Rebind(`
		INSERT INTO transactions (user_id, category_id, amount, merchant_upi, merchant_name, transaction_id, status, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`)

	err := r.q.QueryRowxContext(ctx, query,
		tx.UserID,
		tx.CategoryID,
		tx.Amount,
		tx.MerchantUPI,
		tx.MerchantName,
		tx.TransactionID,
		tx.Status,
		tx.Note,
		tx.CreatedAt,
	).Scan(&tx.ID)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// GetCategory returns the category a payment would be charged to
func (r *TransactionRepo) GetCategory(ctx context.Context, userID, categoryID int64) (*models.Category, error) {
	query := r.q.Rebind(`
		SELECT id, user_id, name, percentage, fixed_amount, current_balance, color, created_at
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

// CompareAndSetStatus updates the status only while it still equals from.
// Two concurrent callers cannot both see true.
func (r *TransactionRepo) CompareAndSetStatus(ctx context.Context, userID, id int64, from, to models.TransactionStatus) (bool, error) {
	query := r.q.Rebind(`
		UPDATE transactions
		SET status = ?
		WHERE id = ? AND user_id = ? AND status = ?
	`)

	result, err := r.q.ExecContext(ctx, query, to, id, userID, from)
	if err != nil {
		return false, fmt.Errorf("failed to update transaction status: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to update transaction status: %w", err)
	}
	return rows == 1, nil
}

// DebitCategory subtracts amount from the category balance. The arithmetic
// is done in decimal; SQL arithmetic on the sqlite TEXT column would go
// through a float. Call it inside WithinTx so the read and the write are
// not interleaved with another debit.
func (r *TransactionRepo) DebitCategory(ctx context.Context, userID, categoryID int64, amount decimal.Decimal) error {
	selectQuery := `SELECT current_balance FROM categories WHERE id = ? AND user_id = ?`
	if r.q.DriverName() != database.DriverSQLite {
		selectQuery += ` FOR UPDATE`
	}

	var balance decimal.Decimal
	if err := sqlx.GetContext(ctx, r.q, &balance, r.q.Rebind(selectQuery), categoryID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ErrCategoryNotFound
		}
		return fmt.Errorf("failed to read category balance: %w", err)
	}

	updateQuery := r.q.Rebind(`UPDATE categories SET current_balance = ? WHERE id = ? AND user_id = ?`)
	result, err := r.q.ExecContext(ctx, updateQuery, balance.Sub(amount), categoryID, userID)
	if err != nil {
		return fmt.Errorf("failed to debit category: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to debit category: %w", err)
	}
	if rows == 0 {
		return models.ErrCategoryNotFound
	}
	return nil
}

// WithinTx runs fn in a database transaction, reusing one that is already open
func (r *TransactionRepo) WithinTx(ctx context.Context, fn func(repo transactions.TransactionRepo) error) error {
	if _, ok := r.q.(*sqlx.Tx); ok {
		return fn(r)
	}
	return database.RunInTx(ctx, r.db, func(tx *sqlx.Tx) error {
		return fn(&TransactionRepo{cfg: r.cfg, db: r.db, q: tx})
	})
}
