package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/piresc/spendly/internal/pkg/database"
	"github.com/piresc/spendly/internal/pkg/models"
	"github.com/shopspring/decimal"
)

const userColumns = `id, email, password, name, phone, salary, created_at, updated_at`

// CreateUser inserts user and sets its ID
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User) error {
	query := r.db.Rebind(`
		INSERT INTO users (email, password, name, phone, salary, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`)

	err := r.db.QueryRowxContext(ctx, query,
		user.Email,
		user.PasswordHash,
		user.Name,
		user.Phone,
		user.Salary,
		user.CreatedAt,
		user.UpdatedAt,
	).Scan(&user.ID)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return models.ErrEmailTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUserByID retrieves a user by ID
func (r *UserRepo) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return r.getUser(ctx, "id", id)
}

// GetUserByEmail retrieves a user by email
func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getUser(ctx, "email", email)
}

// getUser looks a user up by one column. field is never user input.
func (r *UserRepo) getUser(ctx context.Context, field string, value interface{}) (*models.User, error) {
	query := r.db.Rebind(fmt.Sprintf(`SELECT %s FROM users WHERE %s = ?`, userColumns, field))

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// EmailExists reports whether an account uses email
func (r *UserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "email", email)
}

// PhoneExists reports whether an account uses phone
func (r *UserRepo) PhoneExists(ctx context.Context, phone string) (bool, error) {
	return r.exists(ctx, "phone", phone)
}

func (r *UserRepo) exists(ctx context.Context, field, value string) (bool, error) {
	query := r.db.Rebind(fmt.Sprintf(`SELECT COUNT(1) FROM users WHERE %s = ?`, field))

	var count int
	if err := r.db.GetContext(ctx, &count, query, value); err != nil {
		return false, fmt.Errorf("failed to check %s: %w", field, err)
	}
	return count > 0, nil
}

// UpdatePassword replaces the password hash of the account with email
func (r *UserRepo) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	query := r.db.Rebind(`UPDATE users SET password = ?, updated_at = CURRENT_TIMESTAMP WHERE email = ?`)
	return r.update(ctx, "password", query, passwordHash, email)
}

// UpdateName sets the display name
func (r *UserRepo) UpdateName(ctx context.Context, id int64, name string) error {
	query := r.db.Rebind(`UPDATE users SET name = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`)
	return r.update(ctx, "name", query, name, id)
}

// UpdateSalary sets the monthly salary
func (r *UserRepo) UpdateSalary(ctx context.Context, id int64, salary decimal.Decimal) error {
	query := r.db.Rebind(`UPDATE users SET salary = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`)
	return r.update(ctx, "salary", query, salary, id)
}

func (r *UserRepo) update(ctx context.Context, what, query string, args ...interface{}) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", what, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", what, err)
	}
	if rows == 0 {
		return models.ErrUserNotFound
	}
	return nil
}
