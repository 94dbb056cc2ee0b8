package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents an account holder and the owner of categories and transactions
type User struct {
	ID           int64           `json:"id" db:"id"`
	Email        string          `json:"email" db:"email"`
	PasswordHash string          `json:"-" db:"password"`
	Name         string          `json:"name" db:"name"`
	Phone        *string         `json:"phone,omitempty" db:"phone"`
	Salary       decimal.Decimal `json:"salary" db:"salary"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at" db:"updated_at"`
}

// RegisterRequest represents a sign-up payload
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone,omitempty"`
}

// LoginRequest represents an email and password login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
	User      *User  `json:"user"`
}

// UpdateSalaryRequest represents a salary change
type UpdateSalaryRequest struct {
	Salary decimal.Decimal `json:"salary"`
}

// UpdateProfileRequest represents a profile change
type UpdateProfileRequest struct {
	Name string `json:"name"`
}
