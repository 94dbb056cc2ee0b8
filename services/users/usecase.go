package users

import (
	"context"

	"github.com/piresc/spendly/internal/pkg/models"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/spendly/services/users UserUC

// UserUC covers accounts: sign-up, login, OTP password reset and the
// profile including the salary budgets are allocated from
type UserUC interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)

	SendOTP(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, code string) error
	ResetPassword(ctx context.Context, email, newPassword string) error

	GetProfile(ctx context.Context, userID int64) (*models.User, error)
	UpdateProfile(ctx context.Context, userID int64, name string) (*models.User, error)
	UpdateSalary(ctx context.Context, userID int64, salary decimal.Decimal) (*models.User, error)
}
