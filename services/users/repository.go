package users

import (
	"context"
	"time"

	"github.com/piresc/spendly/internal/pkg/models"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/spendly/services/users UserRepo,OTPRepo

// UserRepo defines user persistence
type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	PhoneExists(ctx context.Context, phone string) (bool, error)
	UpdatePassword(ctx context.Context, email, passwordHash string) error
	UpdateName(ctx context.Context, id int64, name string) error
	UpdateSalary(ctx context.Context, id int64, salary decimal.Decimal) error
}

// OTPRepo stores pending password reset codes keyed by email. Entries
// disappear after their TTL.
type OTPRepo interface {
	SaveOTP(ctx context.Context, otp *models.OTP, ttl time.Duration) error
	GetOTP(ctx context.Context, email string) (*models.OTP, error)
	DeleteOTP(ctx context.Context, email string) error
}
