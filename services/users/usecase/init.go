package usecase

import (
	"time"

	"github.com/piresc/spendly/internal/pkg/models"
	"github.com/piresc/spendly/services/users"
	"golang.org/x/crypto/bcrypt"
)

const (
	passwordCost      = 12
	minPasswordLength = 6
)

type UserUC struct {
	userRepo users.UserRepo
	otpRepo  users.OTPRepo
	userGW   users.UserGW
	cfg      *models.Config
	now      func() time.Time

	// hashPassword is swapped for a cheaper cost in tests
	hashPassword func(password []byte) ([]byte, error)
}

// NewUserUC creates a new user usecase instance
func NewUserUC(
	userRepo users.UserRepo,
	otpRepo users.OTPRepo,
	userGW users.UserGW,
	cfg *models.Config,
) *UserUC {
	return &UserUC{
		userRepo: userRepo,
		otpRepo:  otpRepo,
		userGW:   userGW,
		cfg:      cfg,
		now:      time.Now,
		hashPassword: func(password []byte) ([]byte, error) {
			return bcrypt.GenerateFromPassword(password, passwordCost)
		},
	}
}
