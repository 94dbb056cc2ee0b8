package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	jwtpkg "github.com/piresc/spendly/internal/pkg/jwt"
	"github.com/piresc/spendly/internal/pkg/logger"
	"github.com/piresc/spendly/internal/pkg/models"
	"github.com/piresc/spendly/internal/utils"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// Register creates an account and signs the caller in
func (u *UserUC) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	email := normalizeEmail(req.Email)
	name := utils.SanitizeString(req.Name)
	phone := strings.TrimSpace(req.Phone)

	if email == "" || req.Password == "" || name == "" {
		return nil, models.ErrMissingFields
	}
	if !utils.IsValidEmail(email) {
		return nil, models.ErrInvalidEmail
	}
	if len(req.Password) < minPasswordLength {
		return nil, models.ErrWeakPassword
	}
	if phone != "" && !utils.IsValidPhoneNumber(phone) {
		return nil, models.ErrInvalidPhone
	}

	taken, err := u.userRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, models.ErrEmailTaken
	}
	if phone != "" {
		taken, err := u.userRepo.PhoneExists(ctx, phone)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, models.ErrPhoneTaken
		}
	}

	hash, err := u.hashPassword([]byte(req.Password))
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := u.now().UTC()
	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Salary:       decimal.Zero,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if phone != "" {
		user.Phone = &phone
	}
	if err := u.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("User registered",
		logger.Int64("user_id", user.ID),
		logger.String("email", utils.MaskEmail(email)))

	return u.authResponse(user)
}

// Login checks the password of the account with req.Email. Unknown
// accounts and wrong passwords fail the same way.
func (u *UserUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, models.ErrInvalidCredentials
	}

	user, err := u.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logger.Debug("Password mismatch",
			logger.Int64("user_id", user.ID))
		return nil, models.ErrInvalidCredentials
	}

	logger.Info("User logged in",
		logger.Int64("user_id", user.ID))

	return u.authResponse(user)
}

func (u *UserUC) authResponse(user *models.User) (*models.AuthResponse, error) {
	token, expiresAt, err := jwtpkg.GenerateToken(user.ID, user.Email, u.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
