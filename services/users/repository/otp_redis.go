package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/spendly/internal/pkg/constants"
	"github.com/piresc/spendly/internal/pkg/database"
	"github.com/piresc/spendly/internal/pkg/models"
)

// RedisOTPRepo keeps OTP entries in Redis as JSON with a key TTL
type RedisOTPRepo struct {
	redisClient *database.RedisClient
}

// NewRedisOTPRepository creates a Redis backed OTP store
func NewRedisOTPRepository(redisClient *database.RedisClient) *RedisOTPRepo {
	return &RedisOTPRepo{
		redisClient: redisClient,
	}
}

// SaveOTP stores otp for ttl, replacing any previous entry for the email
func (r *RedisOTPRepo) SaveOTP(ctx context.Context, otp *models.OTP, ttl time.Duration) error {
	otpJSON, err := json.Marshal(otp)
	if err != nil {
		return fmt.Errorf("failed to marshal OTP: %w", err)
	}

	key := fmt.Sprintf(constants.KeyUserOTP, otp.Email)
	if err := r.redisClient.Set(ctx, key, otpJSON, ttl); err != nil {
		return fmt.Errorf("failed to store OTP: %w", err)
	}
	return nil
}

// GetOTP returns the entry for email
func (r *RedisOTPRepo) GetOTP(ctx context.Context, email string) (*models.OTP, error) {
	key := fmt.Sprintf(constants.KeyUserOTP, email)
	val, err := r.redisClient.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, models.ErrOTPNotFound
		}
		return nil, fmt.Errorf("failed to get OTP: %w", err)
	}

	var otp models.OTP
	if err := json.Unmarshal([]byte(val), &otp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal OTP: %w", err)
	}
	return &otp, nil
}

// DeleteOTP removes the entry for email
func (r *RedisOTPRepo) DeleteOTP(ctx context.Context, email string) error {
	key := fmt.Sprintf(constants.KeyUserOTP, email)
	if err := r.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete OTP: %w", err)
	}
	return nil
}
