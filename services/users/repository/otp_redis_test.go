package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/spendly/internal/pkg/constants"
	"github.com/piresc/spendly/internal/pkg/database"
	"github.com/piresc/spendly/internal/pkg/models"
)

func setupRedisOTPRepo(t *testing.T) (*RedisOTPRepo, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisOTPRepository(&database.RedisClient{Client: client}), mr
}

func TestRedisOTPRepo_SaveAndGet(t *testing.T) {
	repo, mr := setupRedisOTPRepo(t)
	ctx := context.Background()

	otp := &models.OTP{Email: "asha@example.com", CodeHash: "abc", Attempts: 1}
	require.NoError(t, repo.SaveOTP(ctx, otp, 10*time.Minute))

	key := fmt.Sprintf(constants.KeyUserOTP, otp.Email)
	val, err := mr.Get(key)
	require.NoError(t, err)
	var stored models.OTP
	require.NoError(t, json.Unmarshal([]byte(val), &stored))
	assert.Equal(t, "abc", stored.CodeHash)
	assert.Equal(t, 10*time.Minute, mr.TTL(key))

	got, err := repo.GetOTP(ctx, otp.Email)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Attempts)
}

func TestRedisOTPRepo_Expiry(t *testing.T) {
	repo, mr := setupRedisOTPRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveOTP(ctx, &models.OTP{Email: "asha@example.com"}, time.Minute))
	mr.FastForward(2 * time.Minute)

	_, err := repo.GetOTP(ctx, "asha@example.com")
	assert.ErrorIs(t, err, models.ErrOTPNotFound)
}

func TestRedisOTPRepo_Delete(t *testing.T) {
	repo, _ := setupRedisOTPRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveOTP(ctx, &models.OTP{Email: "asha@example.com"}, time.Minute))
	require.NoError(t, repo.DeleteOTP(ctx, "asha@example.com"))

	_, err := repo.GetOTP(ctx, "asha@example.com")
	assert.ErrorIs(t, err, models.ErrOTPNotFound)
	// deleting a missing entry is not an error
	assert.NoError(t, repo.DeleteOTP(ctx, "asha@example.com"))
}

func TestRedisOTPRepo_ServerDown(t *testing.T) {
	repo, mr := setupRedisOTPRepo(t)
	mr.Close()

	_, err := repo.GetOTP(context.Background(), "asha@example.com")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, models.ErrOTPNotFound)
}
