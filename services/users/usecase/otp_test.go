package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/spendly/internal/pkg/models"
	"github.com/piresc/spendly/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var asha = &models.User{ID: 7, Email: "asha@example.com", Name: "Asha"}

func TestUserUC_SendOTP_Unregistered(t *testing.T) {
	d := newTestUC(t)
	d.userRepo.EXPECT().GetUserByEmail(gomock.Any(), "who@example.com").Return(nil, models.ErrUserNotFound)

	err := d.uc.SendOTP(context.Background(), "who@example.com")

	assert.ErrorIs(t, err, models.ErrUserNotFound)
}

func TestUserUC_SendOTP_StoresHash(t *testing.T) {
	d := newTestUC(t)
	ctx := context.Background()

	var sent string
	var stored *models.OTP
	d.userRepo.EXPECT().GetUserByEmail(ctx, "asha@example.com").Return(asha, nil)
	d.otpRepo.EXPECT().
		SaveOTP(ctx, gomock.Any(), 10*time.Minute).
		DoAndReturn(func(ctx context.Context, otp *models.OTP, ttl time.Duration) error {
			stored = otp
			return nil
		})
	d.userGW.EXPECT().
		SendOTPEmail(ctx, "asha@example.com", "Asha", gomock.Any(), 10*time.Minute).
		DoAndReturn(func(ctx context.Context, email, name, code string, expiry time.Duration) error {
			sent = code
			return nil
		})

	require.NoError(t, d.uc.SendOTP(ctx, "Asha@example.com"))

	assert.Len(t, sent, 6)
	assert.Equal(t, utils.HashSHA256(sent), stored.CodeHash)
	assert.NotContains(t, stored.CodeHash, sent)
	assert.Equal(t, fixedNow.Add(10*time.Minute), stored.ExpiresAt)
	assert.Zero(t, stored.Attempts)
	assert.False(t, stored.Verified)
}

func TestUserUC_SendOTP_DeliveryFailure(t *testing.T) {
	d := newTestUC(t)
	uc := useMemoryStore(d)
	ctx := context.Background()

	d.userRepo.EXPECT().GetUserByEmail(ctx, "asha@example.com").Return(asha, nil)
	d.userGW.EXPECT().SendOTPEmail(ctx, "asha@example.com", "Asha", gomock.Any(), gomock.Any()).
		Return(errors.New("sendgrid: 401"))

	err := uc.SendOTP(ctx, "asha@example.com")

	assert.ErrorIs(t, err, models.ErrOTPDeliveryFailed)
	_, err = uc.otpRepo.GetOTP(ctx, "asha@example.com")
	assert.ErrorIs(t, err, models.ErrOTPNotFound)
}

func sendCode(t *testing.T, d *testDeps) string {
	t.Helper()
	var code string
	d.userRepo.EXPECT().GetUserByEmail(gomock.Any(), "asha@example.com").Return(asha, nil)
	d.userGW.EXPECT().SendOTPEmail(gomock.Any(), "asha@example.com", "Asha", gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, email, name, c string, expiry time.Duration) error {
			code = c
			return nil
		})
	require.NoError(t, d.uc.SendOTP(context.Background(), "asha@example.com"))
	return code
}

func wrongCode(code string) string {
	if code == "000000" {
		return "111111"
	}
	return "000000"
}

func TestUserUC_VerifyOTP_AttemptsRunOut(t *testing.T) {
	d := newTestUC(t)
	uc := useMemoryStore(d)
	ctx := context.Background()

	code := sendCode(t, d)
	bad := wrongCode(code)

	assert.ErrorIs(t, uc.VerifyOTP(ctx, "asha@example.com", bad), models.ErrOTPInvalid)
	assert.ErrorIs(t, uc.VerifyOTP(ctx, "asha@example.com", bad), models.ErrOTPInvalid)
	assert.ErrorIs(t, uc.VerifyOTP(ctx, "asha@example.com", bad), models.ErrOTPAttemptsExceeded)

	// the entry is gone, so even the right code fails now
	assert.ErrorIs(t, uc.VerifyOTP(ctx, "asha@example.com", code), models.ErrOTPNotFound)
}

func TestUserUC_VerifyOTP_Expired(t *testing.T) {
	d := newTestUC(t)
	uc := useMemoryStore(d)
	ctx := context.Background()

	code := sendCode(t, d)
	uc.now = func() time.Time { return fixedNow.Add(11 * time.Minute) }

	assert.ErrorIs(t, uc.VerifyOTP(ctx, "asha@example.com", code), models.ErrOTPNotFound)
}

func TestUserUC_ResetPasswordFlow(t *testing.T) {
	d := newTestUC(t)
	uc := useMemoryStore(d)
	ctx := context.Background()

	code := sendCode(t, d)

	// reset before verifying is refused
	assert.ErrorIs(t, uc.ResetPassword(ctx, "asha@example.com", "newsecret"), models.ErrOTPNotVerified)

	assert.ErrorIs(t, uc.VerifyOTP(ctx, "asha@example.com", wrongCode(code)), models.ErrOTPInvalid)
	require.NoError(t, uc.VerifyOTP(ctx, "asha@example.com", code))

	assert.ErrorIs(t, uc.ResetPassword(ctx, "asha@example.com", "short"), models.ErrWeakPassword)

	d.userRepo.EXPECT().
		UpdatePassword(ctx, "asha@example.com", gomock.Any()).
		DoAndReturn(func(ctx context.Context, email, hash string) error {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("newsecret")))
			return nil
		})
	require.NoError(t, uc.ResetPassword(ctx, "asha@example.com", "newsecret"))

	// the verified entry is single use
	assert.ErrorIs(t, uc.ResetPassword(ctx, "asha@example.com", "another1"), models.ErrOTPNotVerified)
}

func TestUserUC_ResetPassword_WindowClosed(t *testing.T) {
	d := newTestUC(t)
	uc := useMemoryStore(d)
	ctx := context.Background()

	code := sendCode(t, d)
	require.NoError(t, uc.VerifyOTP(ctx, "asha@example.com", code))

	uc.now = func() time.Time { return fixedNow.Add(16 * time.Minute) }
	assert.ErrorIs(t, uc.ResetPassword(ctx, "asha@example.com", "newsecret"), models.ErrOTPNotVerified)
}

func TestUserUC_VerifyOTP_StoreFailure(t *testing.T) {
	d := newTestUC(t)
	storeErr := errors.New("redis: connection refused")
	d.otpRepo.EXPECT().GetOTP(gomock.Any(), "asha@example.com").Return(nil, storeErr)

	err := d.uc.VerifyOTP(context.Background(), "asha@example.com", "123456")

	assert.ErrorIs(t, err, storeErr)
}
