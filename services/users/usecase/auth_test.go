package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	jwtpkg "github.com/piresc/spendly/internal/pkg/jwt"
	"github.com/piresc/spendly/internal/pkg/models"
	"github.com/piresc/spendly/services/users/mocks"
	"github.com/piresc/spendly/services/users/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var fixedNow = time.Date(2024, 4, 1, 9, 30, 0, 0, time.UTC)

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{Secret: "test-secret", Expiration: 60, Issuer: "spendly-test"},
		OTP: models.OTPConfig{Length: 6, Expiry: 10 * time.Minute, MaxAttempts: 3, ResetWindow: 15 * time.Minute},
	}
}

type testDeps struct {
	uc       *UserUC
	userRepo *mocks.MockUserRepo
	otpRepo  *mocks.MockOTPRepo
	userGW   *mocks.MockUserGW
}

func newTestUC(t *testing.T) *testDeps {
	ctrl := gomock.NewController(t)
	d := &testDeps{
		userRepo: mocks.NewMockUserRepo(ctrl),
		otpRepo:  mocks.NewMockOTPRepo(ctrl),
		userGW:   mocks.NewMockUserGW(ctrl),
	}
	d.uc = NewUserUC(d.userRepo, d.otpRepo, d.userGW, testConfig())
	d.uc.now = func() time.Time { return fixedNow }
	d.uc.hashPassword = func(p []byte) ([]byte, error) {
		return bcrypt.GenerateFromPassword(p, bcrypt.MinCost)
	}
	return d
}

// useMemoryStore swaps the OTP mock for the real in-memory store
func useMemoryStore(d *testDeps) *UserUC {
	d.uc.otpRepo = repository.NewMemoryOTPRepository()
	return d.uc
}

func hashed(t *testing.T, password string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestUserUC_Register_Success(t *testing.T) {
	d := newTestUC(t)
	ctx := context.Background()

	d.userRepo.EXPECT().EmailExists(ctx, "asha@example.com").Return(false, nil)
	d.userRepo.EXPECT().PhoneExists(ctx, "+919876543210").Return(false, nil)
	d.userRepo.EXPECT().
		CreateUser(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, u *models.User) error {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret1")))
			assert.True(t, u.Salary.IsZero())
			u.ID = 7
			return nil
		})

	resp, err := d.uc.Register(ctx, &models.RegisterRequest{
		Email:    "  Asha@Example.com ",
		Password: "secret1",
		Name:     " Asha ",
		Phone:    "+919876543210",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.User.ID)
	assert.Equal(t, "asha@example.com", resp.User.Email)
	assert.Equal(t, "Asha", resp.User.Name)
	require.NotNil(t, resp.User.Phone)
	assert.Equal(t, "+919876543210", *resp.User.Phone)

	claims, err := jwtpkg.ValidateToken(resp.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "asha@example.com", claims.Email)
}

func TestUserUC_Register_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     models.RegisterRequest
		wantErr error
	}{
		{"missing email", models.RegisterRequest{Password: "secret1", Name: "Asha"}, models.ErrMissingFields},
		{"missing password", models.RegisterRequest{Email: "a@b.co", Name: "Asha"}, models.ErrMissingFields},
		{"blank name", models.RegisterRequest{Email: "a@b.co", Password: "secret1", Name: "   "}, models.ErrMissingFields},
		{"bad email", models.RegisterRequest{Email: "asha.example.com", Password: "secret1", Name: "Asha"}, models.ErrInvalidEmail},
		{"short password", models.RegisterRequest{Email: "a@b.co", Password: "12345", Name: "Asha"}, models.ErrWeakPassword},
		{"bad phone", models.RegisterRequest{Email: "a@b.co", Password: "secret1", Name: "Asha", Phone: "12"}, models.ErrInvalidPhone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestUC(t)

			resp, err := d.uc.Register(context.Background(), &tt.req)

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUserUC_Register_Taken(t *testing.T) {
	t.Run("email", func(t *testing.T) {
		d := newTestUC(t)
		d.userRepo.EXPECT().EmailExists(gomock.Any(), "asha@example.com").Return(true, nil)

		_, err := d.uc.Register(context.Background(), &models.RegisterRequest{
			Email: "asha@example.com", Password: "secret1", Name: "Asha",
		})

		assert.ErrorIs(t, err, models.ErrEmailTaken)
	})

	t.Run("phone", func(t *testing.T) {
		d := newTestUC(t)
		d.userRepo.EXPECT().EmailExists(gomock.Any(), "asha@example.com").Return(false, nil)
		d.userRepo.EXPECT().PhoneExists(gomock.Any(), "9876543210").Return(true, nil)

		_, err := d.uc.Register(context.Background(), &models.RegisterRequest{
			Email: "asha@example.com", Password: "secret1", Name: "Asha", Phone: "9876543210",
		})

		assert.ErrorIs(t, err, models.ErrPhoneTaken)
		appErr, ok := models.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, 409, appErr.Status)
	})
}

func TestUserUC_Login(t *testing.T) {
	user := &models.User{ID: 7, Email: "asha@example.com", Name: "Asha", PasswordHash: hashed(t, "secret1")}

	t.Run("success", func(t *testing.T) {
		d := newTestUC(t)
		d.userRepo.EXPECT().GetUserByEmail(gomock.Any(), "asha@example.com").Return(user, nil)

		resp, err := d.uc.Login(context.Background(), &models.LoginRequest{Email: "ASHA@example.com", Password: "secret1"})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, user, resp.User)
	})

	t.Run("wrong password", func(t *testing.T) {
		d := newTestUC(t)
		d.userRepo.EXPECT().GetUserByEmail(gomock.Any(), "asha@example.com").Return(user, nil)

		_, err := d.uc.Login(context.Background(), &models.LoginRequest{Email: "asha@example.com", Password: "nope"})

		assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	})

	t.Run("unknown account", func(t *testing.T) {
		d := newTestUC(t)
		d.userRepo.EXPECT().GetUserByEmail(gomock.Any(), "who@example.com").Return(nil, models.ErrUserNotFound)

		_, err := d.uc.Login(context.Background(), &models.LoginRequest{Email: "who@example.com", Password: "secret1"})

		assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	})

	t.Run("storage failure", func(t *testing.T) {
		d := newTestUC(t)
		dbErr := errors.New("database is locked")
		d.userRepo.EXPECT().GetUserByEmail(gomock.Any(), "asha@example.com").Return(nil, dbErr)

		_, err := d.uc.Login(context.Background(), &models.LoginRequest{Email: "asha@example.com", Password: "secret1"})

		assert.ErrorIs(t, err, dbErr)
	})
}
