package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/piresc/spendly/internal/pkg/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserUC_UpdateProfile(t *testing.T) {
	t.Run("renamed", func(t *testing.T) {
		d := newTestUC(t)
		ctx := context.Background()

		gomock.InOrder(
			d.userRepo.EXPECT().UpdateName(ctx, int64(7), "Asha Rao").Return(nil),
			d.userRepo.EXPECT().GetUserByID(ctx, int64(7)).Return(&models.User{ID: 7, Name: "Asha Rao"}, nil),
		)

		user, err := d.uc.UpdateProfile(ctx, 7, "  Asha   Rao ")

		require.NoError(t, err)
		assert.Equal(t, "Asha Rao", user.Name)
	})

	t.Run("blank", func(t *testing.T) {
		d := newTestUC(t)

		_, err := d.uc.UpdateProfile(context.Background(), 7, " \t ")

		assert.ErrorIs(t, err, models.ErrInvalidName)
	})
}

func TestUserUC_UpdateSalary(t *testing.T) {
	for _, salary := range []string{"0", "-100"} {
		d := newTestUC(t)

		_, err := d.uc.UpdateSalary(context.Background(), 7, decimal.RequireFromString(salary))

		assert.ErrorIs(t, err, models.ErrInvalidSalary)
	}

	d := newTestUC(t)
	ctx := context.Background()
	salary := decimal.NewFromInt(50000)

	d.userRepo.EXPECT().UpdateSalary(ctx, int64(7), salary).Return(nil)
	d.userRepo.EXPECT().GetUserByID(ctx, int64(7)).Return(&models.User{ID: 7, Salary: salary}, nil)

	user, err := d.uc.UpdateSalary(ctx, 7, salary)

	require.NoError(t, err)
	assert.True(t, user.Salary.Equal(salary))
}

func TestUserUC_GetProfile_NotFound(t *testing.T) {
	d := newTestUC(t)
	d.userRepo.EXPECT().GetUserByID(gomock.Any(), int64(404)).Return(nil, models.ErrUserNotFound)

	_, err := d.uc.GetProfile(context.Background(), 404)

	assert.ErrorIs(t, err, models.ErrUserNotFound)
}
