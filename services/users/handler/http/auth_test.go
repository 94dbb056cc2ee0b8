package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/spendly/internal/pkg/middleware"
	"github.com/piresc/spendly/internal/pkg/models"
	"github.com/piresc/spendly/services/users/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequest(method, target, body string, userID int64) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID > 0 {
		c.Set(middleware.ContextUserID, userID)
	}
	return c, rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestAuthHandler_Register(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(uc *mocks.MockUserUC)
		wantStatus int
		wantCode   string
	}{
		{
			name: "created",
			body: `{"email":"asha@example.com","password":"secret1","name":"Asha"}`,
			setup: func(uc *mocks.MockUserUC) {
				uc.EXPECT().Register(gomock.Any(), &models.RegisterRequest{
					Email: "asha@example.com", Password: "secret1", Name: "Asha",
				}).Return(&models.AuthResponse{
					Token: "tok", ExpiresAt: 1700000000,
					User: &models.User{ID: 9, Email: "asha@example.com", Name: "Asha"},
				}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "malformed json",
			body:       `{"email":`,
			setup:      func(uc *mocks.MockUserUC) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "email taken",
			body: `{"email":"asha@example.com","password":"secret1","name":"Asha"}`,
			setup: func(uc *mocks.MockUserUC) {
				uc.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, models.ErrEmailTaken)
			},
			wantStatus: http.StatusConflict,
			wantCode:   "EMAIL_TAKEN",
		},
		{
			name: "weak password",
			body: `{"email":"asha@example.com","password":"abc","name":"Asha"}`,
			setup: func(uc *mocks.MockUserUC) {
				uc.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, models.ErrWeakPassword)
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "WEAK_PASSWORD",
		},
		{
			name: "storage failure",
			body: `{"email":"asha@example.com","password":"secret1","name":"Asha"}`,
			setup: func(uc *mocks.MockUserUC) {
				uc.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, errors.New("disk full"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockUC := mocks.NewMockUserUC(ctrl)
			tt.setup(mockUC)
			handler := NewAuthHandler(mockUC)

			c, rec := newRequest(http.MethodPost, "/api/auth/register", tt.body, 0)
			require.NoError(t, handler.Register(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decode(t, rec)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, body["error_code"])
			}
			if tt.wantStatus == http.StatusCreated {
				data := body["data"].(map[string]interface{})
				assert.Equal(t, "tok", data["token"])
				user := data["user"].(map[string]interface{})
				assert.Equal(t, "asha@example.com", user["email"])
				assert.NotContains(t, user, "password")
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockUserUC(ctrl)
	handler := NewAuthHandler(mockUC)

	mockUC.EXPECT().Login(gomock.Any(), &models.LoginRequest{Email: "asha@example.com", Password: "nope"}).
		Return(nil, models.ErrInvalidCredentials)

	c, rec := newRequest(http.MethodPost, "/api/auth/login", `{"email":"asha@example.com","password":"nope"}`, 0)
	require.NoError(t, handler.Login(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Invalid email or password", body["error"])
}

func TestAuthHandler_SendOTP(t *testing.T) {
	t.Run("sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockUC := mocks.NewMockUserUC(ctrl)
		handler := NewAuthHandler(mockUC)

		mockUC.EXPECT().SendOTP(gomock.Any(), "asha@example.com").Return(nil)

		c, rec := newRequest(http.MethodPost, "/api/auth/send-otp", `{"email":"asha@example.com"}`, 0)
		require.NoError(t, handler.SendOTP(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OTP sent successfully to your email", decode(t, rec)["message"])
	})

	t.Run("missing email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler := NewAuthHandler(mocks.NewMockUserUC(ctrl))

		c, rec := newRequest(http.MethodPost, "/api/auth/send-otp", `{}`, 0)
		require.NoError(t, handler.SendOTP(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockUC := mocks.NewMockUserUC(ctrl)
		handler := NewAuthHandler(mockUC)

		mockUC.EXPECT().SendOTP(gomock.Any(), "ghost@example.com").Return(models.ErrUserNotFound)

		c, rec := newRequest(http.MethodPost, "/api/auth/send-otp", `{"email":"ghost@example.com"}`, 0)
		require.NoError(t, handler.SendOTP(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "USER_NOT_FOUND", decode(t, rec)["error_code"])
	})
}

func TestAuthHandler_VerifyOTP(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockUserUC(ctrl)
	handler := NewAuthHandler(mockUC)

	mockUC.EXPECT().VerifyOTP(gomock.Any(), "asha@example.com", "000000").Return(models.ErrOTPInvalid)

	c, rec := newRequest(http.MethodPost, "/api/auth/verify-otp", `{"email":"asha@example.com","otp":"000000"}`, 0)
	require.NoError(t, handler.VerifyOTP(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "OTP_INVALID", decode(t, rec)["error_code"])
}

func TestAuthHandler_ResetPassword(t *testing.T) {
	t.Run("reset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockUC := mocks.NewMockUserUC(ctrl)
		handler := NewAuthHandler(mockUC)

		mockUC.EXPECT().ResetPassword(gomock.Any(), "asha@example.com", "brandnew").Return(nil)

		c, rec := newRequest(http.MethodPost, "/api/auth/reset-password", `{"email":"asha@example.com","newPassword":"brandnew"}`, 0)
		require.NoError(t, handler.ResetPassword(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Password reset successfully", decode(t, rec)["message"])
	})

	t.Run("not verified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockUC := mocks.NewMockUserUC(ctrl)
		handler := NewAuthHandler(mockUC)

		mockUC.EXPECT().ResetPassword(gomock.Any(), "asha@example.com", "brandnew").Return(models.ErrOTPNotVerified)

		c, rec := newRequest(http.MethodPost, "/api/auth/reset-password", `{"email":"asha@example.com","newPassword":"brandnew"}`, 0)
		require.NoError(t, handler.ResetPassword(c))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
