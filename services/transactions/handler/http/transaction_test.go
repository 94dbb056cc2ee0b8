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
	"github.com/piresc/spendly/services/transactions/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(method, target, body string, userID int64, id string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID > 0 {
		c.Set(middleware.ContextUserID, userID)
	}
	if id != "" {
		c.SetParamNames("id")
		c.SetParamValues(id)
	}
	return c, rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestTransactionHandler_GetTransactions(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockTransactionUC(ctrl)
	handler := NewTransactionHandler(mockUC)

	mockUC.EXPECT().ListTransactions(gomock.Any(), int64(7)).Return([]*models.Transaction{}, nil)

	c, rec := newContext(http.MethodGet, "/api/transactions", "", 7, "")
	require.NoError(t, handler.GetTransactions(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	data := decode(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, []interface{}{}, data["transactions"])
}

func TestTransactionHandler_GetTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockTransactionUC(ctrl)
	handler := NewTransactionHandler(mockUC)

	mockUC.EXPECT().GetTransaction(gomock.Any(), int64(7), int64(404)).Return(nil, models.ErrTransactionNotFound)

	c, rec := newContext(http.MethodGet, "/api/transactions/404", "", 7, "404")
	require.NoError(t, handler.GetTransaction(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "TRANSACTION_NOT_FOUND", decode(t, rec)["error_code"])
}

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockUC := mocks.NewMockTransactionUC(ctrl)
		handler := NewTransactionHandler(mockUC)

		mockUC.EXPECT().
			InitiatePayment(gomock.Any(), int64(7), gomock.Any()).
			DoAndReturn(func(_ interface{}, _ int64, req *models.PaymentRequest) (*models.PaymentIntent, error) {
				assert.Equal(t, int64(4), req.CategoryID)
				assert.True(t, req.Amount.Equal(decimal.NewFromInt(2000)))
				return &models.PaymentIntent{
					Transaction: &models.Transaction{ID: 21, Amount: req.Amount, Status: models.TransactionStatusPending},
					UPIURL:      "upi://pay?pa=shop%40upi&pn=Merchant&am=2000&cu=INR&tn=x",
				}, nil
			})

		c, rec := newContext(http.MethodPost, "/api/transactions",
			`{"category_id":4,"amount":2000,"merchant_upi":"shop@upi"}`, 7, "")
		require.NoError(t, handler.CreateTransaction(c))

		assert.Equal(t, http.StatusCreated, rec.Code)
		data := decode(t, rec)["data"].(map[string]interface{})
		assert.Equal(t, "upi://pay?pa=shop%40upi&pn=Merchant&am=2000&cu=INR&tn=x", data["upi_url"])
		tx := data["transaction"].(map[string]interface{})
		assert.Equal(t, "pending", tx["status"])
		assert.Equal(t, float64(2000), tx["amount"])
	})

	t.Run("validation failures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockUC := mocks.NewMockTransactionUC(ctrl)
		handler := NewTransactionHandler(mockUC)

		mockUC.EXPECT().InitiatePayment(gomock.Any(), int64(7), gomock.Any()).Return(nil, &models.ValidationError{
			Violations: []*models.AppError{models.ErrCategoryNotFound, models.ErrInvalidUpiFormat},
		})

		c, rec := newContext(http.MethodPost, "/api/transactions",
			`{"category_id":99,"amount":10,"merchant_upi":"not-an-id"}`, 7, "")
		require.NoError(t, handler.CreateTransaction(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "CATEGORY_NOT_FOUND", body["error_code"])
		assert.Len(t, body["details"], 2)
	})

	t.Run("malformed body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler := NewTransactionHandler(mocks.NewMockTransactionUC(ctrl))

		c, rec := newContext(http.MethodPost, "/api/transactions", `{"amount":"lots"}`, 7, "")
		require.NoError(t, handler.CreateTransaction(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestTransactionHandler_UpdateStatus(t *testing.T) {
	tests := []struct {
		name        string
		id          string
		body        string
		setup       func(uc *mocks.MockTransactionUC)
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name: "success",
			id:   "21",
			body: `{"status":"success"}`,
			setup: func(uc *mocks.MockTransactionUC) {
				uc.EXPECT().FinalizeTransaction(gomock.Any(), int64(7), int64(21), models.TransactionStatusSuccess).
					Return(&models.Transaction{ID: 21, Status: models.TransactionStatusSuccess}, nil)
			},
			wantStatus:  http.StatusOK,
			wantMessage: "Transaction completed successfully",
		},
		{
			name: "cancelled",
			id:   "21",
			body: `{"status":"cancelled"}`,
			setup: func(uc *mocks.MockTransactionUC) {
				uc.EXPECT().FinalizeTransaction(gomock.Any(), int64(7), int64(21), models.TransactionStatusCancelled).
					Return(&models.Transaction{ID: 21, Status: models.TransactionStatusCancelled}, nil)
			},
			wantStatus:  http.StatusOK,
			wantMessage: "Transaction status updated",
		},
		{
			name: "already finalized",
			id:   "21",
			body: `{"status":"failed"}`,
			setup: func(uc *mocks.MockTransactionUC) {
				uc.EXPECT().FinalizeTransaction(gomock.Any(), int64(7), int64(21), models.TransactionStatusFailed).
					Return(nil, models.ErrAlreadyFinalized)
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "ALREADY_FINALIZED",
		},
		{
			name: "unknown status",
			id:   "21",
			body: `{"status":"refunded"}`,
			setup: func(uc *mocks.MockTransactionUC) {
				uc.EXPECT().FinalizeTransaction(gomock.Any(), int64(7), int64(21), models.TransactionStatus("refunded")).
					Return(nil, models.ErrInvalidStatus)
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_STATUS",
		},
		{
			name: "debit failed",
			id:   "21",
			body: `{"status":"success"}`,
			setup: func(uc *mocks.MockTransactionUC) {
				uc.EXPECT().FinalizeTransaction(gomock.Any(), int64(7), int64(21), models.TransactionStatusSuccess).
					Return(nil, errors.Join(models.ErrBalanceUpdateFailed, errors.New("disk I/O error")))
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "BALANCE_UPDATE_FAILED",
		},
		{
			name:       "bad id",
			id:         "abc",
			body:       `{"status":"success"}`,
			setup:      func(uc *mocks.MockTransactionUC) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockUC := mocks.NewMockTransactionUC(ctrl)
			tt.setup(mockUC)
			handler := NewTransactionHandler(mockUC)

			c, rec := newContext(http.MethodPut, "/api/transactions/"+tt.id+"/status", tt.body, 7, tt.id)
			require.NoError(t, handler.UpdateStatus(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decode(t, rec)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, body["error_code"])
			}
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, body["message"])
			}
		})
	}
}
