package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/piresc/spendly/internal/pkg/logger"
	"github.com/piresc/spendly/internal/pkg/middleware"
	"github.com/piresc/spendly/internal/pkg/models"
	"github.com/piresc/spendly/internal/utils"
	"github.com/piresc/spendly/services/transactions"
)

// TransactionHandler handles HTTP requests for transaction operations
type TransactionHandler struct {
	transactionUC transactions.TransactionUC
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(
	transactionUC transactions.TransactionUC,
) *TransactionHandler {
	return &TransactionHandler{
		transactionUC: transactionUC,
	}
}

// GetTransactions lists the caller's latest transactions
func (h *TransactionHandler) GetTransactions(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	list, err := h.transactionUC.ListTransactions(c.Request().Context(), userID)
	if err != nil {
		logger.Error("Failed to fetch transactions",
			logger.Int64("user_id", userID),
			logger.ErrorField(err))
		return utils.DomainErrorResponse(c, err, "Failed to fetch transactions")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transactions retrieved successfully", map[string]interface{}{
		"transactions": list,
	})
}

// GetTransaction returns one transaction by its numeric ID
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := parseID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	tx, err := h.transactionUC.GetTransaction(c.Request().Context(), userID, id)
	if err != nil {
		return utils.DomainErrorResponse(c, err, "Failed to fetch transaction")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transaction retrieved successfully", map[string]interface{}{
		"transaction": tx,
	})
}

// CreateTransaction validates a payment, records it as pending and returns
// the UPI intent URL
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.PaymentRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for payment",
			logger.ErrorField(err),
			logger.String("endpoint", "CreateTransaction"))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	intent, err := h.transactionUC.InitiatePayment(c.Request().Context(), userID, &req)
	if err != nil {
		logger.Warn("Payment rejected",
			logger.Int64("user_id", userID),
			logger.Int64("category_id", req.CategoryID),
			logger.ErrorField(err))
		return utils.DomainErrorResponse(c, err, "Failed to create transaction record")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Transaction initiated successfully", intent)
}

// UpdateStatus finalizes a pending transaction
func (h *TransactionHandler) UpdateStatus(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := parseID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	var req models.StatusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	tx, err := h.transactionUC.FinalizeTransaction(c.Request().Context(), userID, id, req.Status)
	if err != nil {
		logger.Warn("Failed to finalize transaction",
			logger.Int64("user_id", userID),
			logger.Int64("id", id),
			logger.String("status", string(req.Status)),
			logger.ErrorField(err))
		return utils.DomainErrorResponse(c, err, "Failed to update transaction status")
	}

	message := "Transaction status updated"
	if tx.Status == models.TransactionStatusSuccess {
		message = "Transaction completed successfully"
	}
	return utils.SuccessResponse(c, http.StatusOK, message, map[string]interface{}{
		"transaction": tx,
		"status":      tx.Status,
	})
}

func parseID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
