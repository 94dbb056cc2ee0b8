package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/spendly/services/transactions/handler/http"
)

// Handler registers the transaction routes
type Handler struct {
	transactionHandler *http.TransactionHandler
}

// NewHandler creates the transaction route handler
func NewHandler(transactionHandler *http.TransactionHandler) *Handler {
	return &Handler{
		transactionHandler: transactionHandler,
	}
}

// RegisterRoutes mounts the transaction routes under api behind auth. Any
// extra middleware, such as a per-user rate limiter, runs after auth.
func (h *Handler) RegisterRoutes(api *echo.Group, auth echo.MiddlewareFunc, extra ...echo.MiddlewareFunc) {
	group := api.Group("/transactions", append([]echo.MiddlewareFunc{auth}, extra...)...)
	group.GET("", h.transactionHandler.GetTransactions)
	group.POST("", h.transactionHandler.CreateTransaction)
	group.GET("/:id", h.transactionHandler.GetTransaction)
	group.PUT("/:id/status", h.transactionHandler.UpdateStatus)
}
