package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus is the lifecycle state of a transaction
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusSuccess   TransactionStatus = "success"
	TransactionStatusFailed    TransactionStatus = "failed"
	TransactionStatusCancelled TransactionStatus = "cancelled"
)

// IsValid reports whether s is a known status
func (s TransactionStatus) IsValid() bool {
	switch s {
	case TransactionStatusPending, TransactionStatusSuccess, TransactionStatusFailed, TransactionStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether s is a final status
func (s TransactionStatus) IsTerminal() bool {
	return s.IsValid() && s != TransactionStatusPending
}

// DefaultMerchantName is stored when a payment names no merchant
const DefaultMerchantName = "Unknown Merchant"

// Transaction represents a payment intent and its outcome
type Transaction struct {
	ID            int64             `json:"id" db:"id"`
	UserID        int64             `json:"user_id" db:"user_id"`
	CategoryID    int64             `json:"category_id" db:"category_id"`
	Amount        decimal.Decimal   `json:"amount" db:"amount"`
	MerchantUPI   string            `json:"merchant_upi" db:"merchant_upi"`
	MerchantName  string            `json:"merchant_name" db:"merchant_name"`
	TransactionID string            `json:"transaction_id" db:"transaction_id"`
	Status        TransactionStatus `json:"status" db:"status"`
	Note          string            `json:"note" db:"note"`
	CreatedAt     time.Time         `json:"created_at" db:"created_at"`

	// populated by list and detail queries
	CategoryName  string `json:"category_name,omitempty" db:"category_name"`
	CategoryColor string `json:"category_color,omitempty" db:"category_color"`
}

// PaymentRequest represents a request to start a payment
type PaymentRequest struct {
	CategoryID   int64           `json:"category_id"`
	Amount       decimal.Decimal `json:"amount"`
	MerchantUPI  string          `json:"merchant_upi"`
	MerchantName string          `json:"merchant_name,omitempty"`
	Note         string          `json:"note,omitempty"`
}

// PaymentIntent is the result of starting a payment
type PaymentIntent struct {
	Transaction *Transaction `json:"transaction"`
	UPIURL      string       `json:"upi_url"`
}

// StatusUpdateRequest represents a request to finalize a transaction
type StatusUpdateRequest struct {
	Status TransactionStatus `json:"status"`
}

// TransactionEvent is published when a transaction changes state
type TransactionEvent struct {
	TransactionID string            `json:"transaction_id"`
	UserID        int64             `json:"user_id"`
	CategoryID    int64             `json:"category_id"`
	Amount        decimal.Decimal   `json:"amount"`
	Status        TransactionStatus `json:"status"`
	OccurredAt    time.Time         `json:"occurred_at"`
}
