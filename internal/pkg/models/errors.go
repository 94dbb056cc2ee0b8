package models

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"
)

// AppError is a user-facing domain error with a stable code and the HTTP
// status it maps to
type AppError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Status  int                    `json:"-"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Is matches any AppError carrying the same code, so errors built with
// extra details still match their sentinel.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code
}

func newAppError(code string, status int, message string) *AppError {
	return &AppError{Code: code, Message: message, Status: status}
}

// Budget errors
var (
	ErrInvalidAmount         = newAppError("INVALID_AMOUNT", http.StatusBadRequest, "Amount must be a positive number")
	ErrInvalidPercentage     = newAppError("INVALID_PERCENTAGE", http.StatusBadRequest, "Percentage must be between 0 and 100")
	ErrConflictingAllocation = newAppError("CONFLICTING_ALLOCATION", http.StatusBadRequest, "Set either a percentage or a fixed amount, not both")
	ErrInvalidCategoryName   = newAppError("INVALID_CATEGORY_NAME", http.StatusBadRequest, "Category name is required")
	ErrDuplicateName         = newAppError("DUPLICATE_NAME", http.StatusBadRequest, "Category with this name already exists")
	ErrEmptyBatch            = newAppError("EMPTY_BATCH", http.StatusBadRequest, "Categories array is required")
	ErrCategoryNotFound      = newAppError("CATEGORY_NOT_FOUND", http.StatusNotFound, "Category not found")
	ErrInvalidUpiFormat      = newAppError("INVALID_UPI_FORMAT", http.StatusBadRequest, "Invalid UPI ID format")
	ErrInsufficientBalance   = newAppError("INSUFFICIENT_BALANCE", http.StatusBadRequest, "Insufficient balance in category")
	ErrNoSalarySet           = newAppError("NO_SALARY_SET", http.StatusBadRequest, "Please set your salary first")
	ErrRecalculationFailed   = newAppError("RECALCULATION_FAILED", http.StatusInternalServerError, "Failed to recalculate balances")
	ErrInvalidStatus         = newAppError("INVALID_STATUS", http.StatusBadRequest, "Status must be one of success, failed or cancelled")
	ErrTransactionNotFound   = newAppError("TRANSACTION_NOT_FOUND", http.StatusNotFound, "Transaction not found")
	ErrAlreadyFinalized      = newAppError("ALREADY_FINALIZED", http.StatusBadRequest, "Transaction has already been processed")
	ErrBalanceUpdateFailed   = newAppError("BALANCE_UPDATE_FAILED", http.StatusInternalServerError, "Failed to update category balance")
)

// Account errors
var (
	ErrMissingFields       = newAppError("MISSING_FIELDS", http.StatusBadRequest, "Email, password, and name are required")
	ErrInvalidEmail        = newAppError("INVALID_EMAIL", http.StatusBadRequest, "Please enter a valid email address")
	ErrInvalidPhone        = newAppError("INVALID_PHONE", http.StatusBadRequest, "Please enter a valid phone number")
	ErrWeakPassword        = newAppError("WEAK_PASSWORD", http.StatusBadRequest, "Password must be at least 6 characters long")
	ErrEmailTaken          = newAppError("EMAIL_TAKEN", http.StatusConflict, "An account with this email already exists")
	ErrPhoneTaken          = newAppError("PHONE_TAKEN", http.StatusConflict, "An account with this phone number already exists")
	ErrInvalidCredentials  = newAppError("INVALID_CREDENTIALS", http.StatusUnauthorized, "Invalid email or password")
	ErrUserNotFound        = newAppError("USER_NOT_FOUND", http.StatusNotFound, "No account found with this email")
	ErrInvalidSalary       = newAppError("INVALID_SALARY", http.StatusBadRequest, "Salary must be a positive number")
	ErrInvalidName         = newAppError("INVALID_NAME", http.StatusBadRequest, "Name is required")
	ErrOTPNotFound         = newAppError("OTP_NOT_FOUND", http.StatusBadRequest, "OTP not found or expired")
	ErrOTPAttemptsExceeded = newAppError("OTP_ATTEMPTS_EXCEEDED", http.StatusBadRequest, "Too many failed attempts. Please request a new OTP")
	ErrOTPInvalid          = newAppError("OTP_INVALID", http.StatusBadRequest, "Invalid OTP")
	ErrOTPNotVerified      = newAppError("OTP_NOT_VERIFIED", http.StatusForbidden, "Verify the OTP before resetting your password")
	ErrOTPDeliveryFailed   = newAppError("OTP_DELIVERY_FAILED", http.StatusInternalServerError, "Failed to send OTP email")
)

// NewInsufficientBalanceError reports the balance still available in the
// category. It matches ErrInsufficientBalance with errors.Is.
func NewInsufficientBalanceError(available decimal.Decimal) *AppError {
	return &AppError{
		Code:    ErrInsufficientBalance.Code,
		Status:  ErrInsufficientBalance.Status,
		Message: fmt.Sprintf("Insufficient balance in category. Available: ₹%s", available.StringFixed(2)),
		Details: map[string]interface{}{"available": available},
	}
}

// ValidationError collects every violation found while checking a payment
type ValidationError struct {
	Violations []*AppError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Message)
	}
	return strings.Join(msgs, "; ")
}

// Unwrap exposes the violations to errors.Is and errors.As
func (e *ValidationError) Unwrap() []error {
	errs := make([]error, 0, len(e.Violations))
	for _, v := range e.Violations {
		errs = append(errs, v)
	}
	return errs
}

// Status returns the HTTP status of the first violation
func (e *ValidationError) Status() int {
	if len(e.Violations) == 0 {
		return http.StatusBadRequest
	}
	return e.Violations[0].Status
}

// AsAppError returns the AppError carried by err, if any
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
