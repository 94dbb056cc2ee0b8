package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/piresc/spendly/internal/pkg/logger"
	"github.com/piresc/spendly/internal/pkg/models"
	"github.com/piresc/spendly/services/transactions"
)

// ListTransactions returns the user's most recent transactions, newest first
func (uc *TransactionUC) ListTransactions(ctx context.Context, userID int64) ([]*models.Transaction, error) {
	return uc.transactionRepo.ListByUser(ctx, userID, uc.historyLimit())
}

// GetTransaction returns a single transaction owned by the user
func (uc *TransactionUC) GetTransaction(ctx context.Context, userID, id int64) (*models.Transaction, error) {
	return uc.transactionRepo.GetByID(ctx, userID, id)
}

// InitiatePayment records a pending transaction and returns the UPI intent
// that hands the payment to an external app. Balances are not touched.
func (uc *TransactionUC) InitiatePayment(ctx context.Context, userID int64, req *models.PaymentRequest) (*models.PaymentIntent, error) {
	req.MerchantUPI = strings.TrimSpace(req.MerchantUPI)
	req.MerchantName = strings.TrimSpace(req.MerchantName)

	category, err := uc.ValidatePayment(ctx, userID, req)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	merchantName := req.MerchantName
	if merchantName == "" {
		merchantName = models.DefaultMerchantName
	}

	tx := &models.Transaction{
		UserID:        userID,
		CategoryID:    category.ID,
		Amount:        req.Amount,
		MerchantUPI:   req.MerchantUPI,
		MerchantName:  merchantName,
		TransactionID: newTransactionID(now.UnixMilli()),
		Status:        models.TransactionStatusPending,
		Note:          req.Note,
		CreatedAt:     now.UTC(),
		CategoryName:  category.Name,
		CategoryColor: category.Color,
	}
	if err := uc.transactionRepo.Create(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("Transaction initiated",
		logger.Int64("user_id", userID),
		logger.String("transaction_id", tx.TransactionID),
		logger.Stringer("amount", tx.Amount))

	uc.publish(ctx, tx, uc.transactionGW.PublishTransactionInitiated)

	return &models.PaymentIntent{
		Transaction: tx,
		UPIURL:      buildUPIURL(tx, req.MerchantName),
	}, nil
}

// FinalizeTransaction moves a pending transaction to status. A successful
// payment debits its category in the same database transaction as the
// status change, so a failed debit leaves the transaction pending.
func (uc *TransactionUC) FinalizeTransaction(ctx context.Context, userID, id int64, status models.TransactionStatus) (*models.Transaction, error) {
	if !status.IsTerminal() {
		return nil, models.ErrInvalidStatus
	}

	var finalized *models.Transaction
	var debitErr error
	err := uc.transactionRepo.WithinTx(ctx, func(repo transactions.TransactionRepo) error {
		tx, err := repo.GetByID(ctx, userID, id)
		if err != nil {
			return err
		}
		if tx.Status != models.TransactionStatusPending {
			return models.ErrAlreadyFinalized
		}

		swapped, err := repo.CompareAndSetStatus(ctx, userID, id, models.TransactionStatusPending, status)
		if err != nil {
			return err
		}
		if !swapped {
			return models.ErrAlreadyFinalized
		}

		if status == models.TransactionStatusSuccess {
			if err := repo.DebitCategory(ctx, userID, tx.CategoryID, tx.Amount); err != nil {
				debitErr = err
				return err
			}
		}

		tx.Status = status
		finalized = tx
		return nil
	})
	if debitErr != nil {
		logger.Error("Failed to debit category, transaction left pending",
			logger.Int64("user_id", userID),
			logger.Int64("id", id),
			logger.ErrorField(debitErr))
		return nil, fmt.Errorf("%w: %v", models.ErrBalanceUpdateFailed, debitErr)
	}
	if err != nil {
		return nil, err
	}

	logger.Info("Transaction finalized",
		logger.Int64("user_id", userID),
		logger.String("transaction_id", finalized.TransactionID),
		logger.String("status", string(status)))

	uc.publish(ctx, finalized, uc.transactionGW.PublishTransactionFinalized)

	return finalized, nil
}

func (uc *TransactionUC) publish(ctx context.Context, tx *models.Transaction, send func(context.Context, *models.TransactionEvent) error) {
	event := &models.TransactionEvent{
		TransactionID: tx.TransactionID,
		UserID:        tx.UserID,
		CategoryID:    tx.CategoryID,
		Amount:        tx.Amount,
		Status:        tx.Status,
		OccurredAt:    uc.now().UTC(),
	}
	if err := send(ctx, event); err != nil {
		logger.Warn("Failed to publish transaction event",
			logger.String("transaction_id", tx.TransactionID),
			logger.String("status", string(tx.Status)),
			logger.ErrorField(err))
	}
}
