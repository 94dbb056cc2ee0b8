package usecase_test

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/piresc/spendly/internal/pkg/database"
	"github.com/piresc/spendly/internal/pkg/models"
	categorygw "github.com/piresc/spendly/services/categories/gateway"
	categoryrepo "github.com/piresc/spendly/services/categories/repository"
	categoryuc "github.com/piresc/spendly/services/categories/usecase"
	transactiongw "github.com/piresc/spendly/services/transactions/gateway"
	transactionrepo "github.com/piresc/spendly/services/transactions/repository"
	"github.com/piresc/spendly/services/transactions/usecase"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ledger struct {
	categories   *categoryuc.CategoryUC
	transactions *usecase.TransactionUC
	txRepo       *transactionrepo.TransactionRepo
	userID       int64
}

func setupLedger(t *testing.T, salary string) *ledger {
	dbCfg := models.DatabaseConfig{
		Driver: database.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "spendly.db"),
	}
	client, err := database.NewSQLClient(dbCfg)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	require.NoError(t, database.RunMigrations(dbCfg))

	db := client.GetDB()
	var userID int64
	require.NoError(t, db.QueryRowx(
		`INSERT INTO users (email, password, name, salary) VALUES (?, ?, ?, ?) RETURNING id`,
		"asha@example.com", "hash", "Asha", salary,
	).Scan(&userID))

	cfg := &models.Config{Budget: models.BudgetConfig{
		DefaultColor: models.DefaultCategoryColor,
		HistoryLimit: 50,
	}}
	txRepo := transactionrepo.NewTransactionRepository(cfg, db)

	return &ledger{
		categories:   categoryuc.NewCategoryUC(categoryrepo.NewCategoryRepository(cfg, db), categorygw.NewCategoryGW(nil), cfg),
		transactions: usecase.NewTransactionUC(txRepo, transactiongw.NewTransactionGW(nil), cfg),
		txRepo:       txRepo,
		userID:       userID,
	}
}

func (l *ledger) balance(t *testing.T, categoryID int64) decimal.Decimal {
	category, err := l.txRepo.GetCategory(context.Background(), l.userID, categoryID)
	require.NoError(t, err)
	return category.CurrentBalance
}

func TestSalaryToPaymentScenario(t *testing.T) {
	l := setupLedger(t, "50000")
	ctx := context.Background()

	food, err := l.categories.CreateCategory(ctx, l.userID, &models.CategoryRequest{
		Name:       "Food",
		Percentage: decimal.NewFromInt(25),
	})
	require.NoError(t, err)

	_, err = l.categories.RecalculateBalances(ctx, l.userID)
	require.NoError(t, err)
	assert.True(t, l.balance(t, food.ID).Equal(decimal.NewFromInt(12500)))

	intent, err := l.transactions.InitiatePayment(ctx, l.userID, &models.PaymentRequest{
		CategoryID:  food.ID,
		Amount:      decimal.NewFromInt(2000),
		MerchantUPI: "shop@upi",
	})
	require.NoError(t, err)
	assert.Equal(t, models.TransactionStatusPending, intent.Transaction.Status)
	assert.Contains(t, intent.UPIURL, "am=2000")
	assert.Contains(t, intent.UPIURL, "pa=shop%40upi")
	assert.True(t, l.balance(t, food.ID).Equal(decimal.NewFromInt(12500)), "initiating must not debit")

	done, err := l.transactions.FinalizeTransaction(ctx, l.userID, intent.Transaction.ID, models.TransactionStatusSuccess)
	require.NoError(t, err)
	assert.Equal(t, models.TransactionStatusSuccess, done.Status)
	assert.True(t, l.balance(t, food.ID).Equal(decimal.NewFromInt(10500)))

	_, err = l.transactions.FinalizeTransaction(ctx, l.userID, intent.Transaction.ID, models.TransactionStatusFailed)
	assert.ErrorIs(t, err, models.ErrAlreadyFinalized)
	assert.True(t, l.balance(t, food.ID).Equal(decimal.NewFromInt(10500)))

	history, err := l.transactions.ListTransactions(ctx, l.userID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Food", history[0].CategoryName)
	assert.Equal(t, models.TransactionStatusSuccess, history[0].Status)
	assert.True(t, strings.HasPrefix(history[0].TransactionID, "TXN"))
}

func TestFailedPaymentKeepsBalance(t *testing.T) {
	l := setupLedger(t, "40000")
	ctx := context.Background()

	rent, err := l.categories.CreateCategory(ctx, l.userID, &models.CategoryRequest{
		Name:        "Rent",
		FixedAmount: decimal.NewFromInt(15000),
	})
	require.NoError(t, err)
	_, err = l.categories.RecalculateBalances(ctx, l.userID)
	require.NoError(t, err)

	intent, err := l.transactions.InitiatePayment(ctx, l.userID, &models.PaymentRequest{
		CategoryID:   rent.ID,
		Amount:       decimal.NewFromInt(15000),
		MerchantUPI:  "landlord@okhdfc",
		MerchantName: "Landlord",
	})
	require.NoError(t, err)

	_, err = l.transactions.FinalizeTransaction(ctx, l.userID, intent.Transaction.ID, models.TransactionStatusFailed)
	require.NoError(t, err)
	assert.True(t, l.balance(t, rent.ID).Equal(decimal.NewFromInt(15000)))
}

func TestConcurrentFinalizeDebitsOnce(t *testing.T) {
	l := setupLedger(t, "50000")
	ctx := context.Background()

	food, err := l.categories.CreateCategory(ctx, l.userID, &models.CategoryRequest{
		Name:       "Food",
		Percentage: decimal.NewFromInt(25),
	})
	require.NoError(t, err)
	_, err = l.categories.RecalculateBalances(ctx, l.userID)
	require.NoError(t, err)

	intent, err := l.transactions.InitiatePayment(ctx, l.userID, &models.PaymentRequest{
		CategoryID:  food.ID,
		Amount:      decimal.NewFromInt(2000),
		MerchantUPI: "shop@upi",
	})
	require.NoError(t, err)

	const callers = 4
	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = l.transactions.FinalizeTransaction(ctx, l.userID, intent.Transaction.ID, models.TransactionStatusSuccess)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, models.ErrAlreadyFinalized)
	}
	assert.Equal(t, 1, succeeded)
	assert.True(t, l.balance(t, food.ID).Equal(decimal.NewFromInt(10500)))
}

func TestFractionalPaymentsDebitExactly(t *testing.T) {
	l := setupLedger(t, "1")
	ctx := context.Background()

	snacks, err := l.categories.CreateCategory(ctx, l.userID, &models.CategoryRequest{
		Name:       "Snacks",
		Percentage: decimal.NewFromInt(30),
	})
	require.NoError(t, err)
	_, err = l.categories.RecalculateBalances(ctx, l.userID)
	require.NoError(t, err)
	assert.Equal(t, "0.3", l.balance(t, snacks.ID).String())

	pay := func(amount string) {
		intent, err := l.transactions.InitiatePayment(ctx, l.userID, &models.PaymentRequest{
			CategoryID:  snacks.ID,
			Amount:      decimal.RequireFromString(amount),
			MerchantUPI: "kiosk@upi",
		})
		require.NoError(t, err)
		_, err = l.transactions.FinalizeTransaction(ctx, l.userID, intent.Transaction.ID, models.TransactionStatusSuccess)
		require.NoError(t, err)
	}

	pay("0.1")
	assert.Equal(t, "0.2", l.balance(t, snacks.ID).String())

	pay("0.2")
	assert.True(t, l.balance(t, snacks.ID).IsZero(), "got %s", l.balance(t, snacks.ID))

	history, err := l.transactions.ListTransactions(ctx, l.userID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "0.2", history[0].Amount.String())
}

func TestCategoryNamesCollideAcrossUnicodeCase(t *testing.T) {
	l := setupLedger(t, "50000")
	ctx := context.Background()

	_, err := l.categories.CreateCategory(ctx, l.userID, &models.CategoryRequest{
		Name:       "Épargne",
		Percentage: decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	_, err = l.categories.CreateCategory(ctx, l.userID, &models.CategoryRequest{
		Name:       "éPARGNE",
		Percentage: decimal.NewFromInt(5),
	})
	assert.ErrorIs(t, err, models.ErrDuplicateName)

	created, err := l.categories.BulkCreateCategories(ctx, l.userID, []models.CategoryRequest{
		{Name: "ÉPARGNE", FixedAmount: decimal.NewFromInt(100)},
		{Name: "Straße", FixedAmount: decimal.NewFromInt(100)},
	})
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, "Straße", created[0].Name)
}
