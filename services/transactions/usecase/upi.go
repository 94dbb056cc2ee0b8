package usecase

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/spendly/internal/pkg/models"
)

const (
	linkMerchantName = "Merchant"
	// UPI links are rupee only
	linkCurrency = "INR"
)

// newTransactionID returns TXN, the creation time in unix millis and a
// random suffix
func newTransactionID(now int64) string {
	return "TXN" + strconv.FormatInt(now, 10) + uuid.New().String()[:8]
}

// buildUPIURL renders the upi://pay intent for tx. Values are percent
// encoded with spaces as %20.
func buildUPIURL(tx *models.Transaction, merchantName string) string {
	if merchantName == "" {
		merchantName = linkMerchantName
	}
	note := tx.Note
	if note == "" {
		note = "Payment via Spendly - " + tx.TransactionID
	}

	var b strings.Builder
	b.WriteString("upi://pay?pa=")
	b.WriteString(escape(tx.MerchantUPI))
	b.WriteString("&pn=")
	b.WriteString(escape(merchantName))
	b.WriteString("&am=")
	b.WriteString(tx.Amount.String())
	b.WriteString("&cu=")
	b.WriteString(linkCurrency)
	b.WriteString("&tn=")
	b.WriteString(escape(note))
	return b.String()
}

func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
