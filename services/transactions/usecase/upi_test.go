package usecase

import (
	"strings"
	"testing"

	"github.com/piresc/spendly/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestBuildUPIURL(t *testing.T) {
	tests := []struct {
		name         string
		tx           models.Transaction
		merchantName string
		want         string
	}{
		{
			name: "defaults",
			tx: models.Transaction{
				Amount:        dec("2000"),
				MerchantUPI:   "shop@upi",
				TransactionID: "TXN1712000000000abcd1234",
			},
			want: "upi://pay?pa=shop%40upi&pn=Merchant&am=2000&cu=INR&tn=Payment%20via%20Spendly%20-%20TXN1712000000000abcd1234",
		},
		{
			name: "merchant and note",
			tx: models.Transaction{
				Amount:        dec("149.50"),
				MerchantUPI:   "cafe.blr@okaxis",
				TransactionID: "TXN1",
				Note:          "Coffee & snacks",
			},
			merchantName: "Blue Tokai",
			want:         "upi://pay?pa=cafe.blr%40okaxis&pn=Blue%20Tokai&am=149.5&cu=INR&tn=Coffee%20%26%20snacks",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildUPIURL(&tt.tx, tt.merchantName))
		})
	}
}

func TestNewTransactionID(t *testing.T) {
	a := newTransactionID(1712000000000)
	b := newTransactionID(1712000000000)

	assert.True(t, strings.HasPrefix(a, "TXN1712000000000"))
	assert.Len(t, a, len("TXN1712000000000")+8)
	assert.NotEqual(t, a, b)
}
