package fixtures

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/voltzpay/pix-dashboard/internal/domain/models"
)

// TransactionBuilder provides a fluent API for building test transactions.
type TransactionBuilder struct {
	transaction models.Transaction
}

// NewTransaction creates a builder with sensible defaults: a paid R$100
// charge with a 5% platform fee, created and paid now.
func NewTransaction() *TransactionBuilder {
	now := time.Now()
	fee := decimal.NewFromInt(5)
	return &TransactionBuilder{
		transaction: models.Transaction{
			ID:            uuid.New().String(),
			Amount:        decimal.NewFromInt(100),
			Status:        models.StatusPaid,
			CreatedAt:     now,
			PaidAt:        &now,
			FeePercentage: &fee,
		},
	}
}

func (b *TransactionBuilder) WithAmount(amount decimal.Decimal) *TransactionBuilder {
	b.transaction.Amount = amount
	return b
}

func (b *TransactionBuilder) WithStatus(status models.TransactionStatus) *TransactionBuilder {
	b.transaction.Status = status
	return b
}

func (b *TransactionBuilder) WithCreatedAt(t time.Time) *TransactionBuilder {
	b.transaction.CreatedAt = t
	return b
}

func (b *TransactionBuilder) WithPaidAt(t time.Time) *TransactionBuilder {
	b.transaction.PaidAt = &t
	return b
}

// WithoutPaidAt clears paid_at so classification falls back to created_at
func (b *TransactionBuilder) WithoutPaidAt() *TransactionBuilder {
	b.transaction.PaidAt = nil
	return b
}

// WithoutTimestamps clears both instants, producing a record that belongs
// only to the all-time bucket
func (b *TransactionBuilder) WithoutTimestamps() *TransactionBuilder {
	b.transaction.PaidAt = nil
	b.transaction.CreatedAt = time.Time{}
	return b
}

func (b *TransactionBuilder) WithFeePercentage(rate decimal.Decimal) *TransactionBuilder {
	b.transaction.FeePercentage = &rate
	return b
}

func (b *TransactionBuilder) WithFeeFixed(fixed decimal.Decimal) *TransactionBuilder {
	b.transaction.FeeFixed = &fixed
	return b
}

// WithoutFees clears both platform fee fields
func (b *TransactionBuilder) WithoutFees() *TransactionBuilder {
	b.transaction.FeePercentage = nil
	b.transaction.FeeFixed = nil
	return b
}

func (b *TransactionBuilder) WithAcquirer(acquirer string) *TransactionBuilder {
	b.transaction.Acquirer = acquirer
	return b
}

func (b *TransactionBuilder) WithUserID(userID string) *TransactionBuilder {
	b.transaction.UserID = userID
	return b
}

// Build returns the transaction
func (b *TransactionBuilder) Build() models.Transaction {
	return b.transaction
}

// FeeConfig builds an acquirer fee schedule for tests
func FeeConfig(defaultAcquirer string, fees map[string]models.AcquirerFees) *models.AcquirerFeeConfig {
	cfg := &models.AcquirerFeeConfig{
		Fees:            make(map[string]models.AcquirerFees),
		DefaultAcquirer: defaultAcquirer,
	}
	for name, f := range fees {
		cfg.Fees[name] = f
	}
	if _, ok := cfg.Fees[defaultAcquirer]; !ok {
		cfg.Fees[defaultAcquirer] = models.AcquirerFees{Rate: decimal.Zero, Fixed: decimal.Zero}
	}
	return cfg
}
