package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus represents the lifecycle state of a PIX charge
type TransactionStatus string

const (
	StatusGenerated TransactionStatus = "generated" // QR code issued, awaiting payment
	StatusPaid      TransactionStatus = "paid"      // Payer settled the charge
	StatusExpired   TransactionStatus = "expired"   // Charge expired unpaid
)

// Transaction represents one PIX charge as recorded by the payment
// processing subsystem. It is read-only to the dashboard engine.
type Transaction struct {
	ID            string            `json:"id"`
	Amount        decimal.Decimal   `json:"amount"`
	Status        TransactionStatus `json:"status"`
	CreatedAt     time.Time         `json:"created_at"`
	PaidAt        *time.Time        `json:"paid_at,omitempty"`
	FeePercentage *decimal.Decimal  `json:"fee_percentage,omitempty"` // platform fee rate charged to the payer
	FeeFixed      *decimal.Decimal  `json:"fee_fixed,omitempty"`
	Acquirer      string            `json:"acquirer,omitempty"` // empty means the configured default acquirer
	UserID        string            `json:"user_id,omitempty"`
}

// IsPaid returns true if the charge was settled by the payer
func (t *Transaction) IsPaid() bool {
	return t.Status == StatusPaid
}

// ClassificationInstant returns the instant used for period classification:
// paid_at when present, created_at otherwise. A zero return means the
// transaction carries no usable timestamp and belongs only to the all-time
// bucket.
func (t *Transaction) ClassificationInstant() time.Time {
	if t.PaidAt != nil && !t.PaidAt.IsZero() {
		return *t.PaidAt
	}
	return t.CreatedAt
}

// PlatformFeeRate returns the fee_percentage with absent values resolved to 0
func (t *Transaction) PlatformFeeRate() decimal.Decimal {
	if t.FeePercentage == nil {
		return decimal.Zero
	}
	return *t.FeePercentage
}

// PlatformFeeFixed returns the fee_fixed with absent values resolved to 0
func (t *Transaction) PlatformFeeFixed() decimal.Decimal {
	if t.FeeFixed == nil {
		return decimal.Zero
	}
	return *t.FeeFixed
}

// AcquirerFees holds the cost charged by one acquirer for processing a charge
type AcquirerFees struct {
	Rate  decimal.Decimal `json:"rate"`  // percentage of the charge amount
	Fixed decimal.Decimal `json:"fixed"` // flat amount per charge
}

// AcquirerFeeConfig maps acquirer identifiers to their fee schedule.
// DefaultAcquirer names the entry used when a transaction carries an
// absent or unrecognized acquirer id. The substitution is an explicit
// configuration decision, never inferred from the data.
type AcquirerFeeConfig struct {
	Fees            map[string]AcquirerFees `json:"fees"`
	DefaultAcquirer string                  `json:"default_acquirer"`
}

// Resolve returns the fee schedule for the given acquirer id, falling back
// to the default acquirer's entry. Missing entries resolve to zero fees.
func (c *AcquirerFeeConfig) Resolve(acquirer string) AcquirerFees {
	if acquirer != "" {
		if fees, ok := c.Fees[acquirer]; ok {
			return fees
		}
	}
	if fees, ok := c.Fees[c.DefaultAcquirer]; ok {
		return fees
	}
	return AcquirerFees{Rate: decimal.Zero, Fixed: decimal.Zero}
}

// ResolveName returns the acquirer id a transaction's costs are attributed
// to: the transaction's own id when configured, else the default acquirer.
func (c *AcquirerFeeConfig) ResolveName(acquirer string) string {
	if acquirer != "" {
		if _, ok := c.Fees[acquirer]; ok {
			return acquirer
		}
	}
	return c.DefaultAcquirer
}
