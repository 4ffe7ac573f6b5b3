package stats

import (
	"github.com/shopspring/decimal"

	"github.com/voltzpay/pix-dashboard/internal/domain/models"
)

var hundred = decimal.NewFromInt(100)

// GrossProfit returns what the platform earns from the payer on one charge:
// amount * fee_percentage / 100 + fee_fixed, with absent fee fields
// resolving to zero
func GrossProfit(tx *models.Transaction) decimal.Decimal {
	percent := tx.Amount.Mul(tx.PlatformFeeRate()).Div(hundred)
	return percent.Add(tx.PlatformFeeFixed())
}

// AcquirerCost returns what the platform pays the acquirer for processing
// one charge, using the fee schedule resolved for the transaction's
// acquirer (default acquirer when absent or unrecognized)
func AcquirerCost(tx *models.Transaction, cfg *models.AcquirerFeeConfig) decimal.Decimal {
	fees := cfg.Resolve(tx.Acquirer)
	return tx.Amount.Mul(fees.Rate).Div(hundred).Add(fees.Fixed)
}

// NetProfit returns gross minus acquirer cost for one charge. It can be
// negative when the acquirer cost exceeds the platform fee; callers must
// preserve the sign, not clamp it.
func NetProfit(tx *models.Transaction, cfg *models.AcquirerFeeConfig) decimal.Decimal {
	return GrossProfit(tx).Sub(AcquirerCost(tx, cfg))
}
