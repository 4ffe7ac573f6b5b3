package converters

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// NumericToDecimal converts a pgtype.Numeric to a decimal.Decimal
// Invalid or NaN values resolve to zero, never to an error
func NumericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.NaN || n.Int == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(n.Int, n.Exp)
}

// NumericToDecimalPtr converts a nullable pgtype.Numeric to *decimal.Decimal
// Returns nil when the column is NULL
func NumericToDecimalPtr(n pgtype.Numeric) *decimal.Decimal {
	if !n.Valid {
		return nil
	}
	d := NumericToDecimal(n)
	return &d
}

// DecimalToNumeric converts a decimal.Decimal to a pgtype.Numeric
func DecimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{Int: d.Coefficient(), Exp: d.Exponent(), Valid: true}
}

// TextOrEmpty returns empty string when the column is NULL
func TextOrEmpty(t pgtype.Text) string {
	if !t.Valid {
		return ""
	}
	return t.String
}

// TimestamptzToTimePtr converts a nullable pgtype.Timestamptz to *time.Time
// Returns nil when the column is NULL
func TimestamptzToTimePtr(ts pgtype.Timestamptz) *time.Time {
	if !ts.Valid {
		return nil
	}
	t := ts.Time
	return &t
}
