package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/voltzpay/pix-dashboard/internal/converters"
	"github.com/voltzpay/pix-dashboard/internal/domain/models"
)

// fetchTransactionsSQL orders by (created_at, id) so repeated fetches over
// unchanged data return the same sequence and aggregation stays
// deterministic
const fetchTransactionsSQL = `
SELECT id, amount, status, created_at, paid_at,
       fee_percentage, fee_fixed, acquirer, user_id
FROM transactions
ORDER BY created_at, id`

// TransactionRepository implements ports.TransactionSource over the
// transactions table written by the payment-processing subsystem
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

// FetchTransactions returns every transaction visible to the dashboard
func (r *TransactionRepository) FetchTransactions(ctx context.Context) ([]models.Transaction, error) {
	rows, err := r.pool.Query(ctx, fetchTransactionsSQL)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var (
			id            uuid.UUID
			amount        pgtype.Numeric
			status        string
			createdAt     pgtype.Timestamptz
			paidAt        pgtype.Timestamptz
			feePercentage pgtype.Numeric
			feeFixed      pgtype.Numeric
			acquirer      pgtype.Text
			userID        pgtype.Text
		)
		if err := rows.Scan(&id, &amount, &status, &createdAt, &paidAt,
			&feePercentage, &feeFixed, &acquirer, &userID); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}

		tx := models.Transaction{
			ID:            id.String(),
			Amount:        converters.NumericToDecimal(amount),
			Status:        models.TransactionStatus(status),
			PaidAt:        converters.TimestamptzToTimePtr(paidAt),
			FeePercentage: converters.NumericToDecimalPtr(feePercentage),
			FeeFixed:      converters.NumericToDecimalPtr(feeFixed),
			Acquirer:      converters.TextOrEmpty(acquirer),
			UserID:        converters.TextOrEmpty(userID),
		}
		// A NULL created_at leaves the zero time: the engine keeps such
		// rows in the all-time figures but outside every dated window.
		if createdAt.Valid {
			tx.CreatedAt = createdAt.Time
		}

		transactions = append(transactions, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}

	return transactions, nil
}
