package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/prperemyshlev/transactions-api/internal/domain"
	"github.com/prperemyshlev/transactions-api/pkg/database"
)

// transactionRepository implements TransactionRepository interface
type transactionRepository struct {
	db *database.Postgres
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *database.Postgres) TransactionRepository {
	return &transactionRepository{db: db}
}

// Create records a transaction and fills in its generated ID
func (r *transactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	query := `
		INSERT INTO transactions (account_id, type, amount, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now()
	}

	err := r.db.DB.QueryRowxContext(ctx, query, tx.AccountID, tx.Type, tx.Amount, tx.CreatedAt).Scan(&tx.ID)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	return nil
}

// ListByAccountID retrieves a page of an account's transactions, newest first
func (r *transactionRepository) ListByAccountID(ctx context.Context, accountID int64, page Page) ([]*domain.Transaction, error) {
	query := `
		SELECT id, account_id, type, amount, created_at
		FROM transactions
		WHERE account_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	txs := []*domain.Transaction{}
	if err := r.db.DB.SelectContext(ctx, &txs, query, accountID, page.Limit, page.Offset); err != nil {
		return nil, fmt.Errorf("failed to list transactions by account id: %w", err)
	}

	return txs, nil
}
