package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/prperemyshlev/transactions-api/internal/domain"
	"github.com/prperemyshlev/transactions-api/pkg/database"
)

// accountRepository implements AccountRepository interface
type accountRepository struct {
	db *database.Postgres
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *database.Postgres) AccountRepository {
	return &accountRepository{db: db}
}

// Create creates a new account and fills in its generated ID
func (r *accountRepository) Create(ctx context.Context, account *domain.Account) error {
	query := `
		INSERT INTO accounts (user_id, created_at)
		VALUES ($1, $2)
		RETURNING id
	`

	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now()
	}

	err := r.db.DB.QueryRowxContext(ctx, query, account.UserID, account.CreatedAt).Scan(&account.ID)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	return nil
}

// GetByID retrieves an account by ID
func (r *accountRepository) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	query := `SELECT id, user_id, created_at FROM accounts WHERE id = $1`

	account := &domain.Account{}
	if err := r.db.DB.GetContext(ctx, account, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("account with id %d not found: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get account by id: %w", err)
	}

	return account, nil
}

// ListByUserID retrieves a page of accounts owned by a user, newest first
func (r *accountRepository) ListByUserID(ctx context.Context, userID int64, page Page) ([]*domain.Account, error) {
	query := `
		SELECT id, user_id, created_at
		FROM accounts
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	accounts := []*domain.Account{}
	if err := r.db.DB.SelectContext(ctx, &accounts, query, userID, page.Limit, page.Offset); err != nil {
		return nil, fmt.Errorf("failed to list accounts by user id: %w", err)
	}

	return accounts, nil
}
