package repository

import (
	"context"

	"github.com/prperemyshlev/transactions-api/internal/domain"
)

// Page bounds a list query
type Page struct {
	Limit  int
	Offset int
}

// UserRepository defines methods for user operations
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	UpdateLastLogin(ctx context.Context, userID int64) error
}

// AccountRepository defines methods for account operations
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
	ListByUserID(ctx context.Context, userID int64, page Page) ([]*domain.Account, error)
}

// TransactionRepository defines methods for transaction operations
type TransactionRepository interface {
	Create(ctx context.Context, tx *domain.Transaction) error
	ListByAccountID(ctx context.Context, accountID int64, page Page) ([]*domain.Transaction, error)
}
