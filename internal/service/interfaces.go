package service

import (
	"context"
	"time"

	"github.com/prperemyshlev/transactions-api/internal/domain"
	"github.com/prperemyshlev/transactions-api/internal/dto"
	"github.com/prperemyshlev/transactions-api/internal/repository"
)

// TokenIssuer signs access tokens for authenticated users
type TokenIssuer interface {
	Issue(userID int64) (string, error)
	TTL() time.Duration
}

// AuthService defines methods for authentication operations
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	GetUser(ctx context.Context, userID int64) (*dto.UserResponse, error)
}

// AccountService defines methods for account and transaction operations.
// Every method is scoped to the calling user.
type AccountService interface {
	CreateAccount(ctx context.Context, userID int64) (*domain.Account, error)
	ListAccounts(ctx context.Context, userID int64, page repository.Page) ([]*domain.Account, error)
	ListTransactions(ctx context.Context, userID, accountID int64, page repository.Page) ([]*domain.Transaction, error)
	CreateTransaction(ctx context.Context, userID int64, req *dto.CreateTransactionRequest) (*domain.Transaction, error)
}
