package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/prperemyshlev/transactions-api/internal/domain"
	"github.com/prperemyshlev/transactions-api/internal/dto"
	"github.com/prperemyshlev/transactions-api/internal/repository"
)

// accountService implements AccountService interface
type accountService struct {
	accountRepo     repository.AccountRepository
	transactionRepo repository.TransactionRepository
}

// NewAccountService creates a new account service
func NewAccountService(accountRepo repository.AccountRepository, transactionRepo repository.TransactionRepository) AccountService {
	return &accountService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}
}

// CreateAccount opens a new account for the user
func (s *accountService) CreateAccount(ctx context.Context, userID int64) (*domain.Account, error) {
	account := &domain.Account{UserID: userID}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// ListAccounts lists the user's accounts
func (s *accountService) ListAccounts(ctx context.Context, userID int64, page repository.Page) ([]*domain.Account, error) {
	return s.accountRepo.ListByUserID(ctx, userID, page)
}

// ListTransactions lists transactions of an account owned by the user
func (s *accountService) ListTransactions(ctx context.Context, userID, accountID int64, page repository.Page) ([]*domain.Transaction, error) {
	if _, err := s.ownedAccount(ctx, userID, accountID); err != nil {
		return nil, err
	}
	return s.transactionRepo.ListByAccountID(ctx, accountID, page)
}

// CreateTransaction records a deposit or withdrawal on an account owned by the user
func (s *accountService) CreateTransaction(ctx context.Context, userID int64, req *dto.CreateTransactionRequest) (*domain.Transaction, error) {
	txType := domain.TransactionType(req.Type)
	if !txType.Valid() {
		return nil, fmt.Errorf("unknown transaction type %q: %w", req.Type, ErrValidation)
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("amount must be positive: %w", ErrValidation)
	}

	if _, err := s.ownedAccount(ctx, userID, req.AccountID); err != nil {
		return nil, err
	}

	tx := &domain.Transaction{
		AccountID: req.AccountID,
		Type:      txType,
		Amount:    req.Amount,
	}
	if err := s.transactionRepo.Create(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

// ownedAccount hides accounts of other users behind ErrAccountNotFound
func (s *accountService) ownedAccount(ctx context.Context, userID, accountID int64) (*domain.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	if account.UserID != userID {
		return nil, ErrAccountNotFound
	}
	return account, nil
}
