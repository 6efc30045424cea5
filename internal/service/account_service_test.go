package service

import (
	"context"
	"errors"
	"testing"

	"github.com/prperemyshlev/transactions-api/internal/domain"
	"github.com/prperemyshlev/transactions-api/internal/dto"
	"github.com/prperemyshlev/transactions-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryAccounts struct {
	byID   map[int64]*domain.Account
	nextID int64
	err    error
}

func newMemoryAccounts(accounts ...*domain.Account) *memoryAccounts {
	m := &memoryAccounts{byID: map[int64]*domain.Account{}, nextID: 100}
	for _, a := range accounts {
		m.byID[a.ID] = a
	}
	return m
}

func (m *memoryAccounts) Create(_ context.Context, account *domain.Account) error {
	if m.err != nil {
		return m.err
	}
	m.nextID++
	account.ID = m.nextID
	m.byID[account.ID] = account
	return nil
}

func (m *memoryAccounts) GetByID(_ context.Context, id int64) (*domain.Account, error) {
	if m.err != nil {
		return nil, m.err
	}
	a, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return a, nil
}

func (m *memoryAccounts) ListByUserID(_ context.Context, userID int64, _ repository.Page) ([]*domain.Account, error) {
	out := []*domain.Account{}
	for _, a := range m.byID {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

type memoryTransactions struct {
	created []*domain.Transaction
	listed  []int64
}

func (m *memoryTransactions) Create(_ context.Context, tx *domain.Transaction) error {
	tx.ID = int64(len(m.created) + 1)
	m.created = append(m.created, tx)
	return nil
}

func (m *memoryTransactions) ListByAccountID(_ context.Context, accountID int64, _ repository.Page) ([]*domain.Transaction, error) {
	m.listed = append(m.listed, accountID)
	return []*domain.Transaction{}, nil
}

func TestAccountService_CreateAndList(t *testing.T) {
	accounts := newMemoryAccounts(&domain.Account{ID: 1, UserID: 9})
	svc := NewAccountService(accounts, &memoryTransactions{})
	ctx := context.Background()

	created, err := svc.CreateAccount(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), created.UserID)
	assert.Equal(t, int64(101), created.ID)

	list, err := svc.ListAccounts(ctx, 42, repository.Page{Limit: 10})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
}

func TestAccountService_CreateAccount_Error(t *testing.T) {
	accounts := newMemoryAccounts()
	accounts.err = errors.New("db down")
	svc := NewAccountService(accounts, &memoryTransactions{})

	_, err := svc.CreateAccount(context.Background(), 42)
	assert.Error(t, err)
}

func TestAccountService_CreateTransaction(t *testing.T) {
	txs := &memoryTransactions{}
	svc := NewAccountService(newMemoryAccounts(&domain.Account{ID: 7, UserID: 42}), txs)

	tx, err := svc.CreateTransaction(context.Background(), 42, &dto.CreateTransactionRequest{
		AccountID: 7, Type: "deposit", Amount: 1500,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), tx.ID)
	assert.Equal(t, domain.TransactionTypeDeposit, tx.Type)
	assert.Equal(t, int64(1500), tx.Amount)
	assert.Len(t, txs.created, 1)
}

func TestAccountService_ForeignAccountHidden(t *testing.T) {
	txs := &memoryTransactions{}
	svc := NewAccountService(newMemoryAccounts(&domain.Account{ID: 7, UserID: 9}), txs)
	ctx := context.Background()

	_, err := svc.CreateTransaction(ctx, 42, &dto.CreateTransactionRequest{AccountID: 7, Type: "deposit", Amount: 1})
	assert.ErrorIs(t, err, ErrAccountNotFound)

	_, err = svc.CreateTransaction(ctx, 42, &dto.CreateTransactionRequest{AccountID: 8, Type: "deposit", Amount: 1})
	assert.ErrorIs(t, err, ErrAccountNotFound)

	_, err = svc.ListTransactions(ctx, 42, 7, repository.Page{Limit: 10})
	assert.ErrorIs(t, err, ErrAccountNotFound)

	assert.Empty(t, txs.created)
	assert.Empty(t, txs.listed)
}

func TestAccountService_ListTransactions(t *testing.T) {
	txs := &memoryTransactions{}
	svc := NewAccountService(newMemoryAccounts(&domain.Account{ID: 7, UserID: 42}), txs)

	list, err := svc.ListTransactions(context.Background(), 42, 7, repository.Page{Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Equal(t, []int64{7}, txs.listed)
}

func TestAccountService_CreateTransaction_Validation(t *testing.T) {
	svc := NewAccountService(newMemoryAccounts(&domain.Account{ID: 7, UserID: 42}), &memoryTransactions{})
	ctx := context.Background()

	_, err := svc.CreateTransaction(ctx, 42, &dto.CreateTransactionRequest{AccountID: 7, Type: "transfer", Amount: 1})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateTransaction(ctx, 42, &dto.CreateTransactionRequest{AccountID: 7, Type: "withdrawal", Amount: 0})
	assert.ErrorIs(t, err, ErrValidation)
}
