package repository

import (
	"github.com/prperemyshlev/transactions-api/pkg/database"
)

// Repositories holds all repository interfaces
type Repositories struct {
	User        UserRepository
	Account     AccountRepository
	Transaction TransactionRepository
}

// NewRepositories creates all repositories
func NewRepositories(db *database.Postgres) *Repositories {
	return &Repositories{
		User:        NewUserRepository(db),
		Account:     NewAccountRepository(db),
		Transaction: NewTransactionRepository(db),
	}
}
