package domain

import "time"

// Account is a current account owned by a single user
type Account struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// TransactionType is either a deposit or a withdrawal
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "deposit"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
)

// Valid reports whether t is a known transaction type
func (t TransactionType) Valid() bool {
	return t == TransactionTypeDeposit || t == TransactionTypeWithdrawal
}

// Transaction is an immutable record posted to an account.
// Amount is expressed in minor units (cents) and is always positive;
// the direction is carried by Type.
type Transaction struct {
	ID        int64           `json:"id" db:"id"`
	AccountID int64           `json:"account_id" db:"account_id"`
	Type      TransactionType `json:"type" db:"type"`
	Amount    int64           `json:"amount" db:"amount"`
	CreatedAt time.Time       `json:"timestamp" db:"created_at"`
}
