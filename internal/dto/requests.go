package dto

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,password"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CreateTransactionRequest records a deposit or withdrawal.
// Amount is in minor units (cents).
type CreateTransactionRequest struct {
	AccountID int64  `json:"account_id" binding:"required,gt=0"`
	Type      string `json:"type" binding:"required,oneof=deposit withdrawal"`
	Amount    int64  `json:"amount" binding:"required,gt=0"`
}

// PageQuery is the pagination query string shared by list endpoints
type PageQuery struct {
	Limit int `form:"limit,default=10" binding:"min=1,max=100"`
	Skip  int `form:"skip,default=0" binding:"min=0"`
}
