package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prperemyshlev/transactions-api/internal/dto"
	"github.com/prperemyshlev/transactions-api/internal/repository"
	"github.com/prperemyshlev/transactions-api/internal/service"
	"go.uber.org/zap"
)

const accountNotFound = "Account not found."

// AccountHandler serves the caller's accounts and transactions.
// Every route expects AuthMiddleware and LoginRequired in front of it.
type AccountHandler struct {
	accounts service.AccountService
	logger   *zap.Logger
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accounts service.AccountService, logger *zap.Logger) *AccountHandler {
	return &AccountHandler{accounts: accounts, logger: logger}
}

// CreateAccount opens an account for the caller
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	identity, _ := CurrentIdentity(c)

	account, err := h.accounts.CreateAccount(c.Request.Context(), identity.UserID)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, account)
}

// ListAccounts lists the caller's accounts
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}
	identity, _ := CurrentIdentity(c)

	accounts, err := h.accounts.ListAccounts(c.Request.Context(), identity.UserID, page)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, accounts)
}

// ListTransactions lists transactions of one of the caller's accounts
func (h *AccountHandler) ListTransactions(c *gin.Context) {
	accountID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || accountID <= 0 {
		c.JSON(http.StatusNotFound, dto.DetailResponse{Detail: accountNotFound})
		return
	}
	page, ok := bindPage(c)
	if !ok {
		return
	}
	identity, _ := CurrentIdentity(c)

	txs, err := h.accounts.ListTransactions(c.Request.Context(), identity.UserID, accountID, page)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, txs)
}

// CreateTransaction records a deposit or withdrawal
func (h *AccountHandler) CreateTransaction(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Validation failed",
			Message: err.Error(),
		})
		return
	}
	identity, _ := CurrentIdentity(c)

	tx, err := h.accounts.CreateTransaction(c.Request.Context(), identity.UserID, &req)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, tx)
}

func (h *AccountHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAccountNotFound):
		c.JSON(http.StatusNotFound, dto.DetailResponse{Detail: accountNotFound})
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.DetailResponse{Detail: err.Error()})
	default:
		h.logger.Error("account request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.DetailResponse{Detail: "Internal server error."})
	}
}

func bindPage(c *gin.Context) (repository.Page, bool) {
	var q dto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Validation failed",
			Message: err.Error(),
		})
		return repository.Page{}, false
	}
	return repository.Page{Limit: q.Limit, Offset: q.Skip}, true
}
