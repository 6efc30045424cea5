//go:build acceptance

package acceptance

import (
	"fmt"
	"net/http"

	"github.com/prperemyshlev/transactions-api/internal/domain"
	"github.com/prperemyshlev/transactions-api/internal/dto"
)

func (s *Suite) createAccount(token string) domain.Account {
	resp := s.do(http.MethodPost, "/api/v1/accounts", token, nil)
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	var account domain.Account
	s.decode(resp, &account)
	return account
}

func (s *Suite) TestAccounts_CreateAndList() {
	owner := s.register("owner@example.com")

	first := s.createAccount(owner.AccessToken)
	second := s.createAccount(owner.AccessToken)
	s.Equal(owner.User.ID, first.UserID)

	resp := s.do(http.MethodGet, "/api/v1/accounts", owner.AccessToken, nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var accounts []domain.Account
	s.decode(resp, &accounts)
	s.Require().Len(accounts, 2)
	s.Equal(second.ID, accounts[0].ID)

	resp = s.do(http.MethodGet, "/api/v1/accounts?limit=1&skip=1", owner.AccessToken, nil)
	s.decode(resp, &accounts)
	s.Require().Len(accounts, 1)
	s.Equal(first.ID, accounts[0].ID)
}

func (s *Suite) TestTransactions_CreateAndList() {
	owner := s.register("owner@example.com")
	account := s.createAccount(owner.AccessToken)

	for _, req := range []dto.CreateTransactionRequest{
		{AccountID: account.ID, Type: "deposit", Amount: 10000},
		{AccountID: account.ID, Type: "withdrawal", Amount: 2550},
	} {
		resp := s.do(http.MethodPost, "/api/v1/transactions", owner.AccessToken, req)
		resp.Body.Close()
		s.Equal(http.StatusCreated, resp.StatusCode)
	}

	resp := s.do(http.MethodGet, fmt.Sprintf("/api/v1/accounts/%d/transactions", account.ID), owner.AccessToken, nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var txs []domain.Transaction
	s.decode(resp, &txs)
	s.Require().Len(txs, 2)
	s.Equal(domain.TransactionTypeWithdrawal, txs[0].Type)
	s.Equal(int64(2550), txs[0].Amount)
}

func (s *Suite) TestTransactions_ForeignAccount() {
	owner := s.register("owner@example.com")
	intruder := s.register("intruder@example.com")
	account := s.createAccount(owner.AccessToken)

	resp := s.do(http.MethodPost, "/api/v1/transactions", intruder.AccessToken, dto.CreateTransactionRequest{
		AccountID: account.ID, Type: "withdrawal", Amount: 100,
	})
	s.Equal(http.StatusNotFound, resp.StatusCode)

	var detail dto.DetailResponse
	s.decode(resp, &detail)
	s.Equal("Account not found.", detail.Detail)

	resp = s.do(http.MethodGet, fmt.Sprintf("/api/v1/accounts/%d/transactions", account.ID), intruder.AccessToken, nil)
	resp.Body.Close()
	s.Equal(http.StatusNotFound, resp.StatusCode)
}
