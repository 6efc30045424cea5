//go:build acceptance

package acceptance

import (
	"net/http"

	"github.com/prperemyshlev/transactions-api/internal/dto"
)

func (s *Suite) TestRegister_Success() {
	authResp := s.register("test@example.com")

	s.NotEmpty(authResp.AccessToken)
	s.Equal("Bearer", authResp.TokenType)
	s.Equal(1800, authResp.ExpiresIn)
	s.Equal("test@example.com", authResp.User.Email)
	s.NotZero(authResp.User.ID)
}

func (s *Suite) TestRegister_DuplicateEmail() {
	s.register("duplicate@example.com")

	resp := s.do(http.MethodPost, "/api/v1/auth/register", "", dto.RegisterRequest{
		Email:    "duplicate@example.com",
		Password: testPassword,
	})
	s.Equal(http.StatusConflict, resp.StatusCode)

	var errResp dto.ErrorResponse
	s.decode(resp, &errResp)
	s.Equal("Conflict", errResp.Error)
}

func (s *Suite) TestRegister_InvalidInput() {
	for _, req := range []dto.RegisterRequest{
		{Email: "invalid-email", Password: testPassword},
		{Email: "test@example.com", Password: "short"},
	} {
		resp := s.do(http.MethodPost, "/api/v1/auth/register", "", req)
		resp.Body.Close()
		s.Equal(http.StatusBadRequest, resp.StatusCode, req.Email)
	}
}

func (s *Suite) TestLogin_Success() {
	s.register("login@example.com")

	resp := s.do(http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{
		Email:    "login@example.com",
		Password: testPassword,
	})
	s.Equal(http.StatusOK, resp.StatusCode)

	var authResp dto.AuthResponse
	s.decode(resp, &authResp)
	s.NotEmpty(authResp.AccessToken)
	s.Equal("login@example.com", authResp.User.Email)
}

func (s *Suite) TestLogin_InvalidCredentials() {
	s.register("wrongpass@example.com")

	for _, req := range []dto.LoginRequest{
		{Email: "nonexistent@example.com", Password: testPassword},
		{Email: "wrongpass@example.com", Password: "WrongPassword123"},
	} {
		resp := s.do(http.MethodPost, "/api/v1/auth/login", "", req)
		s.Equal(http.StatusUnauthorized, resp.StatusCode, req.Email)

		var errResp dto.ErrorResponse
		s.decode(resp, &errResp)
		s.Equal("Unauthorized", errResp.Error)
	}
}

func (s *Suite) TestGetMe() {
	authResp := s.register("getme@example.com")

	resp := s.do(http.MethodGet, "/api/v1/auth/me", authResp.AccessToken, nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var userResp dto.UserResponse
	s.decode(resp, &userResp)
	s.Equal(authResp.User.ID, userResp.ID)
	s.Equal("getme@example.com", userResp.Email)
	s.NotEmpty(userResp.CreatedAt)
}

func (s *Suite) TestGetMe_Unauthorized() {
	for _, token := range []string{"", "garbage"} {
		resp := s.do(http.MethodGet, "/api/v1/auth/me", token, nil)
		resp.Body.Close()
		s.Equal(http.StatusUnauthorized, resp.StatusCode)
	}
}
