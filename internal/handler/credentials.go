package handler

import (
	"net/http"
	"strings"

	"github.com/prperemyshlev/transactions-api/internal/domain"
)

const bearerScheme = "Bearer"

// TokenVerifier validates a signed access token
type TokenVerifier interface {
	Verify(token string) (*domain.AccessClaims, error)
}

// CredentialExtractor pulls verified claims out of an inbound request
type CredentialExtractor interface {
	Extract(r *http.Request) (*domain.AccessClaims, error)
}

// BearerExtractor reads an "Authorization: Bearer <token>" header
type BearerExtractor struct {
	verifier TokenVerifier
}

var _ CredentialExtractor = (*BearerExtractor)(nil)

// NewBearerExtractor creates an extractor backed by verifier
func NewBearerExtractor(verifier TokenVerifier) *BearerExtractor {
	return &BearerExtractor{verifier: verifier}
}

// Extract returns one of the domain auth errors on failure
func (e *BearerExtractor) Extract(r *http.Request) (*domain.AccessClaims, error) {
	scheme, credential, _ := strings.Cut(r.Header.Get("Authorization"), " ")
	if credential == "" {
		return nil, domain.ErrMissingCredential
	}
	if scheme != bearerScheme {
		return nil, domain.ErrInvalidScheme
	}

	claims, err := e.verifier.Verify(credential)
	if err != nil {
		return nil, domain.ErrInvalidOrExpiredToken
	}
	return claims, nil
}
