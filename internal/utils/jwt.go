package utils

import (
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/prperemyshlev/transactions-api/internal/domain"
)

// AccessTokenTTL is the fixed lifetime of an access token
const AccessTokenTTL = 30 * time.Minute

var signingMethod = jwt.SigningMethodHS256

// JWTManager issues and verifies access tokens.
// It holds no mutable state and is safe for concurrent use.
type JWTManager struct {
	secret   []byte
	issuer   string
	audience string
	now      func() time.Time
	parser   *jwt.Parser
}

// JWTOption customises a JWTManager
type JWTOption func(*JWTManager)

// WithClock replaces the wall clock used for issuance and expiry checks
func WithClock(now func() time.Time) JWTOption {
	return func(j *JWTManager) {
		j.now = now
	}
}

// NewJWTManager creates a new JWT manager.
// An empty secret, issuer or audience is a configuration error.
func NewJWTManager(secret, issuer, audience string, opts ...JWTOption) (*JWTManager, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	if issuer == "" || audience == "" {
		return nil, errors.New("jwt issuer and audience are required")
	}

	j := &JWTManager{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}

	j.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
		jwt.WithAudience(audience),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(j.now),
	)

	return j, nil
}

// Issue generates a signed access token for userID
func (j *JWTManager) Issue(userID int64) (string, error) {
	now := j.now().Truncate(time.Microsecond)
	issuedAt := domain.UnixSeconds(now)

	claims := &domain.AccessClaims{
		Issuer:    j.issuer,
		Subject:   userID,
		Audience:  j.audience,
		ExpiresAt: domain.UnixSeconds(now.Add(AccessTokenTTL)),
		IssuedAt:  issuedAt,
		NotBefore: issuedAt,
		ID:        newTokenID(),
	}

	tokenString, err := jwt.NewWithClaims(signingMethod, claims).SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Verify parses and validates an access token.
// Every failure collapses into domain.ErrInvalidOrExpiredToken.
func (j *JWTManager) Verify(tokenString string) (*domain.AccessClaims, error) {
	claims := &domain.AccessClaims{}

	token, err := j.parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return j.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrInvalidOrExpiredToken
	}

	return claims, nil
}

// TTL returns the access token lifetime
func (j *JWTManager) TTL() time.Duration {
	return AccessTokenTTL
}

// newTokenID returns 128 random bits rendered as hex
func newTokenID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}
