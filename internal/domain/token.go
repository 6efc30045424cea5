package domain

import (
	"errors"
	"math"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessClaims is the signed payload of an access token.
// Timestamps are seconds since the epoch with sub-second precision.
type AccessClaims struct {
	Issuer    string  `json:"iss"`
	Subject   int64   `json:"sub"`
	Audience  string  `json:"aud"`
	ExpiresAt float64 `json:"exp"`
	IssuedAt  float64 `json:"iat"`
	NotBefore float64 `json:"nbf"`
	ID        string  `json:"jti"`
}

var _ jwt.Claims = (*AccessClaims)(nil)

// UnixSeconds converts t to the float representation used in the claims.
// Precision is one microsecond, which survives the float64 round trip exactly.
func UnixSeconds(t time.Time) float64 {
	return float64(t.UnixMicro()) / 1e6
}

func fromUnixSeconds(s float64) time.Time {
	return time.UnixMicro(int64(math.Round(s * 1e6)))
}

func numericDate(s float64) *jwt.NumericDate {
	if s == 0 {
		return nil
	}
	return &jwt.NumericDate{Time: fromUnixSeconds(s)}
}

func (c *AccessClaims) GetExpirationTime() (*jwt.NumericDate, error) {
	return numericDate(c.ExpiresAt), nil
}

func (c *AccessClaims) GetIssuedAt() (*jwt.NumericDate, error) {
	return numericDate(c.IssuedAt), nil
}

func (c *AccessClaims) GetNotBefore() (*jwt.NumericDate, error) {
	return numericDate(c.NotBefore), nil
}

func (c *AccessClaims) GetIssuer() (string, error) {
	return c.Issuer, nil
}

func (c *AccessClaims) GetSubject() (string, error) {
	return strconv.FormatInt(c.Subject, 10), nil
}

func (c *AccessClaims) GetAudience() (jwt.ClaimStrings, error) {
	if c.Audience == "" {
		return nil, nil
	}
	return jwt.ClaimStrings{c.Audience}, nil
}

// Validate is called by the jwt parser after the registered claims pass.
// Every field issued by the codec must be present.
func (c *AccessClaims) Validate() error {
	switch {
	case c.Issuer == "":
		return errors.New("iss missing")
	case c.ExpiresAt <= c.IssuedAt:
		return errors.New("exp not after iat")
	case c.IssuedAt == 0:
		return errors.New("iat missing")
	case c.NotBefore == 0:
		return errors.New("nbf missing")
	case c.ID == "":
		return errors.New("jti missing")
	}
	return nil
}
