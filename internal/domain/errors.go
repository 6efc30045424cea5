package domain

// AuthErrorCode is a stable identifier of an authentication failure, safe to log and export as a metric label
type AuthErrorCode string

const (
	AuthErrMissingCredential     AuthErrorCode = "missing_credential"
	AuthErrInvalidScheme         AuthErrorCode = "invalid_scheme"
	AuthErrInvalidOrExpiredToken AuthErrorCode = "invalid_or_expired_token"
	AuthErrAccessDenied          AuthErrorCode = "access_denied"
)

// AuthError is a terminal rejection at the request boundary
type AuthError struct {
	Code    AuthErrorCode
	Message string
}

// Error implements the error interface
func (e *AuthError) Error() string {
	return e.Message
}

var (
	// ErrMissingCredential is returned when no bearer token is supplied
	ErrMissingCredential = &AuthError{Code: AuthErrMissingCredential, Message: "missing credential"}

	// ErrInvalidScheme is returned when the authorization scheme is not Bearer
	ErrInvalidScheme = &AuthError{Code: AuthErrInvalidScheme, Message: "invalid authentication scheme"}

	// ErrInvalidOrExpiredToken covers every token verification failure
	ErrInvalidOrExpiredToken = &AuthError{Code: AuthErrInvalidOrExpiredToken, Message: "invalid or expired token"}

	// ErrAccessDenied is returned when no identity is bound to an authenticated route
	ErrAccessDenied = &AuthError{Code: AuthErrAccessDenied, Message: "access denied"}
)
