package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prperemyshlev/transactions-api/internal/domain"
	"github.com/prperemyshlev/transactions-api/internal/dto"
	"go.uber.org/zap"
)

const identityKey = "identity"

// RejectionRecorder counts rejected requests by error code
type RejectionRecorder interface {
	Rejected(ctx context.Context, code string)
}

// AuthMiddleware authenticates the request and binds the caller identity.
// The client never learns which check failed; the code goes to logs and metrics.
func AuthMiddleware(extractor CredentialExtractor, logger *zap.Logger, recorder RejectionRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := extractor.Extract(c.Request)
		if err != nil {
			code := domain.AuthErrInvalidOrExpiredToken
			var authErr *domain.AuthError
			if errors.As(err, &authErr) {
				code = authErr.Code
			}

			logger.Warn("request rejected",
				zap.String("code", string(code)),
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.String("ip", c.ClientIP()),
			)
			recorder.Rejected(c.Request.Context(), string(code))

			c.Header("WWW-Authenticate", bearerScheme)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error:   "Unauthorized",
				Message: "Could not validate credentials",
			})
			return
		}

		identity := domain.Identity{UserID: claims.Subject}
		c.Set(identityKey, identity)
		c.Request = c.Request.WithContext(domain.WithIdentity(c.Request.Context(), identity))

		c.Next()
	}
}

// LoginRequired rejects requests that reach it without an identity
func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentIdentity(c); !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.DetailResponse{
				Detail: "Access denied",
			})
			return
		}
		c.Next()
	}
}

// CurrentIdentity returns the identity bound by AuthMiddleware
func CurrentIdentity(c *gin.Context) (domain.Identity, bool) {
	if v, ok := c.Get(identityKey); ok {
		if identity, ok := v.(domain.Identity); ok {
			return identity, true
		}
	}
	return domain.IdentityFromContext(c.Request.Context())
}
