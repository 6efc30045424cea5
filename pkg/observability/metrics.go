package observability

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// PrometheusHandler returns a Gin handler for Prometheus metrics
func PrometheusHandler(handler http.Handler) gin.HandlerFunc {
	return func(c *gin.Context) {
		if handler == nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "metrics handler not initialized",
			})
			return
		}
		handler.ServeHTTP(c.Writer, c.Request)
	}
}

// AuthMetrics counts issued access tokens and rejected requests
type AuthMetrics struct {
	issued     metric.Int64Counter
	rejections metric.Int64Counter
}

// NewAuthMetrics registers the auth instruments on meter
func NewAuthMetrics(meter metric.Meter) (*AuthMetrics, error) {
	issued, err := meter.Int64Counter("auth.tokens.issued",
		metric.WithDescription("Access tokens issued"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create issued counter: %w", err)
	}

	rejections, err := meter.Int64Counter("auth.rejections",
		metric.WithDescription("Requests rejected by the access guard, by error code"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create rejections counter: %w", err)
	}

	return &AuthMetrics{issued: issued, rejections: rejections}, nil
}

func (m *AuthMetrics) TokenIssued(ctx context.Context) {
	m.issued.Add(ctx, 1)
}

func (m *AuthMetrics) Rejected(ctx context.Context, code string) {
	m.rejections.Add(ctx, 1, metric.WithAttributes(attribute.String("code", code)))
}
