package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prperemyshlev/transactions-api/internal/config"
	"github.com/prperemyshlev/transactions-api/internal/handler"
	"github.com/prperemyshlev/transactions-api/internal/repository"
	"github.com/prperemyshlev/transactions-api/internal/service"
	"github.com/prperemyshlev/transactions-api/internal/utils"
	"github.com/prperemyshlev/transactions-api/pkg/observability"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

const (
	serviceName     = "transactions-api"
	shutdownTimeout = 5 * time.Second
)

type App struct {
	infra  Infrastructure
	config *config.Config
	router *gin.Engine
	server *http.Server
}

func NewApp(infra Infrastructure, cfg *config.Config) (*App, error) {
	if err := utils.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	jwtManager, err := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Audience)
	if err != nil {
		return nil, fmt.Errorf("failed to create token codec: %w", err)
	}

	authMetrics, err := observability.NewAuthMetrics(infra.Meter())
	if err != nil {
		return nil, fmt.Errorf("failed to create auth metrics: %w", err)
	}

	repos := repository.NewRepositories(infra.Postgres())
	rateLimiter := service.NewRateLimiter(infra.Redis())
	healthChecker := NewHealthChecker(infra)

	authService := service.NewAuthService(repos.User, jwtManager, authMetrics, infra.Logger(), cfg.Security.BCryptCost)
	accountService := service.NewAccountService(repos.Account, repos.Transaction)

	routes := &routes{
		auth:         handler.NewAuthHandler(authService, infra.Logger()),
		accounts:     handler.NewAccountHandler(accountService, infra.Logger()),
		health:       healthChecker,
		requireAuth:  handler.AuthMiddleware(handler.NewBearerExtractor(jwtManager), infra.Logger(), authMetrics),
		loginLimiter: handler.RateLimitMiddleware(rateLimiter, cfg.Security.RateLimitRequests, cfg.Security.RateLimitWindow.Duration, handler.IPBasedKey, infra.Logger()),
		metrics:      infra.MetricsHandler(),
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	if err := router.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(serviceName))
	router.Use(handler.LoggerMiddleware(infra.Logger()))
	router.Use(cors.New(corsConfig(cfg.CORS)))

	routes.register(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout.Duration,
		WriteTimeout: cfg.Server.WriteTimeout.Duration,
	}

	return &App{
		infra:  infra,
		config: cfg,
		router: router,
		server: srv,
	}, nil
}

func (a *App) Router() *gin.Engine {
	return a.router
}

func corsConfig(cfg config.CORSConfig) cors.Config {
	c := cors.Config{
		AllowMethods: cfg.AllowedMethods,
		AllowHeaders: cfg.AllowedHeaders,
		MaxAge:       12 * time.Hour,
	}
	for _, origin := range cfg.AllowedOrigins {
		if origin == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	c.AllowOrigins = cfg.AllowedOrigins
	c.AllowCredentials = true
	return c
}

type routes struct {
	auth         *handler.AuthHandler
	accounts     *handler.AccountHandler
	health       *HealthChecker
	requireAuth  gin.HandlerFunc
	loginLimiter gin.HandlerFunc
	metrics      http.Handler
}

func (r *routes) register(router *gin.Engine) {
	router.GET("/metrics", observability.PrometheusHandler(r.metrics))
	router.GET("/health", r.health.Handler)

	api := router.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", r.loginLimiter, r.auth.Register)
			auth.POST("/login", r.loginLimiter, r.auth.Login)
			auth.GET("/me", r.requireAuth, handler.LoginRequired(), r.auth.GetMe)
		}

		accounts := api.Group("/accounts", r.requireAuth, handler.LoginRequired())
		{
			accounts.POST("", r.accounts.CreateAccount)
			accounts.GET("", r.accounts.ListAccounts)
			accounts.GET("/:id/transactions", r.accounts.ListTransactions)
		}

		transactions := api.Group("/transactions", r.requireAuth, handler.LoginRequired())
		{
			transactions.POST("", r.accounts.CreateTransaction)
		}
	}
}

func (a *App) Run(ctx context.Context) error {
	errChan := make(chan error, 1)

	go func() {
		a.infra.Logger().Info("Application starting",
			zap.String("host", a.config.Server.Host),
			zap.String("port", a.config.Server.Port),
		)

		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.infra.Logger().Error("Server error", zap.Error(err))
			errChan <- err
		}
	}()

	var serverErr error
	select {
	case err := <-errChan:
		a.infra.Logger().Error("Application failed to start", zap.Error(err))
		serverErr = err
	case <-ctx.Done():
		a.infra.Logger().Info("Application stopped by context")
	}

	if err := a.Shutdown(); err != nil {
		if serverErr != nil {
			return errors.Join(serverErr, err)
		}
		return err
	}

	return serverErr
}

// Shutdown drains the HTTP server first, then releases infrastructure
func (a *App) Shutdown() error {
	a.infra.Logger().Info("Application shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := errors.Join(a.server.Shutdown(ctx), a.infra.Shutdown(ctx))
	if err != nil {
		a.infra.Logger().Error("Shutdown failed", zap.Error(err))
		return err
	}

	a.infra.Logger().Info("Application exited successfully")
	return nil
}
