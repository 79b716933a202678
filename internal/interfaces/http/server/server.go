// Package server assembles the gin engine: repositories, services,
// handlers, middleware and routes.
package server

import (
	"github.com/gin-gonic/gin"
	dashboardapp "github.com/ledgerflow/backend/internal/application/dashboard"
	financeapp "github.com/ledgerflow/backend/internal/application/finance"
	invoicingapp "github.com/ledgerflow/backend/internal/application/invoicing"
	partnerapp "github.com/ledgerflow/backend/internal/application/partner"
	securityapp "github.com/ledgerflow/backend/internal/application/security"
	settingsapp "github.com/ledgerflow/backend/internal/application/settings"
	"github.com/ledgerflow/backend/internal/infrastructure/auth"
	"github.com/ledgerflow/backend/internal/infrastructure/config"
	"github.com/ledgerflow/backend/internal/infrastructure/logger"
	"github.com/ledgerflow/backend/internal/infrastructure/persistence"
	"github.com/ledgerflow/backend/internal/interfaces/http/handler"
	"github.com/ledgerflow/backend/internal/interfaces/http/middleware"
	"github.com/ledgerflow/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

// Deps are the process-wide resources the engine is built on
type Deps struct {
	Config    *config.Config
	Database  *persistence.Database
	JWT       *auth.JWTService
	Blacklist auth.TokenBlacklist
	Logger    *zap.Logger
}

// NewEngine builds the HTTP engine. The returned stop function releases
// background resources such as rate limiter cleanup loops.
func NewEngine(deps Deps) (*gin.Engine, func(), error) {
	cfg := deps.Config
	log := deps.Logger
	db := deps.Database.DB

	middleware.SetupValidator()

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		return nil, nil, err
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log, "/api/health"))
	engine.Use(middleware.SecureWithConfig(securityConfig(cfg)))

	cors := middleware.DefaultCORSConfig()
	cors.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	cors.AllowMethods = cfg.HTTP.CORSAllowMethods
	cors.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	engine.Use(middleware.CORSWithConfig(cors))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	var limiters []*middleware.RateLimiter
	stop := func() {
		for _, l := range limiters {
			l.Stop()
		}
	}

	if cfg.HTTP.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		limiters = append(limiters, limiter)
		engine.Use(middleware.RateLimit(limiter))
	}

	var guards router.Guards
	if cfg.HTTP.AuthRateLimitEnabled {
		limiter := middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
		limiters = append(limiters, limiter)
		guards.AuthRateLimit = middleware.RateLimitByKey(limiter, func(c *gin.Context) string {
			return "auth:" + c.ClientIP()
		})
	}

	customerRepo := persistence.NewGormCustomerRepository(db)
	vendorRepo := persistence.NewGormVendorRepository(db)
	invoiceRepo := persistence.NewGormInvoiceRepository(db)
	expenseRepo := persistence.NewGormExpenseRepository(db)
	paymentRepo := persistence.NewGormPaymentRepository(db)
	settingsRepos := persistence.NewSettingsRepositories(db)

	securityService := securityapp.NewService(
		settingsRepos.Security,
		persistence.NewGormSettingsTransactor(db),
		deps.JWT,
		deps.Blacklist,
		log,
	)

	guards.Auth = middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		Authenticator: securityService,
		Required:      cfg.HTTP.RequireAuth,
		Logger:        log.Named("jwt"),
	})
	if !cfg.HTTP.RequireAuth {
		log.Warn("Bearer authentication is disabled; every bookkeeping route is public")
	}

	handlers := router.Handlers{
		Health:    handler.NewHealthHandler(deps.Database),
		Security:  handler.NewSecurityHandler(securityService),
		Customers: handler.NewCustomerHandler(partnerapp.NewCustomerService(customerRepo, log)),
		Vendors:   handler.NewVendorHandler(partnerapp.NewVendorService(vendorRepo, log)),
		Invoices:  handler.NewInvoiceHandler(invoicingapp.NewInvoiceService(invoiceRepo, customerRepo, log)),
		Expenses:  handler.NewExpenseHandler(financeapp.NewExpenseService(expenseRepo, vendorRepo, customerRepo, log)),
		Payments:  handler.NewPaymentHandler(financeapp.NewPaymentService(paymentRepo, invoiceRepo, vendorRepo, customerRepo, log)),
		Settings:  handler.NewSettingsHandler(settingsapp.NewService(settingsRepos, log)),
		Dashboard: handler.NewDashboardHandler(dashboardapp.NewService(invoiceRepo, expenseRepo, log)),
	}

	r := router.NewRouter(engine)
	router.Register(r, handlers, guards)
	r.Setup()

	return engine, stop, nil
}

func securityConfig(cfg *config.Config) middleware.SecurityConfig {
	sec := middleware.DefaultSecurityConfig()
	sec.HSTSEnabled = cfg.App.Env == config.EnvProduction
	return sec
}
