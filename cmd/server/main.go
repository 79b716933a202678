package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/ledgerflow/backend/internal/infrastructure/auth"
	"github.com/ledgerflow/backend/internal/infrastructure/config"
	"github.com/ledgerflow/backend/internal/infrastructure/logger"
	"github.com/ledgerflow/backend/internal/infrastructure/migration"
	"github.com/ledgerflow/backend/internal/infrastructure/persistence"
	"github.com/ledgerflow/backend/internal/interfaces/http/server"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

//	@title			LedgerFlow API
//	@version		1.0
//	@description	Invoicing and bookkeeping backend for a single small business

//	@BasePath	/api

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	if err := run(cfg, log); err != nil {
		log.Fatal("Server stopped with error", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	log.Info("Starting LedgerFlow Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("database", cfg.Database.Driver),
	)

	if !cfg.App.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Database.LogLevel), logger.DefaultSlowQueryThreshold)
	db, err := persistence.NewDatabase(&cfg.Database, gormLog)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	if cfg.Database.AutoMigrate {
		if err := migrateSchema(cfg, db, log); err != nil {
			return err
		}
	}

	jwtService, err := newJWTService(cfg, log)
	if err != nil {
		return err
	}

	blacklist, err := newBlacklist(cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := blacklist.Close(); err != nil {
			log.Error("Error closing token blacklist", zap.Error(err))
		}
	}()

	engine, stop, err := server.NewEngine(server.Deps{
		Config:    cfg,
		Database:  db,
		JWT:       jwtService,
		Blacklist: blacklist,
		Logger:    log,
	})
	if err != nil {
		return fmt.Errorf("build http engine: %w", err)
	}
	defer stop()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		return fmt.Errorf("http server: %w", err)
	case sig := <-quit:
		log.Info("Shutting down server", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	log.Info("Server exited")
	return nil
}

// migrateSchema brings the schema up to date. PostgreSQL runs the versioned
// migrations on a dedicated connection, since closing the migrator closes
// its handle; SQLite uses gorm's AutoMigrate.
func migrateSchema(cfg *config.Config, db *persistence.Database, log *zap.Logger) error {
	if db.Driver() == config.DriverSQLite {
		if err := db.AutoMigrate(); err != nil {
			return fmt.Errorf("auto-migrate sqlite schema: %w", err)
		}
		log.Info("SQLite schema migrated")
		return nil
	}

	sqlDB, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	m, err := migration.New(sqlDB, "", log)
	if err != nil {
		_ = sqlDB.Close()
		return err
	}
	defer func() {
		if err := m.Close(); err != nil {
			log.Warn("Error closing migrator", zap.Error(err))
		}
	}()
	return m.Up()
}

func newJWTService(cfg *config.Config, log *zap.Logger) (*auth.JWTService, error) {
	jwtCfg := cfg.JWT
	if jwtCfg.Secret == "" {
		secret, err := auth.RandomSecret()
		if err != nil {
			return nil, err
		}
		jwtCfg.Secret = secret
		log.Warn("jwt.secret is not set; using a random key, tokens will not survive a restart")
	}
	return auth.NewJWTService(jwtCfg)
}

func newBlacklist(cfg *config.Config, log *zap.Logger) (auth.TokenBlacklist, error) {
	if !cfg.Redis.Enabled {
		log.Info("Using in-memory token blacklist")
		return auth.NewInMemoryTokenBlacklist(), nil
	}

	blacklist, err := auth.NewRedisTokenBlacklist(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}
	log.Info("Using Redis token blacklist", zap.String("addr", cfg.Redis.Addr()))
	return blacklist, nil
}
