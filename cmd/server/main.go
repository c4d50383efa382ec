// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/ithalar/team-registration/internal/auth/middleware"
	authRouter "github.com/ithalar/team-registration/internal/auth/router"
	appConfig "github.com/ithalar/team-registration/internal/config"
	"github.com/ithalar/team-registration/internal/database"
	"github.com/ithalar/team-registration/internal/database/migrate"
	"github.com/ithalar/team-registration/internal/health"
	httpMiddleware "github.com/ithalar/team-registration/internal/middleware"
	registrationRouter "github.com/ithalar/team-registration/internal/registration/router"
	reviewRouter "github.com/ithalar/team-registration/internal/review/router"
	"github.com/ithalar/team-registration/internal/storage"
	webRouter "github.com/ithalar/team-registration/internal/web/router"
	"github.com/ithalar/team-registration/pkg/logger"
)

func main() {
	// Load .env if present; real environments set variables directly.
	_ = godotenv.Load()

	cfg := appConfig.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	appLogger, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer appLogger.Sync() //nolint:errcheck

	gin.SetMode(cfg.GinMode)

	db, err := database.New()
	if err != nil {
		appLogger.Fatalw("failed to connect to database", "error", err)
	}
	defer database.Close(db) //nolint:errcheck

	if err := migrate.Migrate(db); err != nil {
		appLogger.Fatalw("failed to apply migrations", "error", err)
	}

	store, err := newStore(cfg.Storage)
	if err != nil {
		appLogger.Fatalw("failed to create blob store", "error", err)
	}

	r := gin.New()
	r.Use(httpMiddleware.Logger(appLogger, cfg.Storage.LocalBaseURL))
	r.Use(httpMiddleware.Recovery(appLogger))
	r.LoadHTMLGlob("web/templates/*.html")

	sessionStore := cookie.NewStore([]byte(cfg.Session.Secret))
	sessionStore.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.Session.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   cfg.Session.Secure,
	})
	r.Use(sessions.Sessions(cfg.Session.CookieName, sessionStore))

	if cfg.Storage.Backend == appConfig.StorageBackendLocal {
		r.Static(cfg.Storage.LocalBaseURL, cfg.Storage.LocalRoot)
	}

	authSvc := authRouter.RegisterRoutes(r, db, appLogger)
	registrationRouter.RegisterRoutes(r, db, store, appLogger)
	reviewRouter.RegisterRoutes(r, db, middleware.RequireAPI, appLogger)
	webRouter.RegisterRoutes(r, db, store, appLogger)

	r.GET("/health", health.New(db, appLogger).Check)

	// Bootstrap the first admin account when credentials are provided.
	if email, password := os.Getenv("ADMIN_EMAIL"), os.Getenv("ADMIN_PASSWORD"); email != "" && password != "" {
		if err := authSvc.EnsureAdmin(context.Background(), email, password); err != nil {
			appLogger.Fatalw("failed to bootstrap admin account", "error", err)
		}
	}

	srv := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Infow("server starting", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatalw("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Infow("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Errorw("forced shutdown", "error", err)
	}
}

// newStore selects the blob store backend from configuration.
func newStore(cfg appConfig.StorageConfig) (storage.Store, error) {
	switch cfg.Backend {
	case appConfig.StorageBackendS3:
		return storage.NewS3Store(context.Background(), cfg)
	default:
		return storage.NewLocalStore(cfg.LocalRoot, cfg.LocalBaseURL)
	}
}
