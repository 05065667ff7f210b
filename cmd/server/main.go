package main

import (
	"context"   // Startup timeouts and shutdown
	"errors"    // Server close detection
	"net/http"  // HTTP server
	"os"        // Signals
	"os/signal" // Signal notification
	"syscall"   // SIGTERM
	"time"      // Timeouts

	"github.com/gin-contrib/pprof"                            // Profiling endpoints
	"github.com/gin-gonic/gin"                                // Gin web framework
	"github.com/prometheus/client_golang/prometheus/promhttp" // Metrics endpoint
	"github.com/redis/go-redis/v9"                            // Redis client
	"github.com/sirupsen/logrus"                              // Logrus for structured logging
	"golang.org/x/sync/errgroup"                              // Server lifecycle

	"trivia_backend/internal/account"    // Account service
	"trivia_backend/internal/api"        // HTTP handlers
	"trivia_backend/internal/catalog"    // Question catalog
	"trivia_backend/internal/config"     // Configuration
	"trivia_backend/internal/credential" // Credential schemes
	"trivia_backend/internal/db"         // Database open and migration
	"trivia_backend/internal/middleware" // Request logging
	"trivia_backend/internal/store"      // Account stores
	"trivia_backend/internal/telemetry"  // Redis instrumentation
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	setupLogger(cfg)

	scheme, err := credential.Parse(cfg.CredentialScheme)
	if err != nil {
		logrus.Fatalf("invalid CREDENTIAL_SCHEME: %v", err)
	}

	accounts, closeStore, err := openStore(cfg, scheme)
	if err != nil {
		logrus.Fatalf("failed to open account store: %v", err) // Fatal error if the store is unreachable
	}
	defer closeStore()

	// The question file is loaded once; a missing or empty file stops startup
	questions, err := catalog.LoadFile(cfg.QuestionsPath)
	if err != nil {
		logrus.Fatalf("failed to load questions from %s: %v", cfg.QuestionsPath, err)
	}
	logrus.WithFields(logrus.Fields{
		"questions":  questions.Len(),
		"categories": len(questions.Categories()),
	}).Info("Question catalog loaded")

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.New()
	r.Use(middleware.RequestLogger(), gin.Recovery())

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler())) // Prometheus scrape endpoint
	if !cfg.IsProd {
		pprof.Register(r, "/debug/pprof") // Profiling outside production only
	}

	api.Register(r, api.Config{
		Accounts:  account.NewService(account.Config{Store: accounts}),
		Questions: questions,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           r,
		ReadHeaderTimeout: 60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		logrus.Info("Server running on " + cfg.AppPort) // Log server start
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	eg.Go(func() error {
		<-egCtx.Done() // Signal received or the listener failed
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := eg.Wait(); err != nil {
		logrus.Errorf("server stopped with error: %v", err)
		return
	}
	logrus.Info("Server stopped")
}

// setupLogger configures the global logrus logger
func setupLogger(cfg *config.Config) {
	if cfg.IsProd {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.Warnf("unknown LOG_LEVEL %q, using info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

// openStore builds the account store selected by ACCOUNT_STORE. The returned
// func releases its connections.
func openStore(cfg *config.Config, scheme credential.Scheme) (store.AccountStore, func(), error) {
	switch cfg.AccountStore {
	case "redis":
		// Setup Redis client
		rdb := redis.NewUniversalClient(&redis.UniversalOptions{
			Addrs:    []string{cfg.RedisAddr}, // Redis server address
			Password: cfg.RedisPass,           // Redis password
			DB:       cfg.RedisDB,             // Redis database number
		})
		if err := telemetry.MonitorRedis(rdb); err != nil {
			return nil, nil, err
		}

		// Test Redis connection
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, nil, err
		}
		return store.NewRedisStore(rdb, cfg.RedisPrefix, scheme), func() { _ = rdb.Close() }, nil

	case "", "sql":
		conn, err := db.Open(cfg)
		if err != nil {
			return nil, nil, err
		}
		// A local SQLite file is created on first start; MySQL is migrated by cmd/migrate
		if cfg.DBDriver == db.DriverSQLite {
			if err := db.Migrate(conn); err != nil {
				return nil, nil, err
			}
		}
		closeFn := func() {
			if sqlDB, err := conn.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		return store.NewGormStore(conn, scheme), closeFn, nil
	}
	return nil, nil, errors.New("unsupported ACCOUNT_STORE " + cfg.AccountStore)
}
