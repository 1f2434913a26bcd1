package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pulsefeed/pulsefeed/internal/app"
	"github.com/pulsefeed/pulsefeed/internal/auth"
	"github.com/pulsefeed/pulsefeed/internal/news"
	"github.com/pulsefeed/pulsefeed/internal/observability"
	"github.com/pulsefeed/pulsefeed/internal/users"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	var pageCache *news.PageCache
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warn("redis ping", slog.Any("error", err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Warn("redis close", slog.Any("error", err))
			}
		}()
		pageCache = news.NewPageCache(redisClient, cfg.CacheTTL)
	}

	metrics := observability.NewMetrics()

	userRepo := users.NewMemoryRepository()
	userService := users.NewService(userRepo)
	usersHandler := users.NewHandler(logger, userService)

	tokenService := auth.NewTokenService(cfg.TokenSecret, cfg.TokenTTL)
	authService := auth.NewService(userRepo, tokenService)
	authHandler := auth.NewHandler(logger, authService)

	feedClient := news.NewClient(cfg.FeedBaseURL, cfg.FeedAPIKey, cfg.FeedRegion, cfg.FeedTimeout)
	aggregator := news.NewService(logger, feedClient, pageCache, cfg.FeedRegion, metrics)
	newsHandler := news.NewHandler(logger, aggregator, userService)

	router := app.NewRouter(app.RouterParams{
		Logger:       logger,
		Config:       cfg,
		TokenService: tokenService,
		AuthHandler:  authHandler,
		UsersHandler: usersHandler,
		NewsHandler:  newsHandler,
		Metrics:      metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
