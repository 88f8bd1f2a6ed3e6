package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/knowtes-backend/internal/adapter/postgres"
	noterepo "github.com/heartmarshall/knowtes-backend/internal/adapter/postgres/note"
	statrepo "github.com/heartmarshall/knowtes-backend/internal/adapter/postgres/summarystat"
	topicrepo "github.com/heartmarshall/knowtes-backend/internal/adapter/postgres/topic"
	userrepo "github.com/heartmarshall/knowtes-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/knowtes-backend/internal/adapter/provider/openrouter"
	"github.com/heartmarshall/knowtes-backend/internal/adapter/redis"
	"github.com/heartmarshall/knowtes-backend/internal/auth"
	"github.com/heartmarshall/knowtes-backend/internal/config"
	authsvc "github.com/heartmarshall/knowtes-backend/internal/service/auth"
	"github.com/heartmarshall/knowtes-backend/internal/service/note"
	"github.com/heartmarshall/knowtes-backend/internal/service/summary"
	"github.com/heartmarshall/knowtes-backend/internal/service/topic"
	usersvc "github.com/heartmarshall/knowtes-backend/internal/service/user"
	"github.com/heartmarshall/knowtes-backend/internal/transport/middleware"
	"github.com/heartmarshall/knowtes-backend/internal/transport/rest"
	"github.com/heartmarshall/knowtes-backend/migrations"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL and Redis, wires services into the HTTP router and serves until
// ctx is cancelled, then shuts the server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := migrate(ctx, pool, logger); err != nil {
			return err
		}
	}

	redisClient, err := redis.NewClient(ctx, cfg.Redis.URL)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	ai := openrouter.NewClient(openrouter.Config{
		BaseURL:     cfg.AI.BaseURL,
		APIKey:      cfg.AI.APIKey,
		Model:       cfg.AI.Model,
		Temperature: cfg.AI.Temperature,
		Timeout:     cfg.AI.Timeout,
		SiteURL:     cfg.AI.SiteURL,
		AppName:     cfg.AI.AppName,
	}, logger)
	defer ai.Close()

	handler := NewHandler(cfg, logger, pool, redisClient, ai)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.Server.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("application stopped")
	return nil
}

func migrate(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	m, err := postgres.NewMigrator(pool, migrations.FS, logger)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(ctx); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// NewHandler wires repositories, stores and services into the HTTP API.
func NewHandler(
	cfg *config.Config,
	logger *slog.Logger,
	pool *pgxpool.Pool,
	redisClient *goredis.Client,
	ai *openrouter.Client,
) http.Handler {
	// Repositories.
	users := userrepo.New(pool)
	topics := topicrepo.New(pool)
	notes := noterepo.New(pool)
	stats := statrepo.New(pool)
	txm := postgres.NewTxManager(pool)

	sessions := redis.NewSessionStore(redisClient, cfg.Redis.KeyPrefix)
	limiter := redis.NewFixedWindowLimiter(redisClient, cfg.Redis.KeyPrefix)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	// Services.
	authService := authsvc.NewService(logger, users, sessions, jwtManager, cfg.Auth)
	userService := usersvc.NewService(logger, users)
	topicService := topic.NewService(logger, topics, notes)
	noteService := note.NewService(logger, notes, topics)
	summaryService := summary.NewService(logger, txm, topics, notes, stats, ai,
		summary.Config{MaxTokens: cfg.Summary.MaxTokens})

	health := rest.NewHealthHandler(pool, Version).
		WithComponent("redis", rest.PingFunc(func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}))

	return rest.NewRouter(rest.RouterDeps{
		Logger:      logger,
		Auth:        rest.NewAuthHandler(authService, logger),
		Users:       rest.NewUserHandler(userService, logger),
		Topics:      rest.NewTopicHandler(topicService, logger),
		Notes:       rest.NewNoteHandler(noteService, logger),
		Summaries:   rest.NewSummaryHandler(summaryService, logger),
		Health:      health,
		Tokens:      authService,
		RateLimiter: middleware.NewRateLimiter(limiter, logger),
		CORS:        cfg.CORS,
		Limits:      cfg.RateLimit,
	})
}
