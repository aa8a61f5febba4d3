package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ticketdesk/config"
	configPostgre "ticketdesk/config/postgre"
	configRedis "ticketdesk/config/redis"
	"ticketdesk/internal/httpserver"
	"ticketdesk/internal/middleware"
	userHTTP "ticketdesk/internal/user/delivery/http"
	userPostgre "ticketdesk/internal/user/repository/postgre"
	userRedis "ticketdesk/internal/user/repository/redis"
	userUC "ticketdesk/internal/user/usecase"
	"ticketdesk/pkg/jwt"
	"ticketdesk/pkg/log"
	"ticketdesk/pkg/mailer"

	"github.com/google/uuid"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config:", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting auth service...")

	db, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
		return
	}
	defer configPostgre.Disconnect(context.Background(), db)

	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
		return
	}
	defer configRedis.Disconnect(redisClient)

	jwtMgr := jwt.New(jwt.Config{
		SecretKey: cfg.JWT.SecretKey,
		Issuer:    cfg.JWT.Issuer,
		TTL:       cfg.JWT.TTL,
	})

	repo := userPostgre.New(logger, db, uuid.NewString)
	tokens := userRedis.New(logger, redisClient)
	sender := mailer.New(cfg.SMTP)
	uc := userUC.New(logger, repo, tokens, sender, jwtMgr, cfg.Auth)
	handler := userHTTP.New(uc, logger)

	srv, err := httpserver.New(logger, httpserver.Config{
		Host:        cfg.Server.Host,
		Port:        cfg.Server.Port,
		Mode:        cfg.Server.Mode,
		ServiceName: "auth-service",
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to create HTTP server: %v", err)
		return
	}

	mw := middleware.New(logger, jwtMgr)
	srv.Use(middleware.Recovery(logger))
	srv.Use(middleware.CORS())
	srv.Mount("/auth", handler)
	srv.Mount("/auth", httpserver.RegistrarFunc(handler.RegisterProtectedRoutes), mw.Auth())

	srv.AddCheck("postgres", func(ctx context.Context) error {
		return configPostgre.HealthCheck(ctx, db)
	})
	srv.AddCheck("redis", func(ctx context.Context) error {
		return redisClient.Ping(ctx).Err()
	})

	if err := srv.Run(); err != nil {
		logger.Errorf(ctx, "Server stopped with error: %v", err)
	}
}
