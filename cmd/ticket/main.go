package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ticketdesk/config"
	configMinio "ticketdesk/config/minio"
	configPostgre "ticketdesk/config/postgre"
	"ticketdesk/internal/httpserver"
	"ticketdesk/internal/middleware"
	ticketHTTP "ticketdesk/internal/ticket/delivery/http"
	ticketNotifier "ticketdesk/internal/ticket/notifier"
	ticketPostgre "ticketdesk/internal/ticket/repository/postgre"
	ticketUC "ticketdesk/internal/ticket/usecase"
	"ticketdesk/pkg/jwt"
	"ticketdesk/pkg/log"
	"ticketdesk/pkg/storage"

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

	logger.Info(ctx, "Starting ticket service...")

	db, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
		return
	}
	defer configPostgre.Disconnect(context.Background(), db)

	minioClient, err := configMinio.Connect(ctx, cfg.Storage)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to MinIO: %v", err)
		return
	}

	store := storage.New(minioClient, cfg.Storage.Bucket)
	if err := store.EnsureBucket(ctx); err != nil {
		logger.Errorf(ctx, "Failed to ensure attachment bucket: %v", err)
		return
	}

	jwtMgr := jwt.New(jwt.Config{
		SecretKey: cfg.JWT.SecretKey,
		Issuer:    cfg.JWT.Issuer,
		TTL:       cfg.JWT.TTL,
	})

	repo := ticketPostgre.New(logger, db, uuid.NewString)
	notifier := ticketNotifier.New(logger, cfg.Notifier)
	uc := ticketUC.New(logger, repo, store, notifier)
	handler := ticketHTTP.New(uc, logger)

	srv, err := httpserver.New(logger, httpserver.Config{
		Host:        cfg.Server.Host,
		Port:        cfg.Server.Port,
		Mode:        cfg.Server.Mode,
		ServiceName: "ticket-service",
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to create HTTP server: %v", err)
		return
	}

	mw := middleware.New(logger, jwtMgr)
	srv.Use(middleware.Recovery(logger))
	srv.Use(middleware.CORS())
	srv.Mount("/", handler, mw.Auth())

	srv.AddCheck("postgres", func(ctx context.Context) error {
		return configPostgre.HealthCheck(ctx, db)
	})

	if err := srv.Run(); err != nil {
		logger.Errorf(ctx, "Server stopped with error: %v", err)
	}
}
