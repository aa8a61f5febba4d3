package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ticketdesk/config"
	configMongo "ticketdesk/config/mongo"
	"ticketdesk/internal/httpserver"
	"ticketdesk/internal/middleware"
	notificationHTTP "ticketdesk/internal/notification/delivery/http"
	notificationMongo "ticketdesk/internal/notification/repository/mongo"
	notificationUC "ticketdesk/internal/notification/usecase"
	"ticketdesk/pkg/log"
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

	logger.Info(ctx, "Starting notification service...")

	mongoClient, err := configMongo.Connect(ctx, cfg.Mongo)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to MongoDB: %v", err)
		return
	}
	defer configMongo.Disconnect(context.Background(), mongoClient)

	repo := notificationMongo.New(logger, configMongo.Database(mongoClient, cfg.Mongo))
	uc := notificationUC.New(logger, repo)
	handler := notificationHTTP.New(uc, logger, cfg.WebSocket)

	srv, err := httpserver.New(logger, httpserver.Config{
		Host:        cfg.Server.Host,
		Port:        cfg.Server.Port,
		Mode:        cfg.Server.Mode,
		ServiceName: "notification-service",
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to create HTTP server: %v", err)
		return
	}

	srv.Use(middleware.Recovery(logger))
	srv.Use(middleware.CORS())
	srv.Mount("/", handler)

	srv.AddCheck("mongodb", func(ctx context.Context) error {
		return mongoClient.Ping(ctx, nil)
	})

	// The dispatch loop runs for the life of the process; Shutdown drains
	// the queue before the store connection goes away.
	srv.OnStart(uc.Run)
	srv.OnStop(uc.Shutdown)

	if err := srv.Run(); err != nil {
		logger.Errorf(ctx, "Server stopped with error: %v", err)
	}
}
