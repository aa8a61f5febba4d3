package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const shutdownTimeout = 10 * time.Second

// Run starts the HTTP server and all background services, then blocks until
// a shutdown signal arrives:
//  1. Register health endpoints
//  2. Start background services (OnStart hooks)
//  3. Start HTTP server
//  4. Wait for shutdown signal, then drain in-flight requests and run OnStop hooks
func (srv *HTTPServer) Run() error {
	ctx := context.Background()

	srv.mapHealthRoutes()

	for _, start := range srv.onStart {
		go start()
	}

	httpSrv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", srv.host, srv.port),
		Handler: srv.gin,
	}

	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			srv.logger.Errorf(ctx, "HTTP server error: %v", err)
		}
	}()

	srv.logger.Infof(ctx, "%s started on %s:%d", srv.serviceName, srv.host, srv.port)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	srv.logger.Info(ctx, <-ch)
	srv.logger.Infof(ctx, "Stopping %s...", srv.serviceName)

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		srv.logger.Errorf(ctx, "HTTP server shutdown error: %v", err)
	}

	for _, stop := range srv.onStop {
		if err := stop(shutdownCtx); err != nil {
			srv.logger.Errorf(ctx, "Shutdown hook error: %v", err)
		}
	}

	return nil
}
