package httpserver

import (
	"context"
	"errors"

	"ticketdesk/pkg/log"

	"github.com/gin-gonic/gin"
)

// Registrar attaches a delivery layer's routes to a router group.
type Registrar interface {
	RegisterRoutes(r *gin.RouterGroup)
}

// RegistrarFunc adapts a plain function to the Registrar interface.
type RegistrarFunc func(r *gin.RouterGroup)

func (f RegistrarFunc) RegisterRoutes(r *gin.RouterGroup) { f(r) }

// CheckFunc probes one backing dependency for the readiness endpoint.
type CheckFunc func(ctx context.Context) error

// HTTPServer represents the HTTP server with all dependencies.
// New() only wires dependencies and validates them.
// Run() (in httpserver.go) starts background services and HTTP serving.
type HTTPServer struct {
	gin         *gin.Engine
	logger      log.Logger
	host        string
	port        int
	mode        string
	serviceName string

	checks map[string]CheckFunc

	// Background services started before serving and stopped on shutdown.
	onStart []func()
	onStop  []func(ctx context.Context) error
}

// Config is the constructor input for HTTPServer.
// Keep this minimal: only fields really needed by HTTPServer.
type Config struct {
	Host        string
	Port        int
	Mode        string
	ServiceName string
}

// New creates a new HTTPServer instance with the provided configuration.
// Note: This does NOT start any goroutines. Use (*HTTPServer).Run() to start the service.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		gin:         gin.New(),
		logger:      logger,
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		serviceName: cfg.ServiceName,
		checks:      make(map[string]CheckFunc),
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate ensures all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.logger == nil {
		return errors.New("logger is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.serviceName == "" {
		return errors.New("service name is required")
	}

	return nil
}

// Use appends middleware applied to every route, including health endpoints.
func (srv *HTTPServer) Use(handlers ...gin.HandlerFunc) {
	srv.gin.Use(handlers...)
}

// Mount attaches a delivery layer under the given path prefix.
func (srv *HTTPServer) Mount(prefix string, reg Registrar, handlers ...gin.HandlerFunc) {
	group := srv.gin.Group(prefix, handlers...)
	reg.RegisterRoutes(group)
}

// Engine exposes the underlying router, for handlers that do not fit the
// Registrar shape (such as the gateway catch-all).
func (srv *HTTPServer) Engine() *gin.Engine {
	return srv.gin
}

// AddCheck registers a named readiness probe.
func (srv *HTTPServer) AddCheck(name string, check CheckFunc) {
	srv.checks[name] = check
}

// OnStart registers a background service started right before serving.
func (srv *HTTPServer) OnStart(fn func()) {
	srv.onStart = append(srv.onStart, fn)
}

// OnStop registers a shutdown hook, called in order after the listener stops.
func (srv *HTTPServer) OnStop(fn func(ctx context.Context) error) {
	srv.onStop = append(srv.onStop, fn)
}
