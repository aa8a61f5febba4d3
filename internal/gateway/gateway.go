// Package gateway routes public traffic to the backend services by path
// prefix. It forwards every HTTP method and passes WebSocket upgrades
// through untouched.
package gateway

import (
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"ticketdesk/config"
	pkgLog "ticketdesk/pkg/log"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	l       pkgLog.Logger
	proxies map[string]*httputil.ReverseProxy
}

// New builds the gateway routing table. The first path segment picks the
// backend; the full path is forwarded unchanged.
func New(l pkgLog.Logger, cfg config.GatewayConfig) (*Handler, error) {
	h := &Handler{
		l:       l,
		proxies: make(map[string]*httputil.ReverseProxy),
	}

	targets := map[string]string{
		"tickets": cfg.TicketsURL,
		"auth":    cfg.AuthURL,

		// The notification service owns three public prefixes.
		"notify":        cfg.NotificationURL,
		"notifications": cfg.NotificationURL,
		"ws":            cfg.NotificationURL,
	}

	for prefix, raw := range targets {
		target, err := url.Parse(raw)
		if err != nil {
			return nil, err
		}
		h.proxies[prefix] = h.newProxy(target)
	}

	return h, nil
}

func (h *Handler) newProxy(target *url.URL) *httputil.ReverseProxy {
	proxy := httputil.NewSingleHostReverseProxy(target)
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		h.l.Errorf(r.Context(), "internal.gateway.proxy: %s %s: %v", r.Method, r.URL.Path, err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"error":"upstream unavailable"}`))
	}
	return proxy
}

// Forward is the catch-all handler attached to every route of the gateway.
func (h *Handler) Forward(c *gin.Context) {
	segment := firstSegment(c.Request.URL.Path)

	proxy, ok := h.proxies[segment]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown service"})
		return
	}

	proxy.ServeHTTP(c.Writer, c.Request)
}

// RegisterRoutes mounts the catch-all on the engine for every method.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.NoRoute(h.Forward)
}

func firstSegment(path string) string {
	path = strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(path, '/'); i >= 0 {
		return path[:i]
	}
	return path
}
