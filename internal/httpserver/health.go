package httpserver

import (
	"net/http"

	"ticketdesk/pkg/response"

	"github.com/gin-gonic/gin"
)

func (srv *HTTPServer) mapHealthRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}

// healthCheck reports overall service health including every registered probe.
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	deps := gin.H{}
	healthy := true
	for name, check := range srv.checks {
		if err := check(ctx); err != nil {
			deps[name] = err.Error()
			healthy = false
		} else {
			deps[name] = "connected"
		}
	}

	if !healthy {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":       "unhealthy",
			"service":      srv.serviceName,
			"dependencies": deps,
		})
		return
	}

	response.OK(c, gin.H{
		"status":       "healthy",
		"service":      srv.serviceName,
		"dependencies": deps,
	})
}

// readyCheck reports whether the service is ready to serve traffic.
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	for name, check := range srv.checks {
		if err := check(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "not ready",
				"service": srv.serviceName,
				"failed":  name,
			})
			return
		}
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"service": srv.serviceName,
	})
}

// liveCheck only proves the process is up.
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": srv.serviceName,
	})
}
