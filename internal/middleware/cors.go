package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// The browser surface of the platform: the methods the services register and
// the headers clients actually send.
var (
	corsMethods = strings.Join([]string{
		http.MethodGet,
		http.MethodPost,
		http.MethodPatch,
		http.MethodDelete,
		http.MethodOptions,
	}, ", ")
	corsHeaders = strings.Join([]string{
		"Origin",
		"Content-Type",
		"Accept",
		"Authorization",
	}, ", ")
)

// Preflight responses may be cached for a day.
const corsMaxAge = "86400"

// CORS allows browser clients from the given origins. With no origins listed,
// every origin is allowed.
func CORS(origins ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		switch {
		case originAllowed(origin, origins):
			c.Header("Access-Control-Allow-Origin", origin)
		case len(origins) == 0:
			c.Header("Access-Control-Allow-Origin", "*")
		}

		if c.Request.Method == http.MethodOptions {
			c.Header("Access-Control-Allow-Methods", corsMethods)
			c.Header("Access-Control-Allow-Headers", corsHeaders)
			c.Header("Access-Control-Max-Age", corsMaxAge)
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func originAllowed(origin string, origins []string) bool {
	if origin == "" {
		return false
	}
	for _, allowed := range origins {
		if allowed == origin {
			return true
		}
	}
	return false
}
