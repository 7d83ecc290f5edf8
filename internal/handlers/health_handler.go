package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	toursCacheReady func() bool
}

func NewHealthHandler(toursCacheReady func() bool) *HealthHandler {
	return &HealthHandler{
		toursCacheReady: toursCacheReady,
	}
}

func (h *HealthHandler) Healthcheck(c *gin.Context) {
	c.Header("Cache-Control", "no-cache, no-store, max-age=0, must-revalidate")

	if !h.toursCacheReady() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unavailable",
			"reason": "tour catalog not initialized",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Options answers CORS probes that arrive without an Origin header, which the
// cors middleware passes through instead of short-circuiting.
func Options(c *gin.Context) {
	c.Status(http.StatusOK)
}

// MethodNotAllowed is the router's fallback for known routes hit with an
// unsupported verb.
func MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, gin.H{
		"success": false,
		"error":   "Method not allowed",
	})
}
