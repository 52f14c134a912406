package a2a

import (
	"net/http"

	"github.com/BerylCAtieno/growth-toolkit-agent/internal/logging"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter registers the agent endpoints on a fresh gin engine.
func NewRouter(h *A2AHandler, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), logging.GinMiddleware(logger))

	// Endpoints
	router.GET("/.well-known/agent.json", h.ServeAgentCard)

	router.POST("/a2a/toolkit", h.HandleToolkit)

	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return router
}
