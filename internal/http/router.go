package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RouterConfig carries the router's dependencies.
type RouterConfig struct {
	Store   StatusStore
	Version string
	Logger  *zap.Logger
}

// NewRouter creates the HTTP router. Only the health endpoint is served.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	if cfg.Logger != nil {
		router.Use(RequestLogger(cfg.Logger))
	}
	router.Use(gin.Recovery())

	health := NewHealthController(cfg.Store, cfg.Version)
	router.GET("/health", health.Status)

	return router
}

// RequestLogger logs each request through zap.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.ClientIP()),
		)
	}
}
