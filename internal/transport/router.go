package transport

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// NewRouter builds the API. Tip and analytics routes are also served under
// /api.
func NewRouter(h *Handler, metrics HTTPMetrics, logger *zap.Logger) http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(logger.Named("access")), requestMetrics(metrics))

	r.GET("/healthz", h.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	for _, g := range []*gin.RouterGroup{&r.RouterGroup, r.Group("/api")} {
		g.POST("/tips", h.RecordTip)
		g.GET("/tips", h.ListTips)
		g.GET("/analytics", h.Analytics)
		g.POST("/profile", h.CreateProfile)
		g.GET("/profile", h.GetProfile)
	}

	return cors.Default().Handler(r)
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(started)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

func requestMetrics(metrics HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()
		metrics.ObserveRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), started)
	}
}
