package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/salesreport/internal/middleware"
)

// requestTimeout bounds one report build triggered over HTTP.
const requestTimeout = 30 * time.Second

// NewRouter creates a Gin engine with middlewares and the v1 report routes.
//
// Note:
//   - Health and readiness endpoints are registered in app.InitializeApp().
func NewRouter(handler *Handler) *gin.Engine {
	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.RateLimiter(middleware.DefaultRateLimit, middleware.DefaultRateWindow),
	)

	// ─── Timeout ──────────────────────────────────
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	// ─── API v1 ───────────────────────────────────
	v1 := router.Group("/api/v1/reports")
	{
		v1.GET("/sellers", handler.GetSellersReport)
		v1.GET("/products", handler.GetProductsReport)
	}

	return router
}
