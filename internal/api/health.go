package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler provides liveness and readiness endpoints.
//
//   - /healthz: always 200 while the process is up.
//   - /readyz: 200 when ready() succeeds (reference files present), 503 otherwise.
//     Extra status sections registered with WithStatus are added to the body.
type HealthHandler struct {
	ready  func() error
	extras map[string]func() any
}

// NewHealthHandler builds a HealthHandler. A nil ready func is always ready.
func NewHealthHandler(ready func() error) *HealthHandler {
	return &HealthHandler{ready: ready, extras: map[string]func() any{}}
}

// WithStatus adds the value returned by fn under key to every /readyz body.
func (h *HealthHandler) WithStatus(key string, fn func() any) *HealthHandler {
	h.extras[key] = fn
	return h
}

// Register mounts /healthz and /readyz on r.
func (h *HealthHandler) Register(r *gin.Engine) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/readyz", func(c *gin.Context) {
		body := gin.H{"status": "ready"}
		code := http.StatusOK
		if h.ready != nil {
			if err := h.ready(); err != nil {
				body = gin.H{"status": "degraded", "error": err.Error()}
				code = http.StatusServiceUnavailable
			}
		}
		for k, fn := range h.extras {
			body[k] = fn()
		}
		c.JSON(code, body)
	})
}
