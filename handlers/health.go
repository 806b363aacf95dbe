package handlers

import (
	"context"
	"net/http"
	"time"

	"church_admin/storage"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	storage storage.Storage
}

func NewHealthHandler(st storage.Storage) *HealthHandler {
	return &HealthHandler{storage: st}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	// Only remote drivers can fail a ping
	if p, ok := h.storage.(storage.Pinger); ok {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := p.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "error",
				"error":  "Storage connection failed",
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
	})
}
