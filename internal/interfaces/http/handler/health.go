package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ledgerflow/backend/internal/infrastructure/logger"
	"github.com/ledgerflow/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// ServiceName is reported by the health endpoints
const ServiceName = "LedgerFlow Backend"

// Pinger checks that a dependency is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves liveness and readiness probes
type HealthHandler struct {
	BaseHandler
	db  Pinger
	now func() time.Time
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db, now: time.Now}
}

// Health godoc
// @Summary  Liveness probe
// @Tags     system
// @Produce  json
// @Success  200 {object} dto.HealthResponse
// @Router   /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	h.Success(c, dto.HealthResponse{
		Status:    "healthy",
		Service:   ServiceName,
		Timestamp: dto.Timestamp(h.now()),
	})
}

// Ready godoc
// @Summary  Readiness probe, checks the database
// @Tags     system
// @Produce  json
// @Success  200 {object} dto.HealthResponse
// @Failure  503 {object} dto.HealthResponse
// @Router   /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	resp := dto.HealthResponse{
		Status:    "healthy",
		Service:   ServiceName,
		Timestamp: dto.Timestamp(h.now()),
		Database:  "ok",
	}
	if err := h.db.Ping(ctx); err != nil {
		logger.GetGinLogger(c).Error("Readiness check failed", zap.Error(err))
		resp.Status = "unhealthy"
		resp.Database = "error"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	h.Success(c, resp)
}
