package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports service, database, and broker health
type HealthHandler struct {
	logger *slog.Logger
	db     HealthChecker
	broker BrokerStatus
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(logger *slog.Logger, db HealthChecker, broker BrokerStatus) *HealthHandler {
	return &HealthHandler{
		logger: logger,
		db:     db,
		broker: broker,
	}
}

// Health handles GET /api/health
func (h *HealthHandler) Health(c *gin.Context) {
	status := http.StatusOK
	dbStatus := "healthy"

	if err := h.db.HealthCheck(c.Request.Context()); err != nil {
		h.logger.Error("Database health check failed", slog.String("error", err.Error()))
		status = http.StatusServiceUnavailable
		dbStatus = "unhealthy"
	}

	brokerStatus := "connected"
	if !h.broker.IsConnected() {
		// Broker being down degrades confirmations but bookings still persist
		brokerStatus = "disconnected"
	}

	c.JSON(status, gin.H{
		"status":  dbStatus,
		"broker":  brokerStatus,
		"message": "PawfectFind API is running",
	})
}
