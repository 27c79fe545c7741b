package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// HealthHandler reports service liveness and database reachability.
type HealthHandler struct {
	dbClient *mongo.Client
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(dbClient *mongo.Client) *HealthHandler {
	return &HealthHandler{dbClient: dbClient}
}

// Health handles GET /health. A failing database ping degrades the response
// to 503 but still reports which part is down.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	dbStatus := "ok"
	status := http.StatusOK
	if err := h.dbClient.Ping(ctx, readpref.Primary()); err != nil {
		dbStatus = "unreachable"
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{
		"success": status == http.StatusOK,
		"data": gin.H{
			"server":   "ok",
			"database": dbStatus,
		},
	})
}
