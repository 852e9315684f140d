// Package controllers translates HTTP requests into service calls.
// File: controllers/health_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	HealthCheck() error
}

// HealthController answers load-balancer health probes.
type HealthController struct {
	db HealthChecker
}

// NewHealthController creates a new HealthController instance.
func NewHealthController(db HealthChecker) *HealthController {
	return &HealthController{db: db}
}

// Health reports service and database status.
func (ctl *HealthController) Health(c *gin.Context) {
	if err := ctl.db.HealthCheck(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
