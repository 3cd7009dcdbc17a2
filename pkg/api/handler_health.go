package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/querra-ai/querra/pkg/database"
	"github.com/querra-ai/querra/pkg/queue"
	"github.com/querra-ai/querra/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// healthHandler handles GET /healthz.
// Returns a minimal, safe response suitable for unauthenticated access.
// Only querra's own components (database, worker_pool) are checked.
// External dependencies (LLM plane, query targets) are excluded to prevent
// the orchestrator from restarting querra when an external service is unhealthy.
func (s *Server) healthHandler(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]HealthCheck)
	status := healthStatusHealthy

	dbHealth, err := database.Health(reqCtx, s.dbClient.DB())
	if err != nil {
		status = healthStatusUnhealthy
		checks["database"] = HealthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
	} else {
		checks["database"] = HealthCheck{Status: healthStatusHealthy}
	}

	var poolHealth *queue.PoolHealth
	if s.workerPool != nil {
		poolHealth = s.workerPool.Health()
		if poolHealth != nil && !poolHealth.IsHealthy {
			if status == healthStatusHealthy {
				status = healthStatusDegraded
			}
			msg := healthStatusUnhealthy
			if poolHealth.DBError != "" {
				msg = poolHealth.DBError
			}
			checks["worker_pool"] = HealthCheck{Status: healthStatusDegraded, Message: msg}
		} else {
			checks["worker_pool"] = HealthCheck{Status: healthStatusHealthy}
		}
	}

	var configStats ConfigurationStats
	if s.cfg != nil {
		stats := s.cfg.Stats()
		configStats = ConfigurationStats{
			LLMProviders: stats.LLMProviders,
			QueryTargets: stats.QueryTargets,
		}
	}

	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, &HealthResponse{
		Status:        status,
		Version:       version.GitCommit,
		Checks:        checks,
		Database:      dbHealth,
		WorkerPool:    poolHealth,
		Configuration: configStats,
	})
}
