package controllers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/blogem/api-hits/services"
)

// StatsController serves the aggregated hit statistics
type StatsController struct {
	services *services.Services
	log      *zap.Logger
}

// NewStatsController creates a new stats controller
func NewStatsController(services *services.Services, log *zap.Logger) *StatsController {
	return &StatsController{
		services: services,
		log:      log,
	}
}

// Index handles GET /api/hits/stats. Reading stats is not audited.
func (c *StatsController) Index(w http.ResponseWriter, r *http.Request) {
	stats, err := c.services.Stats.Compute(r.Context())
	if err != nil {
		c.log.Error("failed to compute stats", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to compute stats")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
