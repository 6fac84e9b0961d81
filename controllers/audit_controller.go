package controllers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/blogem/api-hits/services"
)

// AuditController serves the audit log
type AuditController struct {
	services *services.Services
	log      *zap.Logger
}

// NewAuditController creates a new audit controller
func NewAuditController(services *services.Services, log *zap.Logger) *AuditController {
	return &AuditController{
		services: services,
		log:      log,
	}
}

// Index handles GET /api/audit_logs. Reading the audit log is not itself audited.
func (c *AuditController) Index(w http.ResponseWriter, r *http.Request) {
	entries, err := c.services.Audit.List(r.Context())
	if err != nil {
		c.log.Error("failed to list audit log", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to list audit log")
		return
	}

	writeJSON(w, http.StatusOK, entries)
}
