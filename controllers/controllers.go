package controllers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/blogem/api-hits/models"
	"github.com/blogem/api-hits/services"
)

// writeJSON encodes data as the JSON response body with the given status code
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if data == nil {
		return
	}
	json.NewEncoder(w).Encode(data)
}

// writeError sends {"error": message} with the given status code
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, models.ErrorResponse{Error: message})
}

// NotFound handles requests that match no route
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "Not found")
}

// MethodNotAllowed handles requests whose path matches a route but not its method
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
}

// Controllers holds all controller instances
type Controllers struct {
	Hits  *HitController
	Stats *StatsController
	Audit *AuditController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services, log *zap.Logger) *Controllers {
	return &Controllers{
		Hits:  NewHitController(services, log),
		Stats: NewStatsController(services, log),
		Audit: NewAuditController(services, log),
	}
}
