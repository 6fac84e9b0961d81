package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/blogem/api-hits/models"
	"github.com/blogem/api-hits/services"
)

const (
	hitsEndpoint      = "/api/hits"
	msgHitNotFound    = "Hit not found"
	msgInvalidPayload = "Invalid JSON data or Content-Type header missing"
)

// HitController handles hit CRUD requests.
// Every handler records one audit entry carrying the status it is about to
// return; only a create body that is not a JSON object goes unaudited.
type HitController struct {
	services *services.Services
	log      *zap.Logger
}

// NewHitController creates a new hit controller
func NewHitController(services *services.Services, log *zap.Logger) *HitController {
	return &HitController{
		services: services,
		log:      log,
	}
}

// Create handles POST /api/hits
func (c *HitController) Create(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	payload, err := models.DecodeHitPayload(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidPayload)
		return
	}

	hit, err := c.services.Hits.Create(r.Context(), r.Method, r.Header.Get("User-Agent"), payload)

	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		if c.audit(w, r, models.OperationCreate, hitsEndpoint, payload.Raw(), http.StatusBadRequest) {
			writeError(w, http.StatusBadRequest, strings.Join(validationErr.Messages, ", "))
		}
	case err != nil:
		c.log.Error("failed to create hit", zap.Error(err))
		if c.audit(w, r, models.OperationCreate, hitsEndpoint, payload.Raw(), http.StatusInternalServerError) {
			writeError(w, http.StatusInternalServerError, "failed to create hit")
		}
	default:
		if c.audit(w, r, models.OperationCreate, hitsEndpoint, payload.Raw(), http.StatusCreated) {
			writeJSON(w, http.StatusCreated, hit)
		}
	}
}

// List handles GET /api/hits
func (c *HitController) List(w http.ResponseWriter, r *http.Request) {
	hits, err := c.services.Hits.List(r.Context())
	if err != nil {
		c.log.Error("failed to list hits", zap.Error(err))
		if c.audit(w, r, models.OperationGetAll, hitsEndpoint, nil, http.StatusInternalServerError) {
			writeError(w, http.StatusInternalServerError, "failed to list hits")
		}
		return
	}

	if c.audit(w, r, models.OperationGetAll, hitsEndpoint, nil, http.StatusOK) {
		writeJSON(w, http.StatusOK, hits)
	}
}

// Get handles GET /api/hits/{id}
func (c *HitController) Get(w http.ResponseWriter, r *http.Request) {
	id, endpoint, ok := hitID(r)
	if !ok {
		if c.audit(w, r, models.OperationGetSingle, endpoint, nil, http.StatusNotFound) {
			writeError(w, http.StatusNotFound, msgHitNotFound)
		}
		return
	}

	hit, err := c.services.Hits.Get(r.Context(), id)
	switch {
	case errors.Is(err, services.ErrNotFound):
		if c.audit(w, r, models.OperationGetSingle, endpoint, nil, http.StatusNotFound) {
			writeError(w, http.StatusNotFound, msgHitNotFound)
		}
	case err != nil:
		c.log.Error("failed to get hit", zap.Int64("id", id), zap.Error(err))
		if c.audit(w, r, models.OperationGetSingle, endpoint, nil, http.StatusInternalServerError) {
			writeError(w, http.StatusInternalServerError, "failed to get hit")
		}
	default:
		if c.audit(w, r, models.OperationGetSingle, endpoint, nil, http.StatusOK) {
			writeJSON(w, http.StatusOK, hit)
		}
	}
}

// Update handles PUT /api/hits/{id}
func (c *HitController) Update(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	// The audit entry carries whatever JSON the caller sent, object or not
	auditPayload, _ := models.ParseJSON(body)

	id, endpoint, ok := hitID(r)
	if !ok {
		if c.audit(w, r, models.OperationUpdate, endpoint, auditPayload, http.StatusNotFound) {
			writeError(w, http.StatusNotFound, msgHitNotFound)
		}
		return
	}

	// Best effort: an unusable body leaves every payload field null
	payload, _ := models.DecodeHitPayload(body)

	hit, err := c.services.Hits.Update(r.Context(), id, r.Method, r.Header.Get("User-Agent"), payload)
	switch {
	case errors.Is(err, services.ErrNotFound):
		if c.audit(w, r, models.OperationUpdate, endpoint, auditPayload, http.StatusNotFound) {
			writeError(w, http.StatusNotFound, msgHitNotFound)
		}
	case err != nil:
		c.log.Error("failed to update hit", zap.Int64("id", id), zap.Error(err))
		if c.audit(w, r, models.OperationUpdate, endpoint, auditPayload, http.StatusInternalServerError) {
			writeError(w, http.StatusInternalServerError, "failed to update hit")
		}
	default:
		if c.audit(w, r, models.OperationUpdate, endpoint, auditPayload, http.StatusOK) {
			writeJSON(w, http.StatusOK, hit)
		}
	}
}

// Delete handles DELETE /api/hits/{id}
func (c *HitController) Delete(w http.ResponseWriter, r *http.Request) {
	id, endpoint, ok := hitID(r)
	if !ok {
		if c.audit(w, r, models.OperationDelete, endpoint, nil, http.StatusNotFound) {
			writeError(w, http.StatusNotFound, msgHitNotFound)
		}
		return
	}

	err := c.services.Hits.Delete(r.Context(), id)
	switch {
	case errors.Is(err, services.ErrNotFound):
		if c.audit(w, r, models.OperationDelete, endpoint, nil, http.StatusNotFound) {
			writeError(w, http.StatusNotFound, msgHitNotFound)
		}
	case err != nil:
		c.log.Error("failed to delete hit", zap.Int64("id", id), zap.Error(err))
		if c.audit(w, r, models.OperationDelete, endpoint, nil, http.StatusInternalServerError) {
			writeError(w, http.StatusInternalServerError, "failed to delete hit")
		}
	default:
		if c.audit(w, r, models.OperationDelete, endpoint, nil, http.StatusNoContent) {
			w.WriteHeader(http.StatusNoContent)
		}
	}
}

// audit records the outcome of an operation before its response is written.
// It returns false after answering 500 itself when the audit entry cannot be stored.
func (c *HitController) audit(w http.ResponseWriter, r *http.Request, operation, endpoint string, payload json.RawMessage, status int) bool {
	_, err := c.services.Audit.Record(r.Context(), models.AuditRecord{
		Operation: operation,
		Endpoint:  endpoint,
		Method:    r.Method,
		UserAgent: r.Header.Get("User-Agent"),
		Payload:   payload,
		Status:    status,
	})
	if err != nil {
		c.log.Error("failed to record audit entry",
			zap.String("operation", operation),
			zap.String("endpoint", endpoint),
			zap.Int("status", status),
			zap.Error(err),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return false
	}
	return true
}

// hitID parses the {id} path parameter. The route only matches digits,
// so ok is false only for ids too large to exist.
func hitID(r *http.Request) (id int64, endpoint string, ok bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, hitsEndpoint + "/" + raw, false
	}
	return id, fmt.Sprintf("%s/%d", hitsEndpoint, id), true
}
