package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/blogem/api-hits/models"
	"github.com/blogem/api-hits/services"
)

// ObserveHits records every non-OPTIONS request as a hit before it is routed.
// The hit is committed on its own, whatever the handler later does.
// If it cannot be stored the request fails with 500 and the handler never runs.
func ObserveHits(hits services.HitService, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			body := captureBody(r)
			rendered := models.RenderBody(body)
			hit := models.NewHit(r.Method, r.URL.Path, r.Header.Get("User-Agent"), &rendered)

			if err := hits.Record(r.Context(), hit); err != nil {
				log.Error("failed to record hit",
					zap.String("request_id", GetRequestID(r.Context())),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Error(err),
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(models.ErrorResponse{Error: "failed to record request"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// captureBody reads the request body and puts an identical reader back for the handler
func captureBody(r *http.Request) []byte {
	if r.Body == nil || r.Body == http.NoBody {
		return nil
	}

	body, err := io.ReadAll(r.Body)
	r.Body.Close()
	if err != nil {
		body = nil
	}

	r.Body = io.NopCloser(bytes.NewReader(body))
	return body
}
