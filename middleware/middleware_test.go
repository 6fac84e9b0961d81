package middleware

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/blogem/api-hits/models"
	"github.com/blogem/api-hits/services"
)

// stubHitService records the hits passed to Record; other methods are unused here
type stubHitService struct {
	services.HitService
	recorded []*models.Hit
	err      error
}

func (s *stubHitService) Record(_ context.Context, hit *models.Hit) error {
	s.recorded = append(s.recorded, hit)
	return s.err
}

func TestObserveHitsRecordsRequest(t *testing.T) {
	svc := &stubHitService{}
	var handlerBody string
	handler := ObserveHits(svc, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		handlerBody = string(data)
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/hits?debug=1", strings.NewReader(`{"endpoint": "/foo"}`))
	req.Header.Set("User-Agent", "test-agent")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, `{"endpoint": "/foo"}`, handlerBody, "handler must still see the full body")

	require.Len(t, svc.recorded, 1)
	hit := svc.recorded[0]
	assert.Equal(t, "POST", hit.RequestType)
	assert.Equal(t, "/api/hits", hit.Endpoint, "query string is not part of the endpoint")
	assert.Equal(t, "test-agent", hit.UserAgent)
	require.NotNil(t, hit.RequestBody)
	assert.Equal(t, `{"endpoint":"/foo"}`, *hit.RequestBody)
	assert.False(t, hit.Timestamp.IsZero())
}

func TestObserveHitsRendersMissingOrInvalidBodyAsNull(t *testing.T) {
	for _, body := range []string{"", "not json"} {
		svc := &stubHitService{}
		handler := ObserveHits(svc, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

		req := httptest.NewRequest(http.MethodGet, "/api/hits", strings.NewReader(body))
		req.Header.Del("User-Agent")
		handler.ServeHTTP(httptest.NewRecorder(), req)

		require.Len(t, svc.recorded, 1)
		assert.Equal(t, "null", *svc.recorded[0].RequestBody)
		assert.Equal(t, "", svc.recorded[0].UserAgent)
	}
}

func TestObserveHitsStoresJSONStringUnquoted(t *testing.T) {
	svc := &stubHitService{}
	handler := ObserveHits(svc, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/hits", strings.NewReader(`"str"`)))

	require.Len(t, svc.recorded, 1)
	assert.Equal(t, "str", *svc.recorded[0].RequestBody)
}

func TestObserveHitsSkipsOptions(t *testing.T) {
	svc := &stubHitService{}
	called := false
	handler := ObserveHits(svc, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodOptions, "/api/hits", nil))

	assert.True(t, called)
	assert.Empty(t, svc.recorded)
}

func TestObserveHitsFailureStopsRequest(t *testing.T) {
	svc := &stubHitService{err: errors.New("database is locked")}
	core, logs := observer.New(zap.ErrorLevel)
	called := false
	handler := ObserveHits(svc, zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/hits", nil))

	assert.False(t, called)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error": "failed to record request"}`, rec.Body.String())
	assert.Equal(t, 1, logs.FilterMessage("failed to record hit").Len())
}

func TestRequestID(t *testing.T) {
	var seen string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))

	assert.Equal(t, "", GetRequestID(context.Background()))
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	handler := RequestID(RequestLogger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})))

	req := httptest.NewRequest(http.MethodGet, "/api/missing", nil)
	req.Header.Set("X-Forwarded-For", "10.0.0.1, 10.0.0.2")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/api/missing", fields["path"])
	assert.Equal(t, int64(http.StatusNotFound), fields["status"])
	assert.Equal(t, "10.0.0.1", fields["ip"])
	assert.NotEmpty(t, fields["request_id"])
}

func TestGetIPAddress(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.5:54321"
	assert.Equal(t, "192.168.1.5", getIPAddress(req))

	req.Header.Set("X-Real-IP", "172.16.0.9")
	assert.Equal(t, "172.16.0.9", getIPAddress(req))
}
