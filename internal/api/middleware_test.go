package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"nightshift-routing-service/internal/platform/obs"
)

func TestLoggingMiddlewareTagsRequestContext(t *testing.T) {
	var gotID string
	h := loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = r.Context().Value(obs.RequestIDKey).(string)
		w.WriteHeader(http.StatusCreated)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/routes", nil))

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	if gotID == "" {
		t.Fatal("request id missing from handler context")
	}
}

func TestLoggingMiddlewareAssignsDistinctIDs(t *testing.T) {
	ids := map[string]bool{}
	h := loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, _ := r.Context().Value(obs.RequestIDKey).(string)
		ids[id] = true
	}))

	for i := 0; i < 3; i++ {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	}

	if len(ids) != 3 {
		t.Fatalf("distinct ids = %d, want 3 (%v)", len(ids), ids)
	}
}

func TestStatusWriterRecordsImplicitOK(t *testing.T) {
	rec := httptest.NewRecorder()
	sw := &statusWriter{ResponseWriter: rec}

	if _, err := sw.Write([]byte("body")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sw.status != http.StatusOK || sw.bytes != 4 {
		t.Fatalf("status/bytes = %d/%d, want 200/4", sw.status, sw.bytes)
	}
}
