package reqlog_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/lessonshop/internal/app/system/reqlog"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMiddleware_LogsRequest(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	h := reqlog.Middleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/orders?x=1", nil)
	req.Header.Set("User-Agent", "storefront-test")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := logs.Len(); got != 1 {
		t.Fatalf("expected 1 log entry, got %d", got)
	}
	fields := logs.All()[0].ContextMap()
	if fields["status"] != int64(http.StatusCreated) {
		t.Errorf("status: got %v, want %d", fields["status"], http.StatusCreated)
	}
	if fields["method"] != http.MethodPost {
		t.Errorf("method: got %v", fields["method"])
	}
	if fields["url"] != "/api/orders?x=1" {
		t.Errorf("url: got %v", fields["url"])
	}
	if fields["ua"] != "storefront-test" {
		t.Errorf("ua: got %v", fields["ua"])
	}
	if rec.Header().Get(reqlog.HeaderRequestID) == "" {
		t.Error("expected a generated request id header")
	}
}

func TestMiddleware_KeepsIncomingRequestID(t *testing.T) {
	h := reqlog.Middleware(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/api/lessons", nil)
	req.Header.Set(reqlog.HeaderRequestID, "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get(reqlog.HeaderRequestID); got != "abc-123" {
		t.Errorf("request id: got %q, want %q", got, "abc-123")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
}
