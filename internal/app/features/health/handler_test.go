package health

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/cochranfilms/crewops/internal/testutil"
	"go.uber.org/zap"
)

func TestServe_OK(t *testing.T) {
	h := NewHandler(nil, t.TempDir(), zap.NewNop())

	rec := httptest.NewRecorder()
	Routes(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	testutil.AssertStatus(t, rec, http.StatusOK)
	body := testutil.DecodeJSON(t, rec)
	if body["status"] != "ok" || body["dataDir"] != "writable" {
		t.Errorf("body: %v", body)
	}
	if _, present := body["database"]; present {
		t.Error("database field should be absent without a mongo client")
	}
}

func TestServe_MissingDataDir(t *testing.T) {
	h := NewHandler(nil, filepath.Join(t.TempDir(), "does-not-exist"), zap.NewNop())

	rec := httptest.NewRecorder()
	Routes(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	testutil.AssertStatus(t, rec, http.StatusServiceUnavailable)
	body := testutil.DecodeJSON(t, rec)
	if body["status"] != "error" {
		t.Errorf("body: %v", body)
	}
}
