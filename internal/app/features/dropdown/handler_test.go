package dropdown

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/cochranfilms/crewops/internal/testutil"
	"go.uber.org/zap"
)

func TestServe_MissingFileIs404(t *testing.T) {
	h := NewHandler(t.TempDir(), zap.NewNop())
	rec := httptest.NewRecorder()
	Routes(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	testutil.AssertStatus(t, rec, http.StatusNotFound)
}

func TestServe_PassesFileThrough(t *testing.T) {
	dir := t.TempDir()
	content := `{"roles":["Editor","Camera Operator"]}`
	if err := os.WriteFile(filepath.Join(dir, "dropdown-options.json"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	h := NewHandler(dir, zap.NewNop())
	rec := httptest.NewRecorder()
	Routes(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	testutil.AssertStatus(t, rec, http.StatusOK)
	if rec.Body.String() != content {
		t.Errorf("body: got %q, want verbatim file content", rec.Body.String())
	}
}
