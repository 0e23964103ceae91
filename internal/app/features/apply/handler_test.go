package apply

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cochranfilms/crewops/internal/app/store/docstore"
	userstore "github.com/cochranfilms/crewops/internal/app/store/users"
	"github.com/cochranfilms/crewops/internal/app/system/intake"
	"github.com/cochranfilms/crewops/internal/testutil"
	"go.uber.org/zap"
)

type failingStore struct{}

func (failingStore) Load(context.Context) ([]byte, docstore.Version, error) {
	return nil, "", docstore.ErrNotFound
}

func (failingStore) Save(context.Context, []byte, docstore.Version, string) (docstore.Version, error) {
	return "", docstore.ErrConflict
}

func (failingStore) Delete(context.Context, docstore.Version, string) error {
	return docstore.ErrConflict
}

func newHandler(t *testing.T, docs docstore.Store) http.Handler {
	t.Helper()
	if docs == nil {
		docs = docstore.NewLocal(t.TempDir(), "users.json")
	}
	svc := intake.NewService(userstore.New(docs), zap.NewNop())
	return Routes(NewHandler(svc, zap.NewNop()))
}

func TestSubmit_Success(t *testing.T) {
	handler := newHandler(t, nil)

	req := testutil.JSONRequest(t, http.MethodPost, "/", map[string]string{
		"fullName": "Jane Doe",
		"email":    "jane@x.com",
	})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	testutil.AssertStatus(t, rec, http.StatusOK)
	body := testutil.DecodeJSON(t, rec)
	if body["success"] != true {
		t.Errorf("body: %v", body)
	}
}

func TestSubmit_MissingFields(t *testing.T) {
	handler := newHandler(t, nil)

	req := testutil.JSONRequest(t, http.MethodPost, "/", map[string]string{"fullName": "Jane Doe"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	testutil.AssertStatus(t, rec, http.StatusBadRequest)
}

func TestSubmit_InvalidJSON(t *testing.T) {
	handler := newHandler(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	testutil.AssertStatus(t, rec, http.StatusBadRequest)
}

func TestSubmit_PersistFailureReportsInBody(t *testing.T) {
	handler := newHandler(t, failingStore{})

	req := testutil.JSONRequest(t, http.MethodPost, "/", map[string]string{
		"fullName": "Jane Doe",
		"email":    "jane@x.com",
	})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	// Upstream failure keeps HTTP 200; the body carries the error.
	testutil.AssertStatus(t, rec, http.StatusOK)
	body := testutil.DecodeJSON(t, rec)
	if body["success"] != false {
		t.Errorf("success: %v", body["success"])
	}
	if body["error"] != "Failed to persist users.json" {
		t.Errorf("error: %v", body["error"])
	}
}

func TestSubmit_WrongMethod(t *testing.T) {
	handler := newHandler(t, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	testutil.AssertStatus(t, rec, http.StatusMethodNotAllowed)
}
