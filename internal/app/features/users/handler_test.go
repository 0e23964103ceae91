package users

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/cochranfilms/crewops/internal/app/store/docstore"
	userstore "github.com/cochranfilms/crewops/internal/app/store/users"
	"github.com/cochranfilms/crewops/internal/domain/models"
	"github.com/cochranfilms/crewops/internal/testutil"
	"go.uber.org/zap"
)

type downStore struct{}

func (downStore) Load(context.Context) ([]byte, docstore.Version, error) {
	return nil, "", errors.New("upstream unavailable")
}

func (downStore) Save(context.Context, []byte, docstore.Version, string) (docstore.Version, error) {
	return "", errors.New("upstream unavailable")
}

func (downStore) Delete(context.Context, docstore.Version, string) error {
	return errors.New("upstream unavailable")
}

func seedPrimary(t *testing.T) (*userstore.Store, models.UsersDocument) {
	t.Helper()
	store := userstore.New(docstore.NewLocal(t.TempDir(), "users.json"))
	doc := models.EmptyUsersDocument()
	doc.Users["Jane Doe"] = models.UserRecord{
		Profile: models.Profile{Email: "jane@x.com"},
		Jobs:    map[string]models.JobAssignment{},
	}
	doc.TotalUsers = 1
	if _, err := store.Save(context.Background(), doc, "", "seed"); err != nil {
		t.Fatal(err)
	}
	return store, doc
}

func TestServe_PrimarySourceAndMirrorRefresh(t *testing.T) {
	primary, _ := seedPrimary(t)
	dataDir := t.TempDir()
	mirror := userstore.New(docstore.NewLocal(dataDir, "users.json"))

	h := NewHandler(primary, mirror, "github", dataDir, zap.NewNop())
	rec := httptest.NewRecorder()
	Routes(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	testutil.AssertStatus(t, rec, http.StatusOK)
	body := testutil.DecodeJSON(t, rec)

	meta, ok := body["_metadata"].(map[string]any)
	if !ok {
		t.Fatalf("missing _metadata: %v", body)
	}
	if meta["dataSource"] != "github" {
		t.Errorf("dataSource: got %v", meta["dataSource"])
	}
	if meta["totalUsers"] != float64(1) {
		t.Errorf("totalUsers: got %v", meta["totalUsers"])
	}

	// The read should have refreshed the local mirror.
	if _, err := os.Stat(filepath.Join(dataDir, "users.json")); err != nil {
		t.Errorf("mirror not written: %v", err)
	}
}

func TestServe_FallsBackToMirror(t *testing.T) {
	dataDir := t.TempDir()
	mirror := userstore.New(docstore.NewLocal(dataDir, "users.json"))

	doc := models.EmptyUsersDocument()
	doc.Users["Mirror Only"] = models.UserRecord{Jobs: map[string]models.JobAssignment{}}
	if _, err := mirror.Save(context.Background(), doc, "", "seed"); err != nil {
		t.Fatal(err)
	}

	h := NewHandler(userstore.New(downStore{}), mirror, "github", dataDir, zap.NewNop())
	rec := httptest.NewRecorder()
	Routes(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	testutil.AssertStatus(t, rec, http.StatusOK)
	body := testutil.DecodeJSON(t, rec)
	meta := body["_metadata"].(map[string]any)
	if meta["dataSource"] != "local" {
		t.Errorf("dataSource: got %v", meta["dataSource"])
	}
	users := body["users"].(map[string]any)
	if _, ok := users["Mirror Only"]; !ok {
		t.Errorf("mirror content not served: %v", users)
	}
}

func TestServe_BootstrapsFromLegacyFiles(t *testing.T) {
	dataDir := t.TempDir()
	legacy := `{"approvedFreelancers":{"Jane Doe":{"email":"jane@x.com","role":"Editor"}}}`
	if err := os.WriteFile(filepath.Join(dataDir, "freelancers.json"), []byte(legacy), 0o644); err != nil {
		t.Fatal(err)
	}
	mirror := userstore.New(docstore.NewLocal(dataDir, "users.json"))

	h := NewHandler(userstore.New(downStore{}), mirror, "github", dataDir, zap.NewNop())
	rec := httptest.NewRecorder()
	Routes(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	testutil.AssertStatus(t, rec, http.StatusOK)
	body := testutil.DecodeJSON(t, rec)
	users := body["users"].(map[string]any)
	if _, ok := users["Jane Doe"]; !ok {
		t.Fatalf("legacy bootstrap missing user: %v", users)
	}

	// The synthesized document is persisted for the next read.
	if _, _, err := mirror.Load(context.Background()); err != nil {
		t.Errorf("bootstrap result not mirrored: %v", err)
	}
}

func TestServe_LocalOnlyBackend(t *testing.T) {
	primary, _ := seedPrimary(t)

	h := NewHandler(primary, nil, "local", t.TempDir(), zap.NewNop())
	rec := httptest.NewRecorder()
	Routes(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	testutil.AssertStatus(t, rec, http.StatusOK)
	meta := testutil.DecodeJSON(t, rec)["_metadata"].(map[string]any)
	if meta["dataSource"] != "local" {
		t.Errorf("dataSource: got %v", meta["dataSource"])
	}
}
