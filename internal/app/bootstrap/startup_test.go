package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cochranfilms/crewops/internal/app/store/docstore"
	userstore "github.com/cochranfilms/crewops/internal/app/store/users"
	"github.com/cochranfilms/crewops/internal/testutil"
	"go.uber.org/zap"
)

func TestValidateConfig(t *testing.T) {
	logger := zap.NewNop()

	cases := []struct {
		name    string
		cfg     AppConfig
		wantErr bool
	}{
		{"local ok", AppConfig{StoreBackend: "local", DataDir: "./data", IntakeMaxAttempts: 3}, false},
		{"github needs token", AppConfig{StoreBackend: "github", DataDir: "./data", IntakeMaxAttempts: 3, GitHubOwner: "o", GitHubRepo: "r"}, true},
		{"github ok", AppConfig{StoreBackend: "github", DataDir: "./data", IntakeMaxAttempts: 3, GitHubToken: "t", GitHubOwner: "o", GitHubRepo: "r"}, false},
		{"mongo bad uri", AppConfig{StoreBackend: "mongo", DataDir: "./data", IntakeMaxAttempts: 3, MongoURI: "not-a-uri"}, true},
		{"unknown backend", AppConfig{StoreBackend: "s3", DataDir: "./data", IntakeMaxAttempts: 3}, true},
		{"empty data dir", AppConfig{StoreBackend: "local", IntakeMaxAttempts: 3}, true},
		{"zero attempts", AppConfig{StoreBackend: "local", DataDir: "./data"}, true},
	}

	for _, tc := range cases {
		err := ValidateConfig(nil, tc.cfg, logger)
		if (err != nil) != tc.wantErr {
			t.Errorf("%s: err=%v, wantErr=%v", tc.name, err, tc.wantErr)
		}
	}
}

func TestStartup_CreatesDataDirAndMigratesLegacy(t *testing.T) {
	dataDir := testutil.SeedDataDir(t, map[string]string{
		"freelancers.json": testutil.SampleFreelancers,
	})

	appCfg := AppConfig{DataDir: dataDir, StoreBackend: "local", IntakeMaxAttempts: 3}
	users := userstore.New(docstore.NewLocal(dataDir, "users.json"))
	deps := DBDeps{Users: users, UsersSource: "local"}

	if err := Startup(context.Background(), nil, appCfg, deps, zap.NewNop()); err != nil {
		t.Fatalf("Startup failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dataDir, "contracts")); err != nil {
		t.Errorf("contracts dir not created: %v", err)
	}

	doc, _, err := users.Load(context.Background())
	if err != nil {
		t.Fatalf("users document not created: %v", err)
	}
	if _, ok := doc.Users["Jane Doe"]; !ok {
		t.Errorf("legacy user missing: %v", doc.Users)
	}
}

func TestStartup_LeavesExistingDocumentAlone(t *testing.T) {
	dataDir := t.TempDir()
	users := userstore.New(docstore.NewLocal(dataDir, "users.json"))

	docs := docstore.NewLocal(dataDir, "users.json")
	if _, err := docs.Save(context.Background(), []byte(`{"users":{"Existing":{}},"totalUsers":1}`), "", "seed"); err != nil {
		t.Fatal(err)
	}

	appCfg := AppConfig{DataDir: dataDir, StoreBackend: "local", IntakeMaxAttempts: 3}
	if err := Startup(context.Background(), nil, appCfg, DBDeps{Users: users, UsersSource: "local"}, zap.NewNop()); err != nil {
		t.Fatalf("Startup failed: %v", err)
	}

	doc, _, err := users.Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := doc.Users["Existing"]; !ok {
		t.Errorf("existing document was overwritten: %v", doc.Users)
	}
}
