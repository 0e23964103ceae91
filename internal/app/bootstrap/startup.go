// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cochranfilms/crewops/internal/app/store/docstore"
	userstore "github.com/cochranfilms/crewops/internal/app/store/users"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
//
// It makes sure the data directory exists and, when the users document has
// never been written, synthesizes it from the legacy per-file layout
// (freelancers.json + project-status.json) so older deployments come up
// with their roster intact.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if err := os.MkdirAll(filepath.Join(appCfg.DataDir, "contracts"), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	if err := bootstrapUsersDocument(ctx, appCfg, deps, logger); err != nil {
		// The document can still be synthesized lazily on first read;
		// startup continues.
		logger.Warn("legacy users bootstrap failed", zap.Error(err))
	}

	return nil
}

func bootstrapUsersDocument(ctx context.Context, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	store := deps.UsersMirror
	if store == nil {
		store = deps.Users
	}

	_, _, err := store.Load(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, docstore.ErrNotFound) {
		return err
	}

	doc, err := userstore.BootstrapFromDir(appCfg.DataDir, time.Now())
	if err != nil {
		return err
	}
	if len(doc.Users) == 0 {
		// Nothing to migrate; the first applicant will create the document.
		return nil
	}
	if _, err := store.Save(ctx, doc, "", "Create users.json from legacy data"); err != nil {
		return err
	}
	logger.Info("users document created from legacy files", zap.Int("users", len(doc.Users)))
	return nil
}
