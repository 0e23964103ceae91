// internal/app/features/users/handler.go

// Package users serves the consolidated users document to the dashboard.
package users

import (
	"context"
	"net/http"
	"time"

	"github.com/cochranfilms/crewops/internal/app/features/shared"
	"github.com/cochranfilms/crewops/internal/app/store/docstore"
	userstore "github.com/cochranfilms/crewops/internal/app/store/users"
	"github.com/cochranfilms/crewops/internal/app/system/timeouts"
	"github.com/cochranfilms/crewops/internal/domain/models"
	"go.uber.org/zap"
)

// Handler reads the users document remote-first: the configured document
// store is authoritative, and a local mirror under DataDir keeps reads
// working through upstream outages. Mirror is nil when the primary store
// is already the local file.
type Handler struct {
	Primary *userstore.Store
	Mirror  *userstore.Store
	Source  string // label reported in _metadata, e.g. "github"
	DataDir string
	Log     *zap.Logger
}

// NewHandler constructs a users Handler.
func NewHandler(primary, mirror *userstore.Store, source, dataDir string, logger *zap.Logger) *Handler {
	return &Handler{
		Primary: primary,
		Mirror:  mirror,
		Source:  source,
		DataDir: dataDir,
		Log:     logger,
	}
}

type metadata struct {
	DataSource string `json:"dataSource"`
	FetchedAt  string `json:"fetchedAt"`
	TotalUsers int    `json:"totalUsers"`
}

type usersResponse struct {
	models.UsersDocument
	Metadata metadata `json:"_metadata"`
}

// Serve handles GET /api/users.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "users read")
	defer cancel()

	doc, source, err := h.load(ctx)
	if err != nil {
		h.Log.Error("users document unavailable", zap.Error(err))
		shared.JSON(w, http.StatusInternalServerError, map[string]any{
			"error":   "Internal server error",
			"message": err.Error(),
		})
		return
	}

	shared.JSON(w, http.StatusOK, usersResponse{
		UsersDocument: doc,
		Metadata: metadata{
			DataSource: source,
			FetchedAt:  time.Now().UTC().Format(time.RFC3339),
			TotalUsers: len(doc.Users),
		},
	})
}

func (h *Handler) load(ctx context.Context) (models.UsersDocument, string, error) {
	doc, _, err := h.Primary.Load(ctx)
	if err == nil {
		h.refreshMirror(ctx, doc)
		return doc, h.Source, nil
	}
	if h.Mirror == nil {
		return models.UsersDocument{}, "", err
	}
	h.Log.Warn("primary users load failed, using local mirror", zap.Error(err))

	if doc, _, mErr := h.Mirror.Load(ctx); mErr == nil {
		return doc, "local", nil
	}

	// No mirror yet: rebuild from the legacy per-file layout if present.
	doc, bErr := userstore.BootstrapFromDir(h.DataDir, time.Now())
	if bErr != nil {
		return models.UsersDocument{}, "", bErr
	}
	h.refreshMirror(ctx, doc)
	return doc, "local", nil
}

// refreshMirror writes the latest document to the local mirror so outage
// reads stay current. Best effort; the response never depends on it.
func (h *Handler) refreshMirror(ctx context.Context, doc models.UsersDocument) {
	if h.Mirror == nil {
		return
	}
	ver := docstore.Version("")
	if _, v, err := h.Mirror.Load(ctx); err == nil {
		ver = v
	}
	if _, err := h.Mirror.Save(ctx, doc, ver, "Mirror refresh from "+h.Source); err != nil {
		h.Log.Warn("users mirror refresh failed", zap.Error(err))
	}
}
