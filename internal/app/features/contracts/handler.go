// internal/app/features/contracts/handler.go

// Package contracts serves the uploaded-contracts ledger and handles
// contract PDF removal.
package contracts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/cochranfilms/crewops/internal/app/features/shared"
	contractstore "github.com/cochranfilms/crewops/internal/app/store/contracts"
	"github.com/cochranfilms/crewops/internal/app/store/docstore"
	"github.com/cochranfilms/crewops/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// RemoteRemover deletes a contract PDF from the remote repository copy.
// Nil when no remote is configured.
type RemoteRemover interface {
	Remove(ctx context.Context, fileName, message string) error
}

// Handler holds dependencies for the contracts endpoints.
type Handler struct {
	Store   *contractstore.Store
	Remote  RemoteRemover
	DataDir string
	Log     *zap.Logger
}

// NewHandler constructs a contracts Handler.
func NewHandler(store *contractstore.Store, remote RemoteRemover, dataDir string, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Remote: remote, DataDir: dataDir, Log: logger}
}

// List handles GET /api/uploaded-contracts.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "contracts read")
	defer cancel()

	doc, _, err := h.Store.Load(ctx)
	if err != nil {
		h.Log.Error("contracts document unavailable", zap.Error(err))
		shared.JSON(w, http.StatusInternalServerError, map[string]any{
			"error":   "Failed to load contracts data",
			"details": err.Error(),
		})
		return
	}
	shared.JSON(w, http.StatusOK, doc)
}

type deleteRequest struct {
	FileName   string `json:"fileName"`
	ContractID string `json:"contractId"`
}

type deleteDetails struct {
	FileName      string `json:"fileName"`
	ContractID    string `json:"contractId"`
	LocalDeleted  bool   `json:"localDeleted"`
	JSONUpdated   bool   `json:"jsonUpdated"`
	GitHubDeleted bool   `json:"githubDeleted"`
}

// Delete handles DELETE /api/delete-pdf.
//
// Removal is best effort across three places: the PDF on disk, the ledger
// entry, and the remote repository copy. Partial success is still reported
// as success with the per-target outcome in details.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	var req deleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.FileName == "" {
		shared.Failure(w, http.StatusBadRequest, "fileName is required")
		return
	}

	// Path traversal guard: the ledger only ever holds bare file names.
	fileName := filepath.Base(req.FileName)

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "contract delete")
	defer cancel()

	details := deleteDetails{FileName: fileName, ContractID: req.ContractID}

	localPath := filepath.Join(h.DataDir, "contracts", fileName)
	if err := os.Remove(localPath); err == nil {
		details.LocalDeleted = true
	} else if !errors.Is(err, os.ErrNotExist) {
		h.Log.Warn("local contract removal failed", zap.String("file", fileName), zap.Error(err))
	}

	removed, err := h.Store.RemoveByFileName(ctx, fileName, time.Now())
	if err != nil {
		h.Log.Warn("contract ledger update failed", zap.String("file", fileName), zap.Error(err))
	}
	details.JSONUpdated = removed

	if h.Remote != nil && req.ContractID != "" {
		message := "Delete contract " + req.ContractID + " - " + fileName
		switch err := h.Remote.Remove(ctx, fileName, message); {
		case err == nil:
			details.GitHubDeleted = true
		case errors.Is(err, docstore.ErrNotFound):
			// Already gone upstream.
		default:
			h.Log.Warn("remote contract removal failed", zap.String("file", fileName), zap.Error(err))
		}
	}

	success := details.LocalDeleted || details.JSONUpdated
	message := "PDF deleted successfully"
	if !success {
		message = "PDF not found"
	}
	shared.JSON(w, http.StatusOK, map[string]any{
		"success": success,
		"message": message,
		"details": details,
	})
}

// GitHubRemover removes contract PDFs from a GitHub repository. Each file
// needs its current sha, so removal is a load-then-delete pair.
type GitHubRemover struct {
	cfg    docstore.GitHubConfig
	client *http.Client
}

// NewGitHubRemover builds a remover for the contracts/ directory of the
// configured repository.
func NewGitHubRemover(cfg docstore.GitHubConfig, client *http.Client) *GitHubRemover {
	return &GitHubRemover{cfg: cfg, client: client}
}

// Remove implements RemoteRemover.
func (g *GitHubRemover) Remove(ctx context.Context, fileName, message string) error {
	cfg := g.cfg
	cfg.Path = "contracts/" + fileName
	store := docstore.NewGitHub(cfg, g.client)

	_, ver, err := store.Load(ctx)
	if err != nil {
		return err
	}
	return store.Delete(ctx, ver, message)
}
