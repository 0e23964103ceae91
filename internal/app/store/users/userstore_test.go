package userstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cochranfilms/crewops/internal/app/store/docstore"
	"github.com/cochranfilms/crewops/internal/domain/models"
)

func TestStore_RoundTrip(t *testing.T) {
	store := New(docstore.NewLocal(t.TempDir(), "users.json"))
	ctx := context.Background()

	doc := models.EmptyUsersDocument()
	doc.Users["Jane Doe"] = models.UserRecord{
		Profile:  models.Profile{Email: "jane@x.com"},
		Contract: models.Contract{ContractStatus: models.ContractStatusPending},
		Jobs:     map[string]models.JobAssignment{},
	}
	doc.TotalUsers = 1

	ver, err := store.Save(ctx, doc, "", "add Jane Doe")
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, loadedVer, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loadedVer != ver {
		t.Errorf("version: got %q, want %q", loadedVer, ver)
	}
	rec, ok := got.Users["Jane Doe"]
	if !ok {
		t.Fatal("expected Jane Doe in loaded document")
	}
	if rec.Profile.Email != "jane@x.com" {
		t.Errorf("email: got %q", rec.Profile.Email)
	}
	if rec.Contract.ContractStatus != models.ContractStatusPending {
		t.Errorf("contractStatus: got %q", rec.Contract.ContractStatus)
	}
}

func TestStore_LoadMissingPassesThrough(t *testing.T) {
	store := New(docstore.NewLocal(t.TempDir(), "users.json"))

	_, _, err := store.Load(context.Background())
	if !errors.Is(err, docstore.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFromLegacy_MergesFreelancersAndProjectStatus(t *testing.T) {
	freelancers := []byte(`{
		"approvedFreelancers": {
			"John Smith": {
				"email": "john@x.com",
				"role": "Videographer",
				"location": "Atlanta",
				"rate": "$400/day",
				"contractUrl": "contracts/john.pdf",
				"contractStatus": "signed"
			},
			"Amy Chen": {
				"email": "amy@x.com"
			}
		}
	}`)
	projectStatus := []byte(`{
		"projectStatus": {
			"John Smith": {"jobs": {"job-1": {"projectStatus": "upcoming"}}},
			"New Person": {"jobs": {"job-2": {"projectStatus": "completed"}}}
		}
	}`)

	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	doc, err := FromLegacy(freelancers, projectStatus, now)
	if err != nil {
		t.Fatalf("FromLegacy failed: %v", err)
	}

	if doc.TotalUsers != 3 || len(doc.Users) != 3 {
		t.Fatalf("expected 3 users, got totalUsers=%d len=%d", doc.TotalUsers, len(doc.Users))
	}
	if doc.LastUpdated != "2026-08-30" {
		t.Errorf("lastUpdated: got %q", doc.LastUpdated)
	}

	john := doc.Users["John Smith"]
	if john.Contract.ContractStatus != "signed" {
		t.Errorf("john contractStatus: got %q", john.Contract.ContractStatus)
	}
	if _, ok := john.Jobs["job-1"]; !ok {
		t.Error("expected john to carry job-1 from project status")
	}

	amy := doc.Users["Amy Chen"]
	if amy.Contract.ContractStatus != models.ContractStatusPending {
		t.Errorf("amy contractStatus: got %q, want pending", amy.Contract.ContractStatus)
	}

	stray := doc.Users["New Person"]
	if _, ok := stray.Jobs["job-2"]; !ok {
		t.Error("expected project-status-only user to be created with jobs")
	}
}

func TestFromLegacy_EmptyInputs(t *testing.T) {
	doc, err := FromLegacy(nil, nil, time.Now())
	if err != nil {
		t.Fatalf("FromLegacy failed: %v", err)
	}
	if doc.TotalUsers != 0 || len(doc.Users) != 0 {
		t.Errorf("expected empty document, got %d users", len(doc.Users))
	}
	if doc.StatusOptions.IsZero() {
		t.Error("expected default status options")
	}
}
