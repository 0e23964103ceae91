package intake

import (
	"testing"
	"time"

	"github.com/cochranfilms/crewops/internal/domain/models"
)

var mergeNow = time.Date(2026, 8, 30, 15, 4, 5, 0, time.UTC)

func TestMerge_NewApplicant(t *testing.T) {
	current := models.EmptyUsersDocument()

	next := Merge(current, Submission{
		FullName: "  Jane Doe  ",
		Email:    "jane@x.com",
		Phone:    "404-555-0100",
	}, mergeNow)

	if next.TotalUsers != 1 {
		t.Fatalf("totalUsers: got %d, want 1", next.TotalUsers)
	}
	rec, ok := next.Users["Jane Doe"]
	if !ok {
		t.Fatalf("expected trimmed key %q, have %v", "Jane Doe", keys(next.Users))
	}
	if rec.Contract.ContractStatus != models.ContractStatusPending {
		t.Errorf("contractStatus: got %q, want pending", rec.Contract.ContractStatus)
	}
	if rec.Application == nil || rec.Application.Status != "pending" {
		t.Errorf("application: got %+v", rec.Application)
	}
	if rec.Application.Source != "apply-form" {
		t.Errorf("source default: got %q", rec.Application.Source)
	}
	if next.LastUpdated != "2026-08-30" {
		t.Errorf("lastUpdated: got %q", next.LastUpdated)
	}
	if len(next.StatusOptions.ProjectStatus) == 0 {
		t.Error("expected default status options")
	}
}

func TestMerge_ExistingApplicantPreservesContractAndJobs(t *testing.T) {
	contractID := "CF-001"
	primary := "job-1"
	current := models.UsersDocument{
		Users: map[string]models.UserRecord{
			"Jane Doe": {
				Profile: models.Profile{
					Email:       "old@x.com",
					Location:    "Atlanta",
					Role:        "Editor",
					Rate:        "$350/day",
					ProjectType: "Event",
				},
				Contract: models.Contract{
					ContractStatus: "signed",
					ContractID:     &contractID,
				},
				Jobs: map[string]models.JobAssignment{
					"job-1": {"projectStatus": "in-progress"},
				},
				PrimaryJob: &primary,
			},
		},
		StatusOptions: models.DefaultStatusOptions(),
		System:        map[string]any{"version": "2.0"},
	}

	next := Merge(current, Submission{
		FullName: "Jane Doe",
		Email:    "jane@x.com",
	}, mergeNow)

	rec := next.Users["Jane Doe"]
	if rec.Contract.ContractStatus != "signed" || rec.Contract.ContractID == nil || *rec.Contract.ContractID != "CF-001" {
		t.Errorf("contract was not preserved: %+v", rec.Contract)
	}
	if len(rec.Jobs) != 1 {
		t.Errorf("jobs were not preserved: %+v", rec.Jobs)
	}
	if rec.PrimaryJob == nil || *rec.PrimaryJob != "job-1" {
		t.Errorf("primaryJob was not preserved: %v", rec.PrimaryJob)
	}
	// Profile: email replaced, location falls back to stored value,
	// role/rate/projectType carried over.
	if rec.Profile.Email != "jane@x.com" {
		t.Errorf("email: got %q", rec.Profile.Email)
	}
	if rec.Profile.Location != "Atlanta" {
		t.Errorf("location fallback: got %q, want Atlanta", rec.Profile.Location)
	}
	if rec.Profile.Role != "Editor" || rec.Profile.Rate != "$350/day" {
		t.Errorf("role/rate not carried over: %+v", rec.Profile)
	}
	if v, ok := next.System["version"]; !ok || v != "2.0" {
		t.Errorf("system bag not preserved: %v", next.System)
	}
	if next.TotalUsers != 1 {
		t.Errorf("totalUsers: got %d", next.TotalUsers)
	}
}

func TestMerge_SubmittedLocationWins(t *testing.T) {
	current := models.UsersDocument{
		Users: map[string]models.UserRecord{
			"Jane Doe": {Profile: models.Profile{Location: "Atlanta"}},
		},
	}

	next := Merge(current, Submission{
		FullName: "Jane Doe",
		Email:    "jane@x.com",
		Location: "Nashville",
	}, mergeNow)

	if got := next.Users["Jane Doe"].Profile.Location; got != "Nashville" {
		t.Errorf("location: got %q, want Nashville", got)
	}
}

func TestMerge_NearDuplicateNamesAreDistinct(t *testing.T) {
	current := models.EmptyUsersDocument()
	next := Merge(current, Submission{FullName: "Jane Doe", Email: "a@x.com"}, mergeNow)
	next = Merge(next, Submission{FullName: "jane doe", Email: "b@x.com"}, mergeNow)

	if next.TotalUsers != 2 {
		t.Fatalf("expected case-sensitive keys to stay distinct, got %d users", next.TotalUsers)
	}
}

func TestMerge_ResubmissionUpdatesSubmittedAt(t *testing.T) {
	first := Merge(models.EmptyUsersDocument(), Submission{FullName: "Jane Doe", Email: "jane@x.com"}, mergeNow)
	second := Merge(first, Submission{FullName: "Jane Doe", Email: "jane@x.com"}, mergeNow.Add(time.Minute))

	a := first.Users["Jane Doe"].Application.SubmittedAt
	b := second.Users["Jane Doe"].Application.SubmittedAt
	if b <= a {
		t.Errorf("second submittedAt %q not later than first %q", b, a)
	}
	if second.TotalUsers != 1 {
		t.Errorf("totalUsers changed on resubmission: %d", second.TotalUsers)
	}
}

func TestMerge_LeavesInputUntouched(t *testing.T) {
	current := Merge(models.EmptyUsersDocument(), Submission{FullName: "Jane Doe", Email: "jane@x.com"}, mergeNow)
	before := current.Users["Jane Doe"].Application.SubmittedAt

	Merge(current, Submission{FullName: "Jane Doe", Email: "jane@x.com"}, mergeNow.Add(time.Minute))
	Merge(current, Submission{FullName: "John Roe", Email: "john@x.com"}, mergeNow.Add(time.Minute))

	if got := current.Users["Jane Doe"].Application.SubmittedAt; got != before {
		t.Errorf("input record rewritten: submittedAt %q -> %q", before, got)
	}
	if len(current.Users) != 1 {
		t.Errorf("input users map grew: %v", keys(current.Users))
	}
}

func keys(m map[string]models.UserRecord) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
