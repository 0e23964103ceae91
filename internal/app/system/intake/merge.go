// internal/app/system/intake/merge.go

// Package intake converts application-form submissions into users-document
// updates. Merge is the pure field-level policy; Service wraps it in a
// load→merge→save loop against the versioned document store.
package intake

import (
	"errors"
	"strings"
	"time"

	"github.com/cochranfilms/crewops/internal/domain/models"
)

// Submission is one application-form payload.
type Submission struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Location    string `json:"location"`
	ApplyingFor string `json:"applyingFor"`
	EventDate   string `json:"eventDate"`
	Pay         string `json:"pay"`
	Description string `json:"description"`
	Source      string `json:"source"`
}

// ErrMissingFields is returned when fullName or email is absent.
var ErrMissingFields = errors.New("fullName and email are required")

// Validate checks the mandatory fields. All other fields default to "".
func (s Submission) Validate() error {
	if strings.TrimSpace(s.FullName) == "" || strings.TrimSpace(s.Email) == "" {
		return ErrMissingFields
	}
	return nil
}

// NameKey returns the users-document key for this submission: the full name
// trimmed of surrounding whitespace, matched case-sensitively. No further
// normalization happens; near-duplicate names are distinct records.
func (s Submission) NameKey() string {
	return strings.TrimSpace(s.FullName)
}

// Merge folds a submission into the current document and returns the next
// document state, leaving the input untouched. The policy is
// replace-profile/application, preserve-contract/jobs: intake can refresh
// who the applicant is and what they applied for, but never touches
// contractual or job-assignment state established by administrative
// workflows.
func Merge(current models.UsersDocument, sub Submission, now time.Time) models.UsersDocument {
	users := make(map[string]models.UserRecord, len(current.Users)+1)
	for name, rec := range current.Users {
		users[name] = rec
	}

	key := sub.NameKey()
	existing, known := users[key]

	profile := models.Profile{
		Email:       sub.Email,
		Location:    firstNonEmpty(sub.Location, existing.Profile.Location),
		Role:        existing.Profile.Role,
		Rate:        existing.Profile.Rate,
		ProjectType: existing.Profile.ProjectType,
	}

	contract := existing.Contract
	if !known || contract == (models.Contract{}) {
		contract = models.Contract{ContractStatus: models.ContractStatusPending}
	}

	jobs := existing.Jobs
	if jobs == nil {
		jobs = map[string]models.JobAssignment{}
	}

	source := sub.Source
	if source == "" {
		source = "apply-form"
	}

	users[key] = models.UserRecord{
		Profile:  profile,
		Contract: contract,
		Application: &models.Application{
			Status:      "pending",
			SubmittedAt: now.UTC().Format(time.RFC3339Nano),
			JobTitle:    sub.ApplyingFor,
			EventDate:   sub.EventDate,
			Pay:         sub.Pay,
			Description: sub.Description,
			Phone:       sub.Phone,
			Source:      source,
		},
		Jobs:          jobs,
		PrimaryJob:    existing.PrimaryJob,
		PaymentMethod: existing.PaymentMethod,
	}

	statusOptions := current.StatusOptions
	if statusOptions.IsZero() {
		statusOptions = models.DefaultStatusOptions()
	}

	system := current.System
	if system == nil {
		system = map[string]any{}
	}

	return models.UsersDocument{
		Users:         users,
		StatusOptions: statusOptions,
		LastUpdated:   now.Format("2006-01-02"),
		TotalUsers:    len(users),
		System:        system,
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
