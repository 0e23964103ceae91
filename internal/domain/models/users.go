// internal/domain/models/users.go
package models

// UsersDocument is the whole users.json file: the single source of truth for
// freelancer/applicant state. It lives in a versioned document store and is
// rewritten whole on every change.
type UsersDocument struct {
	Users         map[string]UserRecord `json:"users"`
	StatusOptions StatusOptions         `json:"statusOptions"`
	LastUpdated   string                `json:"lastUpdated,omitempty"` // YYYY-MM-DD
	TotalUsers    int                   `json:"totalUsers"`
	System        map[string]any        `json:"system,omitempty"` // opaque pass-through
}

// UserRecord is one applicant/freelancer, keyed by full name.
//
// The intake flow refreshes Profile and Application on each submission;
// Contract, Jobs, and PrimaryJob are only touched by administrative flows
// and must survive re-application untouched.
type UserRecord struct {
	Profile       Profile                  `json:"profile"`
	Contract      Contract                 `json:"contract"`
	Application   *Application             `json:"application,omitempty"`
	Jobs          map[string]JobAssignment `json:"jobs"`
	PrimaryJob    *string                  `json:"primaryJob"` // id lookup into Jobs
	PaymentMethod *string                  `json:"paymentMethod,omitempty"`
}

// Profile holds the contact/profile fields an applicant can supply.
type Profile struct {
	Email        string `json:"email"`
	Location     string `json:"location"`
	Role         string `json:"role"`
	Rate         string `json:"rate"`
	ProjectType  string `json:"projectType"`
	Password     string `json:"password,omitempty"`
	ProjectStart string `json:"projectStart,omitempty"`
	ApprovedDate string `json:"approvedDate,omitempty"`
}

// Contract holds contract state established by administrative workflows.
type Contract struct {
	ContractStatus       string  `json:"contractStatus,omitempty"`
	ContractURL          string  `json:"contractUrl,omitempty"`
	ContractSignedDate   *string `json:"contractSignedDate,omitempty"`
	ContractUploadedDate *string `json:"contractUploadedDate,omitempty"`
	ContractID           *string `json:"contractId,omitempty"`
}

// Application is the most recent intake submission; it is replaced whole on
// every submission, never merged field-by-field.
type Application struct {
	Status      string `json:"status"`
	SubmittedAt string `json:"submittedAt"` // ISO-8601
	JobTitle    string `json:"jobTitle"`
	EventDate   string `json:"eventDate"`
	Pay         string `json:"pay"`
	Description string `json:"description"`
	Phone       string `json:"phone"`
	Source      string `json:"source"`
}

// JobAssignment is one job assigned to a user. The shape is controlled by the
// admin dashboard; the intake flow preserves it verbatim.
type JobAssignment map[string]any

// StatusOptions enumerates the valid project and payment statuses.
type StatusOptions struct {
	ProjectStatus []string `json:"projectStatus,omitempty"`
	PaymentStatus []string `json:"paymentStatus,omitempty"`
}

// ContractStatusPending is the contract state for a fresh applicant.
const ContractStatusPending = "pending"

// DefaultStatusOptions returns the fixed enumeration used when a document
// carries no statusOptions.
func DefaultStatusOptions() StatusOptions {
	return StatusOptions{
		ProjectStatus: []string{"upcoming", "in-progress", "completed", "cancelled"},
		PaymentStatus: []string{"pending", "processing", "paid", "overdue"},
	}
}

// IsZero reports whether no options are set.
func (o StatusOptions) IsZero() bool {
	return len(o.ProjectStatus) == 0 && len(o.PaymentStatus) == 0
}

// EmptyUsersDocument returns the document the intake flow starts from when
// nothing has been persisted yet.
func EmptyUsersDocument() UsersDocument {
	return UsersDocument{
		Users:  map[string]UserRecord{},
		System: map[string]any{},
	}
}
