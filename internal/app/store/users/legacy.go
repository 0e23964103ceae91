// internal/app/store/users/legacy.go
package userstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cochranfilms/crewops/internal/domain/models"
)

// Shapes of the pre-users.json data files. Only the fields the migration
// needs are decoded; everything else in those files is ignored.

type legacyFreelancers struct {
	ApprovedFreelancers map[string]legacyFreelancer `json:"approvedFreelancers"`
}

type legacyFreelancer struct {
	Email                string  `json:"email"`
	Password             string  `json:"password"`
	Role                 string  `json:"role"`
	Location             string  `json:"location"`
	ProjectStart         string  `json:"projectStart"`
	Rate                 string  `json:"rate"`
	ApprovedDate         string  `json:"approvedDate"`
	ContractURL          string  `json:"contractUrl"`
	ContractStatus       string  `json:"contractStatus"`
	ContractSignedDate   *string `json:"contractSignedDate"`
	ContractUploadedDate *string `json:"contractUploadedDate"`
	ContractID           *string `json:"contractId"`
	PrimaryJob           *string `json:"primaryJob"`
	PaymentMethod        *string `json:"paymentMethod"`
}

type legacyProjectStatus struct {
	ProjectStatus map[string]struct {
		Jobs map[string]models.JobAssignment `json:"jobs"`
	} `json:"projectStatus"`
}

// FromLegacy synthesizes a users document from the freelancers.json and
// project-status.json payloads. Either input may be nil. This is the one-shot
// migration run when users.json has never been written.
func FromLegacy(freelancersRaw, projectStatusRaw []byte, now time.Time) (models.UsersDocument, error) {
	users := map[string]models.UserRecord{}

	if len(freelancersRaw) > 0 {
		var f legacyFreelancers
		if err := json.Unmarshal(freelancersRaw, &f); err != nil {
			return models.UsersDocument{}, fmt.Errorf("decode freelancers.json: %w", err)
		}
		for name, data := range f.ApprovedFreelancers {
			status := data.ContractStatus
			if status == "" {
				status = models.ContractStatusPending
			}
			users[name] = models.UserRecord{
				Profile: models.Profile{
					Email:        data.Email,
					Password:     data.Password,
					Role:         data.Role,
					Location:     data.Location,
					ProjectStart: data.ProjectStart,
					Rate:         data.Rate,
					ApprovedDate: data.ApprovedDate,
				},
				Contract: models.Contract{
					ContractURL:          data.ContractURL,
					ContractStatus:       status,
					ContractSignedDate:   data.ContractSignedDate,
					ContractUploadedDate: data.ContractUploadedDate,
					ContractID:           data.ContractID,
				},
				Jobs:          map[string]models.JobAssignment{},
				PrimaryJob:    data.PrimaryJob,
				PaymentMethod: data.PaymentMethod,
			}
		}
	}

	if len(projectStatusRaw) > 0 {
		var p legacyProjectStatus
		if err := json.Unmarshal(projectStatusRaw, &p); err != nil {
			return models.UsersDocument{}, fmt.Errorf("decode project-status.json: %w", err)
		}
		for name, data := range p.ProjectStatus {
			jobs := data.Jobs
			if jobs == nil {
				jobs = map[string]models.JobAssignment{}
			}
			if rec, ok := users[name]; ok {
				rec.Jobs = jobs
				users[name] = rec
			} else {
				users[name] = models.UserRecord{
					Jobs: jobs,
				}
			}
		}
	}

	return models.UsersDocument{
		Users:         users,
		StatusOptions: models.DefaultStatusOptions(),
		LastUpdated:   now.Format("2006-01-02"),
		TotalUsers:    len(users),
	}, nil
}

// BootstrapFromDir runs FromLegacy over the legacy files in dir. Missing
// files are treated as empty inputs, matching the original migration.
func BootstrapFromDir(dir string, now time.Time) (models.UsersDocument, error) {
	freelancersRaw := readOptional(filepath.Join(dir, "freelancers.json"))
	projectStatusRaw := readOptional(filepath.Join(dir, "project-status.json"))
	return FromLegacy(freelancersRaw, projectStatusRaw, now)
}

func readOptional(path string) []byte {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	return data
}
