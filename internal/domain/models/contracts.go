// internal/domain/models/contracts.go
package models

// UploadedContractsDocument is the whole uploaded-contracts.json file.
type UploadedContractsDocument struct {
	UploadedContracts []UploadedContract `json:"uploadedContracts"`
	TotalContracts    int                `json:"totalContracts"`
	LastUpdated       string             `json:"lastUpdated,omitempty"` // YYYY-MM-DD
}

// UploadedContract is one signed-contract PDF tracked by the admin dashboard.
type UploadedContract struct {
	ContractID   string `json:"contractId,omitempty"`
	FileName     string `json:"fileName"`
	FreelancerID string `json:"freelancerId,omitempty"`
	UploadedAt   string `json:"uploadedAt,omitempty"`
	SignedDate   string `json:"signedDate,omitempty"`
}
