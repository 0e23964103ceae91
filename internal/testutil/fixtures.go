package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// SeedDataDir creates a temp data directory populated with the given
// files (name -> JSON content) and returns its path.
func SeedDataDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir for %s: %v", name, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

// SampleJobsData is a minimal jobs-data.json payload.
const SampleJobsData = `{
  "jobs": [
    {"title": "Camera Operator", "date": "2026-09-12", "location": "Atlanta, GA", "pay": "$400/day", "status": "Active"}
  ]
}`

// SampleDropdownOptions is a minimal dropdown-options.json payload.
const SampleDropdownOptions = `{
  "roles": ["Photographer", "Videographer", "Editor"],
  "rates": ["$150/day", "$250/day", "$400/day"],
  "locations": ["Atlanta, GA", "Remote"]
}`

// SampleFreelancers is a minimal legacy freelancers.json payload.
const SampleFreelancers = `{
  "approvedFreelancers": {
    "Jane Doe": {
      "email": "jane@x.com",
      "role": "Editor",
      "location": "Atlanta, GA",
      "rate": "$350/day",
      "contractStatus": "signed",
      "contractId": "CF-001"
    }
  }
}`
