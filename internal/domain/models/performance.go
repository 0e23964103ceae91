// internal/domain/models/performance.go
package models

// PerformanceDocument is the whole performance.json file, keyed by the
// reviewed user's email.
type PerformanceDocument struct {
	PerformanceReviews map[string]PerformanceReview `json:"performanceReviews"`
	ReviewOptions      ReviewOptions                `json:"reviewOptions"`
	LastUpdated        string                       `json:"lastUpdated,omitempty"` // ISO-8601
	TotalReviews       int                          `json:"totalReviews"`
}

// PerformanceReview is one admin review of a freelancer.
type PerformanceReview struct {
	UserEmail     string         `json:"userEmail"`
	ReviewDate    string         `json:"reviewDate"` // YYYY-MM-DD
	OverallRating int            `json:"overallRating"`
	Categories    map[string]int `json:"categories"`
	Comments      string         `json:"comments"`
	AdminNotes    string         `json:"adminNotes"`
	Status        string         `json:"status"` // pending | completed | overdue
	ReviewedBy    string         `json:"reviewedBy"`
	LastUpdated   string         `json:"lastUpdated"` // ISO-8601
}

// ReviewOptions enumerates the valid rating values, categories, and statuses.
type ReviewOptions struct {
	Rating     []int    `json:"rating"`
	Categories []string `json:"categories"`
	Status     []string `json:"status"`
}

// DefaultReviewOptions returns the fixed review enumeration used when the
// document is missing or carries no options.
func DefaultReviewOptions() ReviewOptions {
	return ReviewOptions{
		Rating: []int{1, 2, 3, 4, 5},
		Categories: []string{
			"Professionalism",
			"Quality",
			"Communication",
			"Reliability",
			"Overall Performance",
		},
		Status: []string{"pending", "completed", "overdue"},
	}
}
