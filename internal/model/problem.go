package model

import "time"

// Problem statuses.
const (
	StatusPending  = "pending"
	StatusResolved = "resolved"
)

// Sort keys accepted by the list endpoints and the review pipeline.
const (
	SortNewest = "newest"
	SortOldest = "oldest"
	SortEmail  = "email"
	SortStatus = "status"
)

// ValidStatus reports whether s is one of the two problem statuses.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusResolved
}

// Problem represents a single problem submission.
type Problem struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Problem   string    `json:"problem"`
	Status    string    `json:"status"` // "pending" | "resolved"
	Timestamp time.Time `json:"timestamp"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProblemListOptions carries filter and sort parameters for listing problems.
type ProblemListOptions struct {
	// Search is matched case-insensitively against email and problem text.
	Search string
	// Status filters by problem status: "", "pending", "resolved".
	// Empty string and unknown values return all problems.
	Status string
	// SortBy is one of the Sort* keys. Unknown values fall back to SortNewest.
	SortBy string
	Limit  int
}
