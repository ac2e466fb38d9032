package workentry

import (
	"time"
)

// Status is the lifecycle state of a logged work entry.
type Status string

const (
	StatusDraft      Status = "draft"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Valid reports whether s is one of the known entry statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

type WorkEntry struct {
	ID           string
	UserID       string
	CompanyID    string
	DepartmentID *string
	ProjectID    *string
	WorkTitle    string
	Description  *string
	Date         time.Time
	StartTime    *time.Time
	EndTime      *time.Time
	HoursWorked  float64
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Hours returns the entry duration in hours. The precomputed value wins;
// otherwise it falls back to end minus start. Entries with neither yield 0.
func (e WorkEntry) Hours() float64 {
	if e.HoursWorked > 0 {
		return e.HoursWorked
	}
	if e.StartTime != nil && e.EndTime != nil && e.EndTime.After(*e.StartTime) {
		return e.EndTime.Sub(*e.StartTime).Hours()
	}
	return 0
}

// Day returns the entry's calendar day in YYYY-MM-DD form, the grouping key
// for daily buckets.
func (e WorkEntry) Day() string {
	return e.Date.Format("2006-01-02")
}

// Completed reports whether the entry reached the completed status.
func (e WorkEntry) Completed() bool {
	return e.Status == StatusCompleted
}
