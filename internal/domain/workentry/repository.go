package workentry

import (
	"context"
	"time"
)

// WorkEntryRepository defines the data access surface the analytics services
// read from. List methods return entries already scoped to the requested
// company/user/department and date range; the half-open range is [from, to).
type WorkEntryRepository interface {
	Create(ctx context.Context, entry WorkEntry) (WorkEntry, error)

	GetByID(ctx context.Context, companyID, id string) (WorkEntry, error)

	// ListByUser returns one user's entries within the range, oldest first.
	ListByUser(ctx context.Context, companyID, userID string, from, to time.Time) ([]WorkEntry, error)

	// ListByCompany returns all entries for a company within the range, oldest first.
	ListByCompany(ctx context.Context, companyID string, from, to time.Time) ([]WorkEntry, error)

	// ListByDepartment returns a department's entries within the range, oldest first.
	ListByDepartment(ctx context.Context, companyID, departmentID string, from, to time.Time) ([]WorkEntry, error)
}
