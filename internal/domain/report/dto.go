package report

import (
	"fmt"
	"time"

	"github.com/MotionPhix/workhub-backend-go/internal/domain/insight"
	"github.com/MotionPhix/workhub-backend-go/internal/pkg/validator"
)

// ========================================
// PRODUCTIVITY REPORT
// ========================================

// ProductivityReportRequest asks for a monthly productivity report, either
// for one user (user_id set) or for the whole company.
type ProductivityReportRequest struct {
	Month  int     `json:"month"`
	Year   int     `json:"year"`
	UserID *string `json:"user_id,omitempty"`
}

func (r *ProductivityReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	currentYear := time.Now().Year()
	if r.Year < 2020 || r.Year > currentYear+1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: fmt.Sprintf("year must be between 2020 and %d", currentYear+1),
		})
	}

	if r.UserID != nil && !validator.IsValidUUID(*r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Report scopes
const (
	ScopeUser    = "user"
	ScopeCompany = "company"
)

// ProductivityReport is the per-period document handed to the export and
// delivery collaborators. Dates are plain strings; any locale formatting is
// the collaborator's job.
type ProductivityReport struct {
	ID          string  `json:"id"`
	Scope       string  `json:"scope"`
	UserID      *string `json:"user_id,omitempty"`
	PeriodMonth int     `json:"period_month"`
	PeriodYear  int     `json:"period_year"`
	PeriodStart string  `json:"period_start"`
	PeriodEnd   string  `json:"period_end"`
	GeneratedAt string  `json:"generated_at"`

	Productivity insight.ScoreResult     `json:"productivity"`
	Trend        insight.TrendResult     `json:"trend"`
	Burnout      *insight.RiskAssessment `json:"burnout,omitempty"`

	Workload    *insight.TeamWorkload  `json:"workload,omitempty"`
	Departments []insight.GroupSummary `json:"departments,omitempty"`
	Projects    []insight.GroupSummary `json:"projects,omitempty"`
}
