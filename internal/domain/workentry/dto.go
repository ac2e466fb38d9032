package workentry

import (
	"time"

	"github.com/MotionPhix/workhub-backend-go/internal/pkg/validator"
)

// ========================================
// CREATE WORK ENTRY
// ========================================

type CreateWorkEntryRequest struct {
	Date        string   `json:"date"`
	StartTime   *string  `json:"start_time,omitempty"`
	EndTime     *string  `json:"end_time,omitempty"`
	HoursWorked *float64 `json:"hours_worked,omitempty"`
	Status      string   `json:"status"`
	WorkTitle   string   `json:"work_title"`
	Description *string  `json:"description,omitempty"`
	ProjectID   *string  `json:"project_id,omitempty"`
}

func (r *CreateWorkEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.WorkTitle) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_title",
			Message: "work_title is required",
		})
	}

	if !Status(r.Status).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of draft, in_progress, completed",
		})
	}

	if r.HoursWorked != nil && !validator.IsNonNegative(*r.HoursWorked) {
		errs = append(errs, validator.ValidationError{
			Field:   "hours_worked",
			Message: "hours_worked must not be negative",
		})
	}

	var start, end time.Time
	startOK, endOK := false, false
	if r.StartTime != nil {
		start, startOK = validator.IsValidDateTime(*r.StartTime)
		if !startOK {
			errs = append(errs, validator.ValidationError{
				Field:   "start_time",
				Message: "start_time must be an ISO8601 timestamp",
			})
		}
	}
	if r.EndTime != nil {
		end, endOK = validator.IsValidDateTime(*r.EndTime)
		if !endOK {
			errs = append(errs, validator.ValidationError{
				Field:   "end_time",
				Message: "end_time must be an ISO8601 timestamp",
			})
		}
	}
	if startOK && endOK && !end.After(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be after start_time",
		})
	}

	if r.HoursWorked == nil && (r.StartTime == nil || r.EndTime == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "hours_worked",
			Message: "either hours_worked or start_time and end_time are required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========================================
// LIST WORK ENTRIES
// ========================================

type ListWorkEntriesRequest struct {
	UserID    string `json:"user_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r *ListWorkEntriesRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.StartDate != "" {
		if _, ok := validator.IsValidDate(r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.EndDate != "" {
		if _, ok := validator.IsValidDate(r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========================================
// RESPONSES
// ========================================

type WorkEntryResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	DepartmentID *string `json:"department_id,omitempty"`
	ProjectID    *string `json:"project_id,omitempty"`
	WorkTitle    string  `json:"work_title"`
	Description  *string `json:"description,omitempty"`
	Date         string  `json:"date"`
	StartTime    *string `json:"start_time,omitempty"`
	EndTime      *string `json:"end_time,omitempty"`
	HoursWorked  float64 `json:"hours_worked"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at"`
}

// NewWorkEntryResponse maps an entity to its API shape.
func NewWorkEntryResponse(e WorkEntry) WorkEntryResponse {
	resp := WorkEntryResponse{
		ID:           e.ID,
		UserID:       e.UserID,
		DepartmentID: e.DepartmentID,
		ProjectID:    e.ProjectID,
		WorkTitle:    e.WorkTitle,
		Description:  e.Description,
		Date:         e.Date.Format("2006-01-02"),
		HoursWorked:  e.Hours(),
		Status:       string(e.Status),
		CreatedAt:    e.CreatedAt.Format(time.RFC3339),
	}
	if e.StartTime != nil {
		s := e.StartTime.Format(time.RFC3339)
		resp.StartTime = &s
	}
	if e.EndTime != nil {
		s := e.EndTime.Format(time.RFC3339)
		resp.EndTime = &s
	}
	return resp
}
