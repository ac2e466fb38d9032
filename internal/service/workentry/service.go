package workentry

import (
	"context"
	"fmt"
	"time"

	"github.com/MotionPhix/workhub-backend-go/internal/domain/insight"
	"github.com/MotionPhix/workhub-backend-go/internal/domain/workentry"
	"github.com/MotionPhix/workhub-backend-go/internal/pkg/database"
	"github.com/MotionPhix/workhub-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
)

type WorkEntryServiceImpl struct {
	db        database.TxBeginner
	entryRepo workentry.WorkEntryRepository
}

func NewWorkEntryService(db database.TxBeginner, entryRepo workentry.WorkEntryRepository) workentry.WorkEntryService {
	return &WorkEntryServiceImpl{
		db:        db,
		entryRepo: entryRepo,
	}
}

// getScope extracts company_id and user_id from JWT claims
func (s *WorkEntryServiceImpl) getScope(ctx context.Context) (companyID, userID string, departmentID *string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", nil, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", "", nil, insight.ErrMissingCompanyScope
	}
	userID, ok = claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", nil, insight.ErrMissingUserScope
	}
	if dep, ok := claims["department_id"].(string); ok && dep != "" {
		departmentID = &dep
	}
	return companyID, userID, departmentID, nil
}

// Create validates and stores a new work entry for the calling user.
func (s *WorkEntryServiceImpl) Create(ctx context.Context, req workentry.CreateWorkEntryRequest) (*workentry.WorkEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	companyID, userID, departmentID, err := s.getScope(ctx)
	if err != nil {
		return nil, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	entry := workentry.WorkEntry{
		ID:           uuid.NewString(),
		UserID:       userID,
		CompanyID:    companyID,
		DepartmentID: departmentID,
		ProjectID:    req.ProjectID,
		WorkTitle:    req.WorkTitle,
		Description:  req.Description,
		Date:         date,
		Status:       workentry.Status(req.Status),
	}
	if req.HoursWorked != nil {
		entry.HoursWorked = *req.HoursWorked
	}
	if req.StartTime != nil {
		t, _ := time.Parse(time.RFC3339, *req.StartTime)
		entry.StartTime = &t
	}
	if req.EndTime != nil {
		t, _ := time.Parse(time.RFC3339, *req.EndTime)
		entry.EndTime = &t
	}

	var created workentry.WorkEntry
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		created, err = s.entryRepo.Create(txCtx, entry)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create work entry: %w", err)
	}

	resp := workentry.NewWorkEntryResponse(created)
	return &resp, nil
}

// Get returns a single entry, scoped to the caller's company.
func (s *WorkEntryServiceImpl) Get(ctx context.Context, id string) (*workentry.WorkEntryResponse, error) {
	companyID, _, _, err := s.getScope(ctx)
	if err != nil {
		return nil, err
	}

	entry, err := s.entryRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	resp := workentry.NewWorkEntryResponse(entry)
	return &resp, nil
}

// List returns entries for the requested user (defaulting to the caller)
// within the requested range, defaulting to the current month.
func (s *WorkEntryServiceImpl) List(ctx context.Context, req workentry.ListWorkEntriesRequest) ([]workentry.WorkEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	companyID, userID, _, err := s.getScope(ctx)
	if err != nil {
		return nil, err
	}
	if req.UserID != "" {
		userID = req.UserID
	}

	from, to := listRange(req, time.Now())

	entries, err := s.entryRepo.ListByUser(ctx, companyID, userID, from, to)
	if err != nil {
		return nil, err
	}

	responses := make([]workentry.WorkEntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, workentry.NewWorkEntryResponse(e))
	}
	return responses, nil
}

// listRange resolves the request's date range, defaulting to the calendar
// month containing now. The month is taken in UTC so the boundary does not
// shift with the server's local timezone; the returned range is half-open.
func listRange(req workentry.ListWorkEntriesRequest, now time.Time) (time.Time, time.Time) {
	now = now.UTC()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	if req.StartDate != "" && req.EndDate != "" {
		start, err1 := time.Parse("2006-01-02", req.StartDate)
		end, err2 := time.Parse("2006-01-02", req.EndDate)
		if err1 == nil && err2 == nil {
			from, to = start, end.AddDate(0, 0, 1)
		}
	}
	return from, to
}
