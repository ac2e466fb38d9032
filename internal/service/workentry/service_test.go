package workentry

import (
	"context"
	"testing"
	"time"

	"github.com/MotionPhix/workhub-backend-go/internal/domain/workentry"
	"github.com/MotionPhix/workhub-backend-go/internal/pkg/jwt"
	"github.com/MotionPhix/workhub-backend-go/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (s *stubTx) Commit(ctx context.Context) error {
	s.committed = true
	return nil
}

func (s *stubTx) Rollback(ctx context.Context) error {
	s.rolledBack = true
	return nil
}

type stubTxBeginner struct {
	tx stubTx
}

func (s *stubTxBeginner) BeginTx(ctx context.Context) (pgx.Tx, error) {
	return &s.tx, nil
}

type stubEntryRepo struct {
	created []workentry.WorkEntry
	entries []workentry.WorkEntry
	err     error
}

func (s *stubEntryRepo) Create(ctx context.Context, entry workentry.WorkEntry) (workentry.WorkEntry, error) {
	if s.err != nil {
		return workentry.WorkEntry{}, s.err
	}
	entry.CreatedAt = time.Now()
	entry.UpdatedAt = entry.CreatedAt
	s.created = append(s.created, entry)
	return entry, nil
}

func (s *stubEntryRepo) GetByID(ctx context.Context, companyID, id string) (workentry.WorkEntry, error) {
	for _, e := range s.entries {
		if e.ID == id && e.CompanyID == companyID {
			return e, nil
		}
	}
	return workentry.WorkEntry{}, workentry.ErrWorkEntryNotFound
}

func (s *stubEntryRepo) ListByUser(ctx context.Context, companyID, userID string, from, to time.Time) ([]workentry.WorkEntry, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []workentry.WorkEntry
	for _, e := range s.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *stubEntryRepo) ListByCompany(ctx context.Context, companyID string, from, to time.Time) ([]workentry.WorkEntry, error) {
	return s.entries, s.err
}

func (s *stubEntryRepo) ListByDepartment(ctx context.Context, companyID, departmentID string, from, to time.Time) ([]workentry.WorkEntry, error) {
	return s.entries, s.err
}

// authedContext returns a context carrying verified claims minted through the
// token service, the shape the jwtauth verifier middleware produces.
func authedContext(t *testing.T) context.Context {
	t.Helper()
	tokenSvc := jwt.NewJWTService("test-secret-key-for-jwt")
	tokenString, _, err := tokenSvc.GenerateAccessToken("user-1", "company-1", nil, "member")
	require.NoError(t, err)
	token, err := tokenSvc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestWorkEntryService_Create(t *testing.T) {
	t.Parallel()
	ctx := authedContext(t)

	db := &stubTxBeginner{}
	repo := &stubEntryRepo{}
	svc := NewWorkEntryService(db, repo)

	hours := 7.5
	resp, err := svc.Create(ctx, workentry.CreateWorkEntryRequest{
		Date:        "2024-01-15",
		WorkTitle:   "quarterly planning",
		Status:      "completed",
		HoursWorked: &hours,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "user-1", resp.UserID)
	assert.Equal(t, "2024-01-15", resp.Date)
	assert.InDelta(t, 7.5, resp.HoursWorked, 0.0001)
	assert.Equal(t, "completed", resp.Status)

	require.Len(t, repo.created, 1)
	assert.Equal(t, "company-1", repo.created[0].CompanyID)

	// The insert runs inside a committed transaction
	assert.True(t, db.tx.committed)
	assert.False(t, db.tx.rolledBack)
}

func TestWorkEntryService_Create_RollsBackOnRepoError(t *testing.T) {
	t.Parallel()
	ctx := authedContext(t)

	db := &stubTxBeginner{}
	svc := NewWorkEntryService(db, &stubEntryRepo{err: workentry.ErrUnauthorized})

	hours := 8.0
	_, err := svc.Create(ctx, workentry.CreateWorkEntryRequest{
		Date:        "2024-01-15",
		WorkTitle:   "task",
		Status:      "completed",
		HoursWorked: &hours,
	})

	require.Error(t, err)
	assert.True(t, db.tx.rolledBack)
	assert.False(t, db.tx.committed)
}

func TestWorkEntryService_Create_FromTimeRange(t *testing.T) {
	t.Parallel()
	ctx := authedContext(t)

	svc := NewWorkEntryService(&stubTxBeginner{}, &stubEntryRepo{})

	start := "2024-01-15T09:00:00Z"
	end := "2024-01-15T12:00:00Z"
	resp, err := svc.Create(ctx, workentry.CreateWorkEntryRequest{
		Date:      "2024-01-15",
		WorkTitle: "code review",
		Status:    "in_progress",
		StartTime: &start,
		EndTime:   &end,
	})

	require.NoError(t, err)
	assert.InDelta(t, 3, resp.HoursWorked, 0.0001)
}

func TestWorkEntryService_Create_Invalid(t *testing.T) {
	t.Parallel()
	ctx := authedContext(t)

	svc := NewWorkEntryService(&stubTxBeginner{}, &stubEntryRepo{})

	_, err := svc.Create(ctx, workentry.CreateWorkEntryRequest{
		Date:      "15-01-2024",
		WorkTitle: "",
		Status:    "done",
	})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	details := validationErrs.ToMap()
	assert.Contains(t, details, "date")
	assert.Contains(t, details, "work_title")
	assert.Contains(t, details, "status")
}

func TestWorkEntryService_Get_NotFound(t *testing.T) {
	t.Parallel()
	ctx := authedContext(t)

	svc := NewWorkEntryService(&stubTxBeginner{}, &stubEntryRepo{})

	_, err := svc.Get(ctx, "missing-id")
	assert.ErrorIs(t, err, workentry.ErrWorkEntryNotFound)
}

func TestWorkEntryService_List(t *testing.T) {
	t.Parallel()
	ctx := authedContext(t)

	date, _ := time.Parse("2006-01-02", "2024-01-15")
	repo := &stubEntryRepo{entries: []workentry.WorkEntry{
		{
			ID:          "entry-1",
			UserID:      "user-1",
			CompanyID:   "company-1",
			WorkTitle:   "task",
			Date:        date,
			HoursWorked: 8,
			Status:      workentry.StatusCompleted,
		},
	}}
	svc := NewWorkEntryService(&stubTxBeginner{}, repo)

	result, err := svc.List(ctx, workentry.ListWorkEntriesRequest{
		StartDate: "2024-01-01",
		EndDate:   "2024-01-31",
	})

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "entry-1", result[0].ID)
}

func TestWorkEntryService_MissingClaims(t *testing.T) {
	t.Parallel()

	svc := NewWorkEntryService(&stubTxBeginner{}, &stubEntryRepo{})

	hours := 8.0
	_, err := svc.Create(context.Background(), workentry.CreateWorkEntryRequest{
		Date:        "2024-01-15",
		WorkTitle:   "task",
		Status:      "completed",
		HoursWorked: &hours,
	})
	assert.Error(t, err)
}

func TestListRange(t *testing.T) {
	t.Parallel()

	explicit := workentry.ListWorkEntriesRequest{StartDate: "2024-01-01", EndDate: "2024-01-31"}
	from, to := listRange(explicit, time.Now())
	assert.Equal(t, "2024-01-01", from.Format("2006-01-02"))
	// End date is inclusive in the API, exclusive in the query
	assert.Equal(t, "2024-02-01", to.Format("2006-01-02"))

	// Default month follows UTC: already March 1st in UTC+14 while UTC is
	// still on Feb 29.
	local := time.Date(2024, 3, 1, 5, 0, 0, 0, time.FixedZone("UTC+14", 14*60*60))
	from, to = listRange(workentry.ListWorkEntriesRequest{}, local)
	assert.Equal(t, "2024-02-01", from.Format("2006-01-02"))
	assert.Equal(t, "2024-03-01", to.Format("2006-01-02"))
}
