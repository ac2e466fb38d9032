package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MotionPhix/workhub-backend-go/internal/config"
	"github.com/MotionPhix/workhub-backend-go/internal/domain/insight"
	"github.com/MotionPhix/workhub-backend-go/internal/domain/workentry"
	"github.com/MotionPhix/workhub-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubEntryRepo serves a fixed entry set regardless of the requested range.
type stubEntryRepo struct {
	entries []workentry.WorkEntry
	err     error
}

func (s *stubEntryRepo) Create(ctx context.Context, entry workentry.WorkEntry) (workentry.WorkEntry, error) {
	return entry, s.err
}

func (s *stubEntryRepo) GetByID(ctx context.Context, companyID, id string) (workentry.WorkEntry, error) {
	if s.err != nil {
		return workentry.WorkEntry{}, s.err
	}
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
		if e.CompanyID == companyID && e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *stubEntryRepo) ListByCompany(ctx context.Context, companyID string, from, to time.Time) ([]workentry.WorkEntry, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []workentry.WorkEntry
	for _, e := range s.entries {
		if e.CompanyID == companyID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *stubEntryRepo) ListByDepartment(ctx context.Context, companyID, departmentID string, from, to time.Time) ([]workentry.WorkEntry, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []workentry.WorkEntry
	for _, e := range s.entries {
		if e.CompanyID == companyID && e.DepartmentID != nil && *e.DepartmentID == departmentID {
			out = append(out, e)
		}
	}
	return out, nil
}

func testInsightConfig() config.InsightConfig {
	return config.InsightConfig{
		CacheTTL:          time.Hour,
		BurnoutWindowDays: 30,
		TrendWeeks:        12,
	}
}

// authedContext returns a context carrying verified claims minted through the
// token service, the shape the jwtauth verifier middleware produces.
func authedContext(t *testing.T, userID string) context.Context {
	t.Helper()
	svc := jwt.NewJWTService("test-secret-key-for-jwt")
	tokenString, _, err := svc.GenerateAccessToken(userID, "company-1", nil, "member")
	require.NoError(t, err)
	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestInsightService_GetPersonalProductivity(t *testing.T) {
	t.Parallel()
	ctx := authedContext(t, "user-1")

	repo := &stubEntryRepo{entries: []workentry.WorkEntry{
		testEntry("2024-01-01", 8, workentry.StatusCompleted),
		testEntry("2024-01-02", 8, workentry.StatusCompleted),
	}}
	svc := NewInsightService(repo, nil, testInsightConfig())

	result, err := svc.GetPersonalProductivity(ctx, "", "2024-01-01", "2024-01-31")

	require.NoError(t, err)
	assert.Greater(t, result.Score, 0.0)
	assert.InDelta(t, 16, result.Metrics["total_hours"], 0.0001)
	assert.InDelta(t, 100, result.Metrics["completion_rate"], 0.0001)
}

func TestInsightService_GetPersonalProductivity_MissingCompanyScope(t *testing.T) {
	t.Parallel()

	svc := NewInsightService(&stubEntryRepo{}, nil, testInsightConfig())

	_, err := svc.GetPersonalProductivity(context.Background(), "", "", "")
	assert.ErrorIs(t, err, insight.ErrMissingCompanyScope)
}

func TestInsightService_GetPersonalProductivity_ExplicitUser(t *testing.T) {
	t.Parallel()
	ctx := authedContext(t, "user-1")

	other := testEntry("2024-01-01", 4, workentry.StatusCompleted)
	other.UserID = "user-2"
	repo := &stubEntryRepo{entries: []workentry.WorkEntry{
		testEntry("2024-01-01", 8, workentry.StatusCompleted),
		other,
	}}
	svc := NewInsightService(repo, nil, testInsightConfig())

	result, err := svc.GetPersonalProductivity(ctx, "user-2", "", "")

	require.NoError(t, err)
	assert.InDelta(t, 4, result.Metrics["total_hours"], 0.0001)
}

func TestInsightService_GetBurnoutRisk(t *testing.T) {
	t.Parallel()
	ctx := authedContext(t, "user-1")

	repo := &stubEntryRepo{entries: []workentry.WorkEntry{
		testEntry("2024-01-01", 6, workentry.StatusCompleted),
		testEntry("2024-01-02", 6, workentry.StatusCompleted),
	}}
	svc := NewInsightService(repo, nil, testInsightConfig())

	result, err := svc.GetBurnoutRisk(ctx, "")

	require.NoError(t, err)
	assert.Equal(t, insight.RiskLow, result.RiskLevel)
}

func TestInsightService_GetProductivityTrend_RepoError(t *testing.T) {
	t.Parallel()
	ctx := authedContext(t, "user-1")

	repoErr := errors.New("connection refused")
	svc := NewInsightService(&stubEntryRepo{err: repoErr}, nil, testInsightConfig())

	_, err := svc.GetProductivityTrend(ctx, "", 8)
	assert.ErrorIs(t, err, repoErr)
}

func TestInsightService_GetTeamWorkload(t *testing.T) {
	t.Parallel()
	ctx := authedContext(t, "user-1")

	second := testEntry("2024-01-01", 4, workentry.StatusCompleted)
	second.UserID = "user-2"
	repo := &stubEntryRepo{entries: []workentry.WorkEntry{
		testEntry("2024-01-01", 8, workentry.StatusCompleted),
		second,
	}}
	svc := NewInsightService(repo, nil, testInsightConfig())

	result, err := svc.GetTeamWorkload(ctx, "", "", "")

	require.NoError(t, err)
	assert.Len(t, result.Members, 2)
}

func TestInsightService_GetTeamWorkload_DepartmentScoped(t *testing.T) {
	t.Parallel()
	ctx := authedContext(t, "user-1")

	eng := "dept-eng"
	sales := "dept-sales"
	inEng := testEntry("2024-01-01", 8, workentry.StatusCompleted)
	inEng.DepartmentID = &eng
	inSales := testEntry("2024-01-01", 4, workentry.StatusCompleted)
	inSales.UserID = "user-2"
	inSales.DepartmentID = &sales

	repo := &stubEntryRepo{entries: []workentry.WorkEntry{inEng, inSales}}
	svc := NewInsightService(repo, nil, testInsightConfig())

	result, err := svc.GetTeamWorkload(ctx, "dept-eng", "", "")

	require.NoError(t, err)
	require.Len(t, result.Members, 1)
	assert.Equal(t, "user-1", result.Members[0].UserID)
}

func TestMonthRange_UTCBoundary(t *testing.T) {
	t.Parallel()

	// Already March 1st in UTC+14 while UTC is still on Feb 29.
	local := time.Date(2024, 3, 1, 5, 0, 0, 0, time.FixedZone("UTC+14", 14*60*60))
	start, end := monthRange(local)

	assert.Equal(t, "2024-02-01", start.Format("2006-01-02"))
	assert.Equal(t, "2024-03-01", end.Format("2006-01-02"))
}

func TestInsightService_GetPersonalDashboard(t *testing.T) {
	t.Parallel()
	ctx := authedContext(t, "user-1")

	repo := &stubEntryRepo{entries: []workentry.WorkEntry{
		testEntry("2024-01-01", 8, workentry.StatusCompleted),
		testEntry("2024-01-02", 8, workentry.StatusCompleted),
		testEntry("2024-01-03", 8, workentry.StatusCompleted),
	}}
	svc := NewInsightService(repo, nil, testInsightConfig())

	result, err := svc.GetPersonalDashboard(ctx, "")

	require.NoError(t, err)
	assert.Greater(t, result.Productivity.Score, 0.0)
	assert.NotEmpty(t, result.Trend.Direction)
	assert.NotEmpty(t, result.Burnout.RiskLevel)
	assert.NotEmpty(t, result.Range.StartDate)
}

func TestInsightService_GetTeamDashboard(t *testing.T) {
	t.Parallel()
	ctx := authedContext(t, "user-1")

	projA := "proj-a"
	second := testEntry("2024-01-01", 4, workentry.StatusCompleted)
	second.UserID = "user-2"
	second.ProjectID = &projA
	first := testEntry("2024-01-01", 8, workentry.StatusCompleted)
	first.ProjectID = &projA

	repo := &stubEntryRepo{entries: []workentry.WorkEntry{first, second}}
	svc := NewInsightService(repo, nil, testInsightConfig())

	result, err := svc.GetTeamDashboard(ctx)

	require.NoError(t, err)
	assert.Len(t, result.Workload.Members, 2)
	assert.Equal(t, 2, result.Collaboration.TeamSize)
	assert.NotEmpty(t, result.Departments)
	assert.NotEmpty(t, result.Projects)
}

func TestInsightService_GetDepartmentRollups(t *testing.T) {
	t.Parallel()
	ctx := authedContext(t, "user-1")

	dept := "dept-eng"
	entry := testEntry("2024-01-01", 8, workentry.StatusCompleted)
	entry.DepartmentID = &dept

	svc := NewInsightService(&stubEntryRepo{entries: []workentry.WorkEntry{entry}}, nil, testInsightConfig())

	rollups, err := svc.GetDepartmentRollups(ctx, "", "")

	require.NoError(t, err)
	require.Len(t, rollups, 1)
	assert.Equal(t, "dept-eng", rollups[0].Key)
}
