package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/MotionPhix/workhub-backend-go/internal/config"
	"github.com/MotionPhix/workhub-backend-go/internal/domain/insight"
	"github.com/MotionPhix/workhub-backend-go/internal/domain/workentry"
	"github.com/MotionPhix/workhub-backend-go/internal/pkg/cache"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/sync/errgroup"
)

type InsightServiceImpl struct {
	entryRepo workentry.WorkEntryRepository
	cache     *cache.Cache
	cfg       config.InsightConfig
}

// NewInsightService builds the analytics service. cache may be nil; caching
// is then skipped and every dashboard is computed fresh.
func NewInsightService(entryRepo workentry.WorkEntryRepository, c *cache.Cache, cfg config.InsightConfig) insight.InsightService {
	return &InsightServiceImpl{
		entryRepo: entryRepo,
		cache:     c,
		cfg:       cfg,
	}
}

// getCompanyID extracts company_id from JWT claims
func (s *InsightServiceImpl) getCompanyID(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", insight.ErrMissingCompanyScope
	}
	return companyID, nil
}

// resolveUserID returns the requested user or falls back to the caller's own
// user_id claim.
func (s *InsightServiceImpl) resolveUserID(ctx context.Context, userID string) (string, error) {
	if userID != "" {
		return userID, nil
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	id, ok := claims["user_id"].(string)
	if !ok || id == "" {
		return "", insight.ErrMissingUserScope
	}
	return id, nil
}

// monthRange returns the half-open [start, end) range of the calendar month
// containing now. The month is taken in UTC so the boundary does not shift
// with the server's local timezone.
func monthRange(now time.Time) (time.Time, time.Time) {
	now = now.UTC()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// parseDateRange parses start and end date, defaults to current month.
// The returned range is half-open: [start, end).
func parseDateRange(startDate, endDate string) (time.Time, time.Time) {
	defaultStart, defaultEnd := monthRange(time.Now())

	if startDate == "" || endDate == "" {
		return defaultStart, defaultEnd
	}

	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return defaultStart, defaultEnd
	}

	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return defaultStart, defaultEnd
	}

	// End date is inclusive in the API, exclusive in the query
	return start, end.AddDate(0, 0, 1)
}

func rangeOf(from, to time.Time) insight.DateRange {
	return insight.DateRange{
		StartDate: from.Format("2006-01-02"),
		EndDate:   to.AddDate(0, 0, -1).Format("2006-01-02"),
	}
}

// GetPersonalProductivity scores one user's entries with the personal weight
// profile.
func (s *InsightServiceImpl) GetPersonalProductivity(ctx context.Context, userID, startDate, endDate string) (*insight.ScoreResult, error) {
	companyID, err := s.getCompanyID(ctx)
	if err != nil {
		return nil, err
	}
	userID, err = s.resolveUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	from, to := parseDateRange(startDate, endDate)
	entries, err := s.entryRepo.ListByUser(ctx, companyID, userID, from, to)
	if err != nil {
		return nil, err
	}

	result := PersonalScoreResult(entries)
	return &result, nil
}

// GetProductivityTrend fits the trend over the trailing weeks of a user's
// weekly composite scores.
func (s *InsightServiceImpl) GetProductivityTrend(ctx context.Context, userID string, weeks int) (*insight.TrendResult, error) {
	companyID, err := s.getCompanyID(ctx)
	if err != nil {
		return nil, err
	}
	userID, err = s.resolveUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if weeks < 2 {
		weeks = s.cfg.TrendWeeks
	}
	to := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, 1)
	from := to.AddDate(0, 0, -7*weeks)

	entries, err := s.entryRepo.ListByUser(ctx, companyID, userID, from, to)
	if err != nil {
		return nil, err
	}

	result := AnalyzeTrend(WeeklyScores(entries))
	return &result, nil
}

// GetBurnoutRisk assesses the most recent burnout window of a user's entries.
func (s *InsightServiceImpl) GetBurnoutRisk(ctx context.Context, userID string) (*insight.RiskAssessment, error) {
	companyID, err := s.getCompanyID(ctx)
	if err != nil {
		return nil, err
	}
	userID, err = s.resolveUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	to := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, 1)
	from := to.AddDate(0, 0, -s.cfg.BurnoutWindowDays)

	entries, err := s.entryRepo.ListByUser(ctx, companyID, userID, from, to)
	if err != nil {
		return nil, err
	}

	result := AssessBurnoutRisk(entries)
	return &result, nil
}

// GetTeamWorkload returns per-member workload scores and their spread,
// company-wide or narrowed to one department.
func (s *InsightServiceImpl) GetTeamWorkload(ctx context.Context, departmentID, startDate, endDate string) (*insight.TeamWorkload, error) {
	companyID, err := s.getCompanyID(ctx)
	if err != nil {
		return nil, err
	}

	from, to := parseDateRange(startDate, endDate)
	var entries []workentry.WorkEntry
	if departmentID != "" {
		entries, err = s.entryRepo.ListByDepartment(ctx, companyID, departmentID, from, to)
	} else {
		entries, err = s.entryRepo.ListByCompany(ctx, companyID, from, to)
	}
	if err != nil {
		return nil, err
	}

	result := TeamWorkloadFromEntries(entries)
	return &result, nil
}

// GetCollaboration returns work-stream collaboration indices and the team
// interaction score.
func (s *InsightServiceImpl) GetCollaboration(ctx context.Context, startDate, endDate string) (*insight.CollaborationSummary, error) {
	companyID, err := s.getCompanyID(ctx)
	if err != nil {
		return nil, err
	}

	from, to := parseDateRange(startDate, endDate)
	entries, err := s.entryRepo.ListByCompany(ctx, companyID, from, to)
	if err != nil {
		return nil, err
	}

	result := CollaborationFromEntries(entries)
	return &result, nil
}

// GetDepartmentRollups aggregates company entries per department.
func (s *InsightServiceImpl) GetDepartmentRollups(ctx context.Context, startDate, endDate string) ([]insight.GroupSummary, error) {
	return s.rollups(ctx, startDate, endDate, DepartmentKey)
}

// GetProjectRollups aggregates company entries per project.
func (s *InsightServiceImpl) GetProjectRollups(ctx context.Context, startDate, endDate string) ([]insight.GroupSummary, error) {
	return s.rollups(ctx, startDate, endDate, ProjectKey)
}

func (s *InsightServiceImpl) rollups(ctx context.Context, startDate, endDate string, key func(workentry.WorkEntry) string) ([]insight.GroupSummary, error) {
	companyID, err := s.getCompanyID(ctx)
	if err != nil {
		return nil, err
	}

	from, to := parseDateRange(startDate, endDate)
	entries, err := s.entryRepo.ListByCompany(ctx, companyID, from, to)
	if err != nil {
		return nil, err
	}

	return GroupRollups(entries, key), nil
}

// GetPersonalDashboard combines score, trend and burnout for one user using
// parallel goroutines, one repository query each.
func (s *InsightServiceImpl) GetPersonalDashboard(ctx context.Context, userID string) (*insight.PersonalInsights, error) {
	companyID, err := s.getCompanyID(ctx)
	if err != nil {
		return nil, err
	}
	userID, err = s.resolveUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("%spersonal:%s:%s", cache.KeyPrefix, companyID, userID)
	var cached insight.PersonalInsights
	if s.cacheGet(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	from, to := parseDateRange("", "")

	var result insight.PersonalInsights
	result.Range = rangeOf(from, to)

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Personal composite score for the current month
	g.Go(func() error {
		entries, err := s.entryRepo.ListByUser(gCtx, companyID, userID, from, to)
		if err != nil {
			return err
		}
		result.Productivity = PersonalScoreResult(entries)
		return nil
	})

	// 2. Weekly trend over the configured trailing window
	g.Go(func() error {
		trendTo := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, 1)
		trendFrom := trendTo.AddDate(0, 0, -7*s.cfg.TrendWeeks)
		entries, err := s.entryRepo.ListByUser(gCtx, companyID, userID, trendFrom, trendTo)
		if err != nil {
			return err
		}
		result.Trend = AnalyzeTrend(WeeklyScores(entries))
		return nil
	})

	// 3. Burnout risk over the configured window
	g.Go(func() error {
		riskTo := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, 1)
		riskFrom := riskTo.AddDate(0, 0, -s.cfg.BurnoutWindowDays)
		entries, err := s.entryRepo.ListByUser(gCtx, companyID, userID, riskFrom, riskTo)
		if err != nil {
			return err
		}
		result.Burnout = AssessBurnoutRisk(entries)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.cacheSet(ctx, cacheKey, result)
	return &result, nil
}

// GetTeamDashboard combines workload, collaboration and rollups for the
// caller's company using parallel goroutines.
func (s *InsightServiceImpl) GetTeamDashboard(ctx context.Context) (*insight.TeamInsights, error) {
	companyID, err := s.getCompanyID(ctx)
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("%steam:%s", cache.KeyPrefix, companyID)
	var cached insight.TeamInsights
	if s.cacheGet(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	from, to := parseDateRange("", "")

	var result insight.TeamInsights
	result.Range = rangeOf(from, to)

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Member workload spread
	g.Go(func() error {
		entries, err := s.entryRepo.ListByCompany(gCtx, companyID, from, to)
		if err != nil {
			return err
		}
		result.Workload = TeamWorkloadFromEntries(entries)
		return nil
	})

	// 2. Collaboration indices
	g.Go(func() error {
		entries, err := s.entryRepo.ListByCompany(gCtx, companyID, from, to)
		if err != nil {
			return err
		}
		result.Collaboration = CollaborationFromEntries(entries)
		return nil
	})

	// 3. Department rollups
	g.Go(func() error {
		entries, err := s.entryRepo.ListByCompany(gCtx, companyID, from, to)
		if err != nil {
			return err
		}
		result.Departments = GroupRollups(entries, DepartmentKey)
		return nil
	})

	// 4. Project rollups
	g.Go(func() error {
		entries, err := s.entryRepo.ListByCompany(gCtx, companyID, from, to)
		if err != nil {
			return err
		}
		result.Projects = GroupRollups(entries, ProjectKey)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.cacheSet(ctx, cacheKey, result)
	return &result, nil
}

// cacheGet reports whether key was found; cache failures are logged and
// treated as misses so insights always degrade to a fresh computation.
func (s *InsightServiceImpl) cacheGet(ctx context.Context, key string, dest interface{}) bool {
	if s.cache == nil {
		return false
	}
	found, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		slog.Warn("insight cache read failed", "key", key, "error", err)
		return false
	}
	return found
}

func (s *InsightServiceImpl) cacheSet(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value); err != nil {
		slog.Warn("insight cache write failed", "key", key, "error", err)
	}
}
