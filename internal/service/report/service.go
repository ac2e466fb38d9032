package report

import (
	"context"
	"fmt"
	"time"

	"github.com/MotionPhix/workhub-backend-go/internal/domain/insight"
	"github.com/MotionPhix/workhub-backend-go/internal/domain/report"
	"github.com/MotionPhix/workhub-backend-go/internal/domain/workentry"
	"github.com/MotionPhix/workhub-backend-go/internal/service/analytics"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
)

type ReportServiceImpl struct {
	entryRepo workentry.WorkEntryRepository
}

func NewReportService(entryRepo workentry.WorkEntryRepository) report.ReportService {
	return &ReportServiceImpl{
		entryRepo: entryRepo,
	}
}

// getCompanyIDFromContext extracts company_id from JWT claims
func (s *ReportServiceImpl) getCompanyIDFromContext(ctx context.Context) (string, error) {
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

// GenerateProductivityReport builds the monthly productivity report document
// for one user or for the whole company. The result is plain data the export
// and delivery collaborators embed as-is.
func (s *ReportServiceImpl) GenerateProductivityReport(ctx context.Context, req report.ProductivityReportRequest) (report.ProductivityReport, error) {
	// Validate request
	if err := req.Validate(); err != nil {
		return report.ProductivityReport{}, err
	}

	// Get company ID from context
	companyID, err := s.getCompanyIDFromContext(ctx)
	if err != nil {
		return report.ProductivityReport{}, err
	}

	// Calculate period dates; the repository range is half-open
	periodStart := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, 0)

	result := report.ProductivityReport{
		ID:          uuid.NewString(),
		Scope:       report.ScopeCompany,
		UserID:      req.UserID,
		PeriodMonth: req.Month,
		PeriodYear:  req.Year,
		PeriodStart: periodStart.Format("2006-01-02"),
		PeriodEnd:   periodEnd.AddDate(0, 0, -1).Format("2006-01-02"),
		GeneratedAt: time.Now().Format(time.RFC3339),
	}

	if req.UserID != nil {
		result.Scope = report.ScopeUser
		entries, err := s.entryRepo.ListByUser(ctx, companyID, *req.UserID, periodStart, periodEnd)
		if err != nil {
			return report.ProductivityReport{}, fmt.Errorf("failed to get work entries: %w", err)
		}

		result.Productivity = analytics.PersonalScoreResult(entries)
		result.Trend = analytics.AnalyzeTrend(analytics.WeeklyScores(entries))
		burnout := analytics.AssessBurnoutRisk(entries)
		result.Burnout = &burnout
		return result, nil
	}

	entries, err := s.entryRepo.ListByCompany(ctx, companyID, periodStart, periodEnd)
	if err != nil {
		return report.ProductivityReport{}, fmt.Errorf("failed to get work entries: %w", err)
	}

	result.Productivity = companyScoreResult(entries)
	result.Trend = analytics.AnalyzeTrend(analytics.WeeklyScores(entries))
	workload := analytics.TeamWorkloadFromEntries(entries)
	result.Workload = &workload
	result.Departments = analytics.GroupRollups(entries, analytics.DepartmentKey)
	result.Projects = analytics.GroupRollups(entries, analytics.ProjectKey)
	return result, nil
}

// companyScoreResult scores the whole company's period with the team profile.
func companyScoreResult(entries []workentry.WorkEntry) insight.ScoreResult {
	buckets := analytics.WeeklyBuckets(entries)
	scores := analytics.WeeklyScores(entries)

	var totalHours float64
	uniqueDays := 0
	for _, b := range buckets {
		totalHours += b.Hours
		uniqueDays += b.UniqueDays
	}

	var avg float64
	if len(scores) > 0 {
		var sum float64
		for _, s := range scores {
			sum += s
		}
		avg = sum / float64(len(scores))
	}

	return insight.ScoreResult{
		Score: analytics.Round2(avg),
		Metrics: map[string]float64{
			"total_hours":     analytics.Round2(totalHours),
			"entry_count":     float64(len(entries)),
			"completion_rate": analytics.CompletionRate(entries),
			"distinct_days":   float64(uniqueDays),
			"weeks_scored":    float64(len(scores)),
		},
	}
}

