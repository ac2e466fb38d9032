package insight

import "context"

// InsightService exposes the productivity analytics engine over already
// authorized, company-scoped requests. Empty userID means the caller's own
// user from the JWT claims; empty dates default to the current month.
type InsightService interface {
	GetPersonalProductivity(ctx context.Context, userID, startDate, endDate string) (*ScoreResult, error)
	GetProductivityTrend(ctx context.Context, userID string, weeks int) (*TrendResult, error)
	GetBurnoutRisk(ctx context.Context, userID string) (*RiskAssessment, error)

	// GetTeamWorkload covers the whole company when departmentID is empty,
	// otherwise only that department's entries.
	GetTeamWorkload(ctx context.Context, departmentID, startDate, endDate string) (*TeamWorkload, error)
	GetCollaboration(ctx context.Context, startDate, endDate string) (*CollaborationSummary, error)
	GetDepartmentRollups(ctx context.Context, startDate, endDate string) ([]GroupSummary, error)
	GetProjectRollups(ctx context.Context, startDate, endDate string) ([]GroupSummary, error)

	GetPersonalDashboard(ctx context.Context, userID string) (*PersonalInsights, error)
	GetTeamDashboard(ctx context.Context) (*TeamInsights, error)
}
