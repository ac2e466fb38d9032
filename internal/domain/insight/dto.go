package insight

import "time"

// Trend directions
const (
	TrendImproving = "improving"
	TrendDeclining = "declining"
	TrendStable    = "stable"
)

// Burnout risk levels
const (
	RiskLow      = "Low Risk"
	RiskModerate = "Moderate Risk"
	RiskHigh     = "High Risk"
)

// ========== PERIOD BUCKETS ==========

// PeriodBucket aggregates entries that share a calendar day or week.
// Buckets are ordered chronologically and built fresh per request.
type PeriodBucket struct {
	Date           time.Time `json:"date"`
	Hours          float64   `json:"hours"`
	EntryCount     int       `json:"entry_count"`
	CompletedCount int       `json:"completed_count"`
	UniqueDays     int       `json:"unique_days"`
}

// ========== SCORES ==========

// ScoreResult carries a 0-100 score together with the metrics that produced
// it and an optional per-component breakdown for explainability.
type ScoreResult struct {
	Score     float64            `json:"score"`
	Metrics   map[string]float64 `json:"metrics"`
	Breakdown map[string]float64 `json:"breakdown,omitempty"`
}

// ========== TRENDS ==========

// PeriodComparison contrasts the first and second halves of a period series.
type PeriodComparison struct {
	PreviousPeriod float64 `json:"previous_period"`
	CurrentPeriod  float64 `json:"current_period"`
	ChangePercent  float64 `json:"change_percent"`
}

type TrendResult struct {
	Direction     string           `json:"direction"`
	Strength      float64          `json:"strength"`
	Summary       string           `json:"summary"`
	WeeklyMetrics []float64        `json:"weekly_metrics"`
	Comparison    PeriodComparison `json:"comparison"`
}

// ========== BURNOUT ==========

// RiskAssessment is the rule-based burnout result: Score counts triggered
// factors (0-3) and Factors names which ones fired.
type RiskAssessment struct {
	RiskLevel string             `json:"risk_level"`
	Score     int                `json:"score"`
	Factors   map[string]bool    `json:"factors"`
	Metrics   map[string]float64 `json:"metrics"`
}

// ========== WORKLOAD ==========

type MemberWorkload struct {
	UserID        string  `json:"user_id"`
	TotalHours    float64 `json:"total_hours"`
	TaskCount     int     `json:"task_count"`
	UniqueDays    int     `json:"unique_days"`
	WorkloadScore float64 `json:"workload_score"`
}

type TeamWorkload struct {
	Members      []MemberWorkload `json:"members"`
	AverageScore float64          `json:"average_score"`
	Variance     float64          `json:"variance"`
}

// ========== COLLABORATION ==========

type CollaborationGroup struct {
	Key                string  `json:"key"`
	UniqueProjects     int     `json:"unique_projects"`
	UniqueContributors int     `json:"unique_contributors"`
	Index              float64 `json:"index"`
}

type CollaborationSummary struct {
	Groups             []CollaborationGroup `json:"groups"`
	TeamSize           int                  `json:"team_size"`
	CollaboratingPairs int                  `json:"collaborating_pairs"`
	PossiblePairs      int                  `json:"possible_pairs"`
	InteractionScore   float64              `json:"interaction_score"`
}

// ========== ROLLUPS ==========

// GroupSummary is one row of a department or project rollup, sorted by total
// hours descending for "most active" displays.
type GroupSummary struct {
	Key            string  `json:"key"`
	TotalHours     float64 `json:"total_hours"`
	EntryCount     int     `json:"entry_count"`
	CompletedCount int     `json:"completed_count"`
	CompletionRate float64 `json:"completion_rate"`
	MemberCount    int     `json:"member_count"`
	UniqueDays     int     `json:"unique_days"`
	Score          float64 `json:"score"`
}

// ========== COMBINED DASHBOARDS ==========

type DateRange struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// PersonalInsights is the combined per-user dashboard payload.
type PersonalInsights struct {
	Productivity ScoreResult    `json:"productivity"`
	Trend        TrendResult    `json:"trend"`
	Burnout      RiskAssessment `json:"burnout"`
	Range        DateRange      `json:"range"`
}

// TeamInsights is the combined team/company dashboard payload.
type TeamInsights struct {
	Workload      TeamWorkload         `json:"workload"`
	Collaboration CollaborationSummary `json:"collaboration"`
	Departments   []GroupSummary       `json:"departments"`
	Projects      []GroupSummary       `json:"projects"`
	Range         DateRange            `json:"range"`
}
