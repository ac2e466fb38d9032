package analytics

import (
	"math"

	"github.com/MotionPhix/workhub-backend-go/internal/domain/insight"
)

// slopeStrengthScale converts the regression slope into the 0-100 strength
// value: a one-unit-per-period slope saturates strength near 100. Tunable,
// not a law of nature.
const slopeStrengthScale = 10

// AnalyzeTrend fits an ordinary least-squares line through the ordered
// period scores (x = 1..n) and classifies the slope sign as improving,
// declining or stable. Fewer than two points, or a degenerate denominator,
// yield a stable trend with zero strength.
func AnalyzeTrend(scores []float64) insight.TrendResult {
	result := insight.TrendResult{
		Direction:     insight.TrendStable,
		WeeklyMetrics: scores,
		Comparison:    halfComparison(scores),
	}

	n := len(scores)
	if n < 2 {
		result.Summary = trendSummary(result.Direction, 0)
		return result
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, y := range scores {
		x := float64(i + 1)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	fn := float64(n)
	denom := fn*sumXX - sumX*sumX
	if denom == 0 {
		result.Summary = trendSummary(result.Direction, 0)
		return result
	}

	slope := (fn*sumXY - sumX*sumY) / denom
	switch {
	case slope > 0:
		result.Direction = insight.TrendImproving
	case slope < 0:
		result.Direction = insight.TrendDeclining
	}
	result.Strength = Round2(capAt(math.Abs(slope)*slopeStrengthScale, 100))
	result.Summary = trendSummary(result.Direction, result.Strength)
	return result
}

// halfComparison averages the first half of the series against the second,
// splitting ceil-based when n is odd.
func halfComparison(scores []float64) insight.PeriodComparison {
	n := len(scores)
	if n == 0 {
		return insight.PeriodComparison{}
	}
	if n == 1 {
		return insight.PeriodComparison{
			PreviousPeriod: Round2(scores[0]),
			CurrentPeriod:  Round2(scores[0]),
		}
	}

	mid := (n + 1) / 2
	previous := mean(scores[:mid])
	current := mean(scores[mid:])
	return insight.PeriodComparison{
		PreviousPeriod: Round2(previous),
		CurrentPeriod:  Round2(current),
		ChangePercent:  Round2(PeriodOverPeriod(previous, current)),
	}
}

// PeriodOverPeriod is the percentage change from previous to current,
// returning 0 when the previous value is zero.
func PeriodOverPeriod(previous, current float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

func trendSummary(direction string, strength float64) string {
	if strength < 20 {
		return "relatively stable"
	}
	intensifier := "significantly"
	switch {
	case strength < 30:
		intensifier = "slightly"
	case strength < 60:
		intensifier = "moderately"
	}
	return intensifier + " " + direction
}
