package analytics

import (
	"github.com/MotionPhix/workhub-backend-go/internal/domain/insight"
	"github.com/MotionPhix/workhub-backend-go/internal/domain/workentry"
)

// Burnout factor thresholds. This is a deliberately simple, explainable rule
// set; the three named factors and thresholds are the contract, not an
// implementation detail to swap for a classifier.
const (
	burnoutAvgHoursThreshold = 8.0
	burnoutVarianceThreshold = 2.0
	burnoutStreakThreshold   = 5
	longWorkDayHours         = 8.0
)

// Burnout factor names, stable keys in RiskAssessment.Factors.
const (
	FactorHighAverageHours = "high_average_hours"
	FactorHighVariance     = "high_hour_variance"
	FactorLongDayStreak    = "long_day_streak"
)

// AssessBurnoutRisk scores a user's recent entries (callers pass the most
// recent 30 days) against three factors, each contributing 0 or 1:
// average daily hours above 8, per-day hour variance above 2, and a streak
// of more than 5 consecutive long (>8h) work days. Two or more factors is
// High Risk, exactly one Moderate, none Low.
func AssessBurnoutRisk(entries []workentry.WorkEntry) insight.RiskAssessment {
	totals := dailyHours(entries)

	avg := mean(totals)
	variance := populationVariance(totals, avg)
	streak := longestLongDayStreak(totals)

	factors := map[string]bool{
		FactorHighAverageHours: avg > burnoutAvgHoursThreshold,
		FactorHighVariance:     variance > burnoutVarianceThreshold,
		FactorLongDayStreak:    streak > burnoutStreakThreshold,
	}

	score := 0
	for _, triggered := range factors {
		if triggered {
			score++
		}
	}

	level := insight.RiskLow
	switch {
	case score >= 2:
		level = insight.RiskHigh
	case score == 1:
		level = insight.RiskModerate
	}

	return insight.RiskAssessment{
		RiskLevel: level,
		Score:     score,
		Factors:   factors,
		Metrics: map[string]float64{
			"average_hours_per_day": Round2(avg),
			"hours_variance":        Round2(variance),
			"longest_streak":        float64(streak),
		},
	}
}

// longestLongDayStreak counts the longest run of recorded days exceeding the
// long-day threshold. The running counter resets on any day at or below it.
func longestLongDayStreak(dailyTotals []float64) int {
	longest, current := 0, 0
	for _, hours := range dailyTotals {
		if hours > longWorkDayHours {
			current++
			if current > longest {
				longest = current
			}
		} else {
			current = 0
		}
	}
	return longest
}
