package analytics

import (
	"github.com/MotionPhix/workhub-backend-go/internal/domain/insight"
	"github.com/MotionPhix/workhub-backend-go/internal/domain/workentry"
)

// WeightProfile parameterizes the composite productivity formulas. The two
// named profiles below replace the weighting constants that would otherwise
// be duplicated across every scoring call site.
type WeightProfile struct {
	HoursWeight        float64
	CompletionWeight   float64
	ConsistencyWeight  float64
	NominalHoursPerDay float64
	NominalDaysPerWeek float64
	TargetUtilization  float64
}

// PersonalWeightProfile weights a single user's period: volume 0.3,
// throughput 0.4, steadiness 0.3 against an 8-hour nominal workday.
func PersonalWeightProfile() WeightProfile {
	return WeightProfile{
		HoursWeight:        0.3,
		CompletionWeight:   0.4,
		ConsistencyWeight:  0.3,
		NominalHoursPerDay: 8,
		NominalDaysPerWeek: 5,
		TargetUtilization:  0.8,
	}
}

// TeamWeightProfile weights a weekly rollup: volume 0.3, throughput 0.5,
// working-day coverage 0.2 against a nominal 40-hour, 5-day week at 80%
// target utilization.
func TeamWeightProfile() WeightProfile {
	return WeightProfile{
		HoursWeight:        0.3,
		CompletionWeight:   0.5,
		ConsistencyWeight:  0.2,
		NominalHoursPerDay: 8,
		NominalDaysPerWeek: 5,
		TargetUtilization:  0.8,
	}
}

// PersonalScore blends average daily hours, completion rate (0-100) and
// consistency score (0-100) into one number, rounded to two decimals. The
// hours term is normalized against the nominal workday and not hard-clamped;
// presentation layers clamp to 100 for display.
func (p WeightProfile) PersonalScore(hoursPerDay, completionRate, consistencyScore float64) float64 {
	hoursComponent := hoursPerDay / p.NominalHoursPerDay * p.HoursWeight * 100
	completionComponent := completionRate * p.CompletionWeight
	consistencyComponent := consistencyScore * p.ConsistencyWeight
	return Round2(hoursComponent + completionComponent + consistencyComponent)
}

// TeamPeriodScore scores one week of team output: total hours against the
// utilization-adjusted nominal week (capped at 1), completion fraction
// (0-1), and unique working days against the nominal week. Never divides by
// team size; that is the personal profile's concern inverted.
func (p WeightProfile) TeamPeriodScore(totalHours, completionFraction float64, uniqueDays int) float64 {
	nominalWeekHours := p.NominalHoursPerDay * p.NominalDaysPerWeek * p.TargetUtilization
	hoursComponent := capAt(totalHours/nominalWeekHours, 1) * p.HoursWeight * 100
	completionComponent := completionFraction * p.CompletionWeight * 100
	daysComponent := float64(uniqueDays) / p.NominalDaysPerWeek * p.ConsistencyWeight * 100
	return Round2(hoursComponent + completionComponent + daysComponent)
}

// PersonalScoreResult computes the full personal composite for a set of one
// user's entries, returning the score with its input metrics and component
// breakdown.
func PersonalScoreResult(entries []workentry.WorkEntry) insight.ScoreResult {
	profile := PersonalWeightProfile()

	hoursPerDay := AveragePerDay(entries)
	completion := completionFraction(entries) * 100
	consistency := ConsistencyScore(dailyHours(entries))
	score := profile.PersonalScore(hoursPerDay, completion, consistency)

	days := DailyBuckets(entries)
	return insight.ScoreResult{
		Score: score,
		Metrics: map[string]float64{
			"total_hours":       Round2(TotalHours(entries)),
			"hours_per_day":     Round2(hoursPerDay),
			"completion_rate":   Round1(completion),
			"consistency_score": Round2(consistency),
			"entry_count":       float64(len(entries)),
			"distinct_days":     float64(len(days)),
		},
		Breakdown: map[string]float64{
			"hours":       Round2(hoursPerDay / profile.NominalHoursPerDay * profile.HoursWeight * 100),
			"completion":  Round2(completion * profile.CompletionWeight),
			"consistency": Round2(consistency * profile.ConsistencyWeight),
		},
	}
}

// WeeklyScores rolls entries into weekly buckets and scores each week with
// the team profile, producing the ordered series the trend analyzer consumes.
func WeeklyScores(entries []workentry.WorkEntry) []float64 {
	buckets := WeeklyBuckets(entries)
	scores := make([]float64, len(buckets))
	profile := TeamWeightProfile()
	for i, b := range buckets {
		var fraction float64
		if b.EntryCount > 0 {
			fraction = float64(b.CompletedCount) / float64(b.EntryCount)
		}
		scores[i] = profile.TeamPeriodScore(b.Hours, fraction, b.UniqueDays)
	}
	return scores
}
