package analytics

import (
	"sort"
	"time"

	"github.com/MotionPhix/workhub-backend-go/internal/domain/insight"
	"github.com/MotionPhix/workhub-backend-go/internal/domain/workentry"
)

// Metric primitives: pure reductions over a work entry collection. Callers
// hand in entries already scoped to the desired user/team/period; nothing
// here queries a data store or keeps state between calls.

// TotalHours sums the duration of every entry. Entries without a duration
// count as zero.
func TotalHours(entries []workentry.WorkEntry) float64 {
	var total float64
	for _, e := range entries {
		total += e.Hours()
	}
	return total
}

// CompletionRate is the percentage of entries in completed status, rounded
// to one decimal. Empty input yields 0, never a division by zero.
func CompletionRate(entries []workentry.WorkEntry) float64 {
	return Round1(completionFraction(entries) * 100)
}

// completionFraction is the unrounded completed/total ratio in [0,1], used
// internally so downstream scores see full precision.
func completionFraction(entries []workentry.WorkEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	completed := 0
	for _, e := range entries {
		if e.Completed() {
			completed++
		}
	}
	return float64(completed) / float64(len(entries))
}

// AveragePerDay divides total hours by the number of distinct work days,
// returning 0 when there are none.
func AveragePerDay(entries []workentry.WorkEntry) float64 {
	days := make(map[string]struct{})
	for _, e := range entries {
		days[e.Day()] = struct{}{}
	}
	if len(days) == 0 {
		return 0
	}
	return TotalHours(entries) / float64(len(days))
}

// GroupBy partitions entries by an arbitrary key function. It is the single
// grouped-aggregation primitive behind the daily/weekly buckets and the
// department/project rollups.
func GroupBy(entries []workentry.WorkEntry, key func(workentry.WorkEntry) string) map[string][]workentry.WorkEntry {
	groups := make(map[string][]workentry.WorkEntry)
	for _, e := range entries {
		k := key(e)
		groups[k] = append(groups[k], e)
	}
	return groups
}

// DailyBuckets groups entries by calendar day, summing hours and counting
// entries and completions, ordered by date ascending.
func DailyBuckets(entries []workentry.WorkEntry) []insight.PeriodBucket {
	return periodBuckets(entries, func(e workentry.WorkEntry) time.Time {
		d := e.Date
		return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	})
}

// WeeklyBuckets groups entries by ISO week, keyed on the week's Monday.
func WeeklyBuckets(entries []workentry.WorkEntry) []insight.PeriodBucket {
	return periodBuckets(entries, func(e workentry.WorkEntry) time.Time {
		d := e.Date
		day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
		offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
		return day.AddDate(0, 0, -offset)
	})
}

func periodBuckets(entries []workentry.WorkEntry, periodStart func(workentry.WorkEntry) time.Time) []insight.PeriodBucket {
	type agg struct {
		bucket insight.PeriodBucket
		days   map[string]struct{}
	}
	byStart := make(map[time.Time]*agg)
	for _, e := range entries {
		start := periodStart(e)
		a, ok := byStart[start]
		if !ok {
			a = &agg{
				bucket: insight.PeriodBucket{Date: start},
				days:   make(map[string]struct{}),
			}
			byStart[start] = a
		}
		a.bucket.Hours += e.Hours()
		a.bucket.EntryCount++
		if e.Completed() {
			a.bucket.CompletedCount++
		}
		a.days[e.Day()] = struct{}{}
	}

	buckets := make([]insight.PeriodBucket, 0, len(byStart))
	for _, a := range byStart {
		a.bucket.UniqueDays = len(a.days)
		buckets = append(buckets, a.bucket)
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Date.Before(buckets[j].Date)
	})
	return buckets
}

// dailyHours returns per-day hour totals ordered by date, the input shape
// for the consistency and burnout computations.
func dailyHours(entries []workentry.WorkEntry) []float64 {
	buckets := DailyBuckets(entries)
	totals := make([]float64, len(buckets))
	for i, b := range buckets {
		totals[i] = b.Hours
	}
	return totals
}
