package analytics

import (
	"math"
	"sort"

	"github.com/MotionPhix/workhub-backend-go/internal/domain/insight"
	"github.com/MotionPhix/workhub-backend-go/internal/domain/workentry"
)

// Workload score normalization targets.
const (
	workloadNominalHours = 32.0 // 40h week at 80% utilization
	workloadNominalTasks = 20.0
	workloadNominalDays  = 20.0 // working days in a month

	workloadHoursWeight       = 0.4
	workloadTasksWeight       = 0.4
	workloadConsistencyWeight = 0.2
)

// MemberWorkloadScore normalizes one member's volume into a 0-100 score:
// hours against the utilization-adjusted week, task count against 20, and
// unique working days against a 20-day month, weighted 0.4/0.4/0.2.
func MemberWorkloadScore(totalHours float64, taskCount, uniqueDays int) float64 {
	hoursScore := capAt(totalHours/workloadNominalHours, 1)
	taskScore := capAt(float64(taskCount)/workloadNominalTasks, 1)
	consistencyScore := float64(uniqueDays) / workloadNominalDays
	return Round2(100 * (workloadHoursWeight*hoursScore +
		workloadTasksWeight*taskScore +
		workloadConsistencyWeight*consistencyScore))
}

// TeamWorkloadFromEntries groups entries by user and scores each member,
// reporting the coefficient-of-variation spread across member scores.
func TeamWorkloadFromEntries(entries []workentry.WorkEntry) insight.TeamWorkload {
	groups := GroupBy(entries, func(e workentry.WorkEntry) string { return e.UserID })

	members := make([]insight.MemberWorkload, 0, len(groups))
	scores := make([]float64, 0, len(groups))
	for userID, memberEntries := range groups {
		hours := TotalHours(memberEntries)
		uniqueDays := len(DailyBuckets(memberEntries))
		score := MemberWorkloadScore(hours, len(memberEntries), uniqueDays)
		members = append(members, insight.MemberWorkload{
			UserID:        userID,
			TotalHours:    Round2(hours),
			TaskCount:     len(memberEntries),
			UniqueDays:    uniqueDays,
			WorkloadScore: score,
		})
		scores = append(scores, score)
	}
	sort.Slice(members, func(i, j int) bool {
		if members[i].WorkloadScore != members[j].WorkloadScore {
			return members[i].WorkloadScore > members[j].WorkloadScore
		}
		return members[i].UserID < members[j].UserID
	})

	return insight.TeamWorkload{
		Members:      members,
		AverageScore: Round2(mean(scores)),
		Variance:     Round2(WorkloadVariance(scores)),
	}
}

// WorkloadVariance is the coefficient of variation across member workload
// scores. Empty input, a single member, or an all-zero team all yield 0
// rather than a division by zero.
func WorkloadVariance(scores []float64) float64 {
	mu := mean(scores)
	if mu == 0 {
		return 0
	}
	variance := populationVariance(scores, mu)
	if variance == 0 {
		return 0
	}
	return math.Sqrt(variance) / mu
}

// collaborationKey buckets entries that represent the same stream of work:
// the project when one is set, otherwise the work title.
func collaborationKey(e workentry.WorkEntry) string {
	if e.ProjectID != nil && *e.ProjectID != "" {
		return *e.ProjectID
	}
	if e.WorkTitle != "" {
		return e.WorkTitle
	}
	return "untitled"
}

// CollaborationFromEntries computes per-group collaboration indices
// (projects touched per contributor) and the team interaction score: the
// share of member pairs that actually co-contributed to a work stream,
// out of C(teamSize, 2) possible pairs.
func CollaborationFromEntries(entries []workentry.WorkEntry) insight.CollaborationSummary {
	groups := GroupBy(entries, collaborationKey)

	teamMembers := make(map[string]struct{})
	for _, e := range entries {
		teamMembers[e.UserID] = struct{}{}
	}

	summaries := make([]insight.CollaborationGroup, 0, len(groups))
	pairs := make(map[[2]string]struct{})
	for key, groupEntries := range groups {
		projects := make(map[string]struct{})
		contributors := make(map[string]struct{})
		for _, e := range groupEntries {
			if e.ProjectID != nil && *e.ProjectID != "" {
				projects[*e.ProjectID] = struct{}{}
			}
			contributors[e.UserID] = struct{}{}
		}

		var index float64
		if len(contributors) > 0 {
			index = Round2(float64(len(projects)) / float64(len(contributors)))
		}
		summaries = append(summaries, insight.CollaborationGroup{
			Key:                key,
			UniqueProjects:     len(projects),
			UniqueContributors: len(contributors),
			Index:              index,
		})

		users := make([]string, 0, len(contributors))
		for u := range contributors {
			users = append(users, u)
		}
		sort.Strings(users)
		for i := 0; i < len(users); i++ {
			for j := i + 1; j < len(users); j++ {
				pairs[[2]string{users[i], users[j]}] = struct{}{}
			}
		}
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Key < summaries[j].Key })

	teamSize := len(teamMembers)
	possiblePairs := teamSize * (teamSize - 1) / 2
	var interaction float64
	if possiblePairs > 0 {
		interaction = Round2(float64(len(pairs)) / float64(possiblePairs) * 100)
	}

	return insight.CollaborationSummary{
		Groups:             summaries,
		TeamSize:           teamSize,
		CollaboratingPairs: len(pairs),
		PossiblePairs:      possiblePairs,
		InteractionScore:   interaction,
	}
}

// DepartmentKey and ProjectKey are the rollup grouping functions; entries
// without the attribute land in the "unassigned" group.
func DepartmentKey(e workentry.WorkEntry) string {
	if e.DepartmentID != nil && *e.DepartmentID != "" {
		return *e.DepartmentID
	}
	return "unassigned"
}

func ProjectKey(e workentry.WorkEntry) string {
	if e.ProjectID != nil && *e.ProjectID != "" {
		return *e.ProjectID
	}
	return "unassigned"
}

// GroupRollups aggregates entries per group key and scores each group with
// the team period profile, sorted by total hours descending for "most
// active" displays.
func GroupRollups(entries []workentry.WorkEntry, key func(workentry.WorkEntry) string) []insight.GroupSummary {
	groups := GroupBy(entries, key)

	profile := TeamWeightProfile()
	rollups := make([]insight.GroupSummary, 0, len(groups))
	for k, groupEntries := range groups {
		hours := TotalHours(groupEntries)
		fraction := completionFraction(groupEntries)
		uniqueDays := len(DailyBuckets(groupEntries))

		members := make(map[string]struct{})
		completed := 0
		for _, e := range groupEntries {
			members[e.UserID] = struct{}{}
			if e.Completed() {
				completed++
			}
		}

		rollups = append(rollups, insight.GroupSummary{
			Key:            k,
			TotalHours:     Round2(hours),
			EntryCount:     len(groupEntries),
			CompletedCount: completed,
			CompletionRate: Round1(fraction * 100),
			MemberCount:    len(members),
			UniqueDays:     uniqueDays,
			Score:          profile.TeamPeriodScore(hours, fraction, uniqueDays),
		})
	}
	sort.Slice(rollups, func(i, j int) bool {
		if rollups[i].TotalHours != rollups[j].TotalHours {
			return rollups[i].TotalHours > rollups[j].TotalHours
		}
		return rollups[i].Key < rollups[j].Key
	})
	return rollups
}
