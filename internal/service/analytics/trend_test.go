package analytics

import (
	"testing"

	"github.com/MotionPhix/workhub-backend-go/internal/domain/insight"
	"github.com/stretchr/testify/assert"
)

func TestAnalyzeTrend_Improving(t *testing.T) {
	t.Parallel()

	result := AnalyzeTrend([]float64{10, 20, 30, 40})

	assert.Equal(t, insight.TrendImproving, result.Direction)
	assert.InDelta(t, 100, result.Strength, 0.0001) // slope 10, saturated
	assert.Equal(t, "significantly improving", result.Summary)

	assert.InDelta(t, 15, result.Comparison.PreviousPeriod, 0.0001)
	assert.InDelta(t, 35, result.Comparison.CurrentPeriod, 0.0001)
	assert.InDelta(t, 133.33, result.Comparison.ChangePercent, 0.01)
}

func TestAnalyzeTrend_Declining(t *testing.T) {
	t.Parallel()

	result := AnalyzeTrend([]float64{40, 30, 20, 10})

	assert.Equal(t, insight.TrendDeclining, result.Direction)
	assert.InDelta(t, 100, result.Strength, 0.0001)
	assert.Equal(t, "significantly declining", result.Summary)
}

func TestAnalyzeTrend_Flat(t *testing.T) {
	t.Parallel()

	result := AnalyzeTrend([]float64{20, 20, 20, 20})

	assert.Equal(t, insight.TrendStable, result.Direction)
	assert.Zero(t, result.Strength)
	assert.Equal(t, "relatively stable", result.Summary)
}

func TestAnalyzeTrend_TooFewPoints(t *testing.T) {
	t.Parallel()

	empty := AnalyzeTrend(nil)
	assert.Equal(t, insight.TrendStable, empty.Direction)
	assert.Zero(t, empty.Strength)

	single := AnalyzeTrend([]float64{50})
	assert.Equal(t, insight.TrendStable, single.Direction)
	assert.InDelta(t, 50, single.Comparison.PreviousPeriod, 0.0001)
	assert.InDelta(t, 50, single.Comparison.CurrentPeriod, 0.0001)
	assert.Zero(t, single.Comparison.ChangePercent)
}

func TestAnalyzeTrend_OddLengthComparison(t *testing.T) {
	t.Parallel()

	// Odd series split ceil-based: [10 20] vs [30]... the middle point
	// belongs to the previous half
	result := AnalyzeTrend([]float64{10, 20, 30})

	assert.InDelta(t, 15, result.Comparison.PreviousPeriod, 0.0001)
	assert.InDelta(t, 30, result.Comparison.CurrentPeriod, 0.0001)
	assert.InDelta(t, 100, result.Comparison.ChangePercent, 0.0001)
}

func TestAnalyzeTrend_GentleSlope(t *testing.T) {
	t.Parallel()

	// slope 1 gives strength 10, under every summary threshold
	result := AnalyzeTrend([]float64{50, 51, 52, 53})

	assert.Equal(t, insight.TrendImproving, result.Direction)
	assert.InDelta(t, 10, result.Strength, 0.0001)
	assert.Equal(t, "relatively stable", result.Summary)
}

func TestPeriodOverPeriod(t *testing.T) {
	t.Parallel()

	assert.Zero(t, PeriodOverPeriod(0, 50))
	assert.InDelta(t, 25, PeriodOverPeriod(40, 50), 0.0001)
	assert.InDelta(t, -50, PeriodOverPeriod(40, 20), 0.0001)
}
