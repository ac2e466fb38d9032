package analytics

import "math"

// cvMidpoint centers the logistic transform: a coefficient of variation of
// 0.5 maps to a score of exactly 50.
const cvMidpoint = 0.5

// ConsistencyScore maps the spread of per-day hour totals to a 0-100 score.
// Steadier daily output (lower coefficient of variation) scores higher,
// regardless of absolute hours: score = 100 / (1 + e^(cv - 0.5)). A zero
// mean counts as cv = 1. Empty input scores 0.
//
// The statistic is order-independent: permuting the day totals does not
// change the result.
func ConsistencyScore(dailyTotals []float64) float64 {
	if len(dailyTotals) == 0 {
		return 0
	}
	cv := coefficientOfVariation(dailyTotals)
	return 100 / (1 + math.Exp(cv-cvMidpoint))
}
