package analytics

import "math"

// Shared statistical helpers. Rounding is applied only at output boundaries;
// every intermediate computation stays at full float64 precision so chained
// scores (consistency feeding into the composite) do not compound rounding
// error.

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// populationVariance returns the population (not sample) variance around mu.
func populationVariance(values []float64, mu float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		d := v - mu
		sum += d * d
	}
	return sum / float64(len(values))
}

// coefficientOfVariation returns stddev/mean, or 1 when the mean is zero.
func coefficientOfVariation(values []float64) float64 {
	mu := mean(values)
	if mu == 0 {
		return 1
	}
	return math.Sqrt(populationVariance(values, mu)) / mu
}

// roundTo rounds half away from zero to the given number of decimals. All
// engine inputs are non-negative, so this is round-half-up in practice.
func roundTo(v float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(v*pow) / pow
}

func Round1(v float64) float64 { return roundTo(v, 1) }
func Round2(v float64) float64 { return roundTo(v, 2) }

func capAt(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	return v
}
