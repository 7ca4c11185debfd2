package stats

import (
	"fmt"
	"math"
	"sort"
)

// Compute summarizes one feature's values into the reference record the
// anomaly detector consumes. Percentiles use linear interpolation between
// order statistics, matching how the offline analysis computed the bundled
// table.
func Compute(values []float64) (FeatureStats, error) {
	if len(values) == 0 {
		return FeatureStats{}, fmt.Errorf("no values to summarize")
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	var variance float64
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	std := math.Sqrt(variance / float64(len(values)))

	return FeatureStats{
		Mean: mean,
		Std:  std,
		Min:  sorted[0],
		Max:  sorted[len(sorted)-1],
		Q25:  percentile(sorted, 0.25),
		Q50:  percentile(sorted, 0.50),
		Q75:  percentile(sorted, 0.75),
		Q99:  percentile(sorted, 0.99),
	}, nil
}

// percentile interpolates the p-quantile of sorted values, p in [0, 1].
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}

	pos := p * float64(len(sorted)-1)
	lower := int(math.Floor(pos))
	upper := int(math.Ceil(pos))
	if lower == upper {
		return sorted[lower]
	}

	frac := pos - float64(lower)
	return sorted[lower]*(1-frac) + sorted[upper]*frac
}
