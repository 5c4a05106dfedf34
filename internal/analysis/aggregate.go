package analysis

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// aggregate selects how a metric series is reduced to its single summary
// statistic. Extreme percentiles are used instead of min/max so the summary
// survives single-frame detection noise; the median serves metrics whose
// whole-rep central tendency is the signal; the standard deviation serves
// positional-jitter metrics.
type aggregate int

const (
	aggMedian aggregate = iota
	aggP10
	aggP90
	aggStdDev
)

// minJitterSamples is the floor below which a jitter series is treated as
// too short to estimate spread.
const minJitterSamples = 5

// summarize reduces a metric series to one summary statistic. An empty
// series yields 0; the caller only reaches that path for optional metrics.
// The result is invariant under reordering of the input.
func summarize(values []float64, agg aggregate) float64 {
	if len(values) == 0 {
		return 0
	}

	switch agg {
	case aggStdDev:
		if len(values) < minJitterSamples {
			return 0
		}
		return stat.StdDev(values, nil)
	case aggP10:
		return quantile(values, 0.10)
	case aggP90:
		return quantile(values, 0.90)
	default:
		return quantile(values, 0.50)
	}
}

// quantile returns the empirical p-quantile of values without mutating the
// input.
func quantile(values []float64, p float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return stat.Quantile(p, stat.Empirical, sorted, nil)
}
