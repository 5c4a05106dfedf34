package analysis

import "math"

// scoreRule is one row of a metric group's threshold table: the first row
// whose [Min, Max] interval contains the summary statistic supplies the
// subscore. Lower-is-better tables leave Min open, higher-is-better tables
// leave Max open, and banded metrics bound both ends, so one reducer serves
// every table.
type scoreRule struct {
	Min   float64
	Max   float64
	Score int
}

// atMost builds a lower-is-better row: satisfied when the statistic is at
// most boundary.
func atMost(boundary float64, score int) scoreRule {
	return scoreRule{Min: math.Inf(-1), Max: boundary, Score: score}
}

// atLeast builds a higher-is-better row: satisfied when the statistic is at
// least boundary.
func atLeast(boundary float64, score int) scoreRule {
	return scoreRule{Min: boundary, Max: math.Inf(1), Score: score}
}

// between builds a banded row: satisfied when the statistic lies in
// [lo, hi].
func between(lo, hi float64, score int) scoreRule {
	return scoreRule{Min: lo, Max: hi, Score: score}
}

// otherwise builds the terminal catch-all row every table ends with.
func otherwise(score int) scoreRule {
	return scoreRule{Min: math.Inf(-1), Max: math.Inf(1), Score: score}
}

// applyRules evaluates the table top-down and returns the first matching
// row's subscore.
func applyRules(rules []scoreRule, v float64) int {
	for _, r := range rules {
		if v >= r.Min && v <= r.Max {
			return r.Score
		}
	}
	// Tables end with an otherwise row, so this is unreachable for
	// well-formed tables.
	return 0
}

// overallScore combines the subscores with the exercise's fixed weights
// (which sum to 1.0) and rounds to the nearest integer. The result always
// lies within [min(subscores), max(subscores)].
func overallScore(groups []metricGroup, scores map[string]int) int {
	var sum float64
	for _, g := range groups {
		sum += g.weight * float64(scores[g.key])
	}
	return int(math.Round(sum))
}
