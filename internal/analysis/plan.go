package analysis

import (
	"fmt"

	"github.com/ayusman/formcheck/internal/pose"
)

// severityPolicy decides a correction's severity from its subscore.
type severityPolicy int

const (
	// sevScaled escalates to critical below 60, warning otherwise.
	sevScaled severityPolicy = iota
	// sevWarning always reports warning.
	sevWarning
	// sevInfo always reports info; used for mobility and stance hints.
	sevInfo
)

func (p severityPolicy) severity(score int) Severity {
	switch p {
	case sevInfo:
		return SeverityInfo
	case sevWarning:
		return SeverityWarning
	default:
		if score < 60 {
			return SeverityCritical
		}
		return SeverityWarning
	}
}

// positiveCutoff separates a positive observation from a correction: groups
// scoring at or above it are praised, groups below it are corrected.
const positiveCutoff = 80

// seriesPolicy assigns a summary statistic to one metric series. Every
// series an extractor produces has exactly one policy entry.
type seriesPolicy struct {
	series string
	agg    aggregate
}

// metricGroup is one scored metric: the series feeding it, its threshold
// table, its weight in the overall score, and its feedback templates.
// Feedback callbacks receive the full summary-statistic map so a sentence
// can draw on companion series (hip drop, stride length) that are measured
// but not independently scored.
type metricGroup struct {
	key         string
	series      string
	rules       []scoreRule
	weight      float64
	positive    string
	detail      func(stats map[string]float64) string
	issue       string
	severity    severityPolicy
	complaint   func(stats map[string]float64) string
	instruction string
}

// plan bundles everything exercise-specific: the per-frame extractor, the
// aggregation policy table, the scored metric groups in breakdown order,
// the correction priority order, and the static improvement tips.
type plan struct {
	name     string
	primary  string // series backing the minimum-evidence guard
	extract  func(f pose.Frame, set seriesSet)
	policies []seriesPolicy
	groups   []metricGroup
	priority []string
	tips     []string
}

// assemble converts summary statistics and subscores into the final result:
// positive observations and the breakdown in group order, corrections in
// the exercise's fixed priority order, plus tips and the banded summary
// sentence.
func (pl *plan) assemble(stats map[string]float64, scores map[string]int, usable int) *Result {
	res := &Result{
		Exercise:        pl.name,
		OverallScore:    overallScore(pl.groups, scores),
		WhatsRight:      []string{},
		Corrections:     []Correction{},
		Breakdown:       make([]GroupScore, 0, len(pl.groups)),
		ImprovementTips: pl.tips,
		FramesAnalyzed:  usable,
	}

	byKey := make(map[string]*metricGroup, len(pl.groups))
	for i := range pl.groups {
		g := &pl.groups[i]
		byKey[g.key] = g

		res.Breakdown = append(res.Breakdown, GroupScore{
			Key:      g.key,
			Score:    scores[g.key],
			Feedback: g.detail(stats),
		})
		if scores[g.key] >= positiveCutoff {
			res.WhatsRight = append(res.WhatsRight, g.positive)
		}
	}

	for _, key := range pl.priority {
		g := byKey[key]
		score := scores[key]
		if score >= positiveCutoff {
			continue
		}
		res.Corrections = append(res.Corrections, Correction{
			Issue:       g.issue,
			Severity:    g.severity.severity(score),
			Feedback:    g.complaint(stats),
			Instruction: g.instruction,
		})
	}

	res.Summary = summarize0to100(res.OverallScore, len(res.Corrections))
	return res
}

// summarize0to100 returns the overall-score banded summary sentence.
func summarize0to100(score, corrections int) string {
	switch {
	case score >= 90:
		return "Excellent form! Minor adjustments can make it perfect."
	case score >= 80:
		return "Good form with some areas for improvement."
	case score >= 70:
		return "Fair form. Focus on the corrections below."
	default:
		return fmt.Sprintf("Needs work. Focus on these %d key areas to improve safety and effectiveness.", corrections)
	}
}
