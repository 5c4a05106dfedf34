package analysis

// Severity ranks how urgently a correction should be addressed.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Correction is one actionable form issue.
type Correction struct {
	Issue       string   `json:"issue"`
	Severity    Severity `json:"severity"`
	Feedback    string   `json:"feedback"`
	Instruction string   `json:"correction_instruction"`
}

// GroupScore is one metric group's subscore paired with a feedback sentence
// that embeds the group's summary statistic.
type GroupScore struct {
	Key      string `json:"key"`
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

// Result is the assessment produced for one analyzed video. It is
// constructed once per analysis and never mutated after return.
type Result struct {
	Exercise        string       `json:"exercise"`
	OverallScore    int          `json:"overall_score"`
	WhatsRight      []string     `json:"whats_right"`
	Corrections     []Correction `json:"corrections_needed"`
	Breakdown       []GroupScore `json:"detailed_breakdown"`
	ImprovementTips []string     `json:"improvement_tips"`
	Summary         string       `json:"summary"`
	FramesAnalyzed  int          `json:"frames_analyzed"`
}
