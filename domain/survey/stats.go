package survey

import (
	"math"

	"surveyscope/domain/core"
)

// Status describes how a filtered category score compares to the overall
// dataset.
type Status string

const (
	StatusSignificantlyAbove Status = "significantly_above"
	StatusAbove              Status = "above"
	StatusSimilar            Status = "similar"
	StatusBelow              Status = "below"
	StatusSignificantlyBelow Status = "significantly_below"
)

// IsBelowAverage reports whether the status indicates underperformance.
func (s Status) IsBelowAverage() bool {
	return s == StatusBelow || s == StatusSignificantlyBelow
}

// Display returns the status with underscores replaced for report text.
func (s Status) Display() string {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '_' {
			out[i] = ' '
		} else {
			out[i] = s[i]
		}
	}
	return string(out)
}

// Thresholds are the two configurable boundaries for status classification.
type Thresholds struct {
	Significant float64
	Similar     float64
}

// DefaultThresholds returns the stock classification boundaries.
func DefaultThresholds() Thresholds {
	return Thresholds{Significant: 0.2, Similar: 0.1}
}

// Classify maps a filtered-vs-overall difference to a status band. A
// difference exactly on a boundary resolves to the less extreme band: the
// cases are evaluated top to bottom with strict inequalities on the extreme
// side.
func Classify(difference float64, t Thresholds) Status {
	switch {
	case difference > t.Significant:
		return StatusSignificantlyAbove
	case difference > t.Similar:
		return StatusAbove
	case math.Abs(difference) <= t.Similar:
		return StatusSimilar
	case difference < -t.Significant:
		return StatusSignificantlyBelow
	default:
		return StatusBelow
	}
}

// Comparison holds a category's filtered score against the overall dataset.
type Comparison struct {
	FilteredScore float64 `json:"filtered_score"`
	OverallScore  float64 `json:"overall_score"`
	Difference    float64 `json:"difference"`
	Status        Status  `json:"status"`
}

// QuestionDetail is the per-question breakdown inside one category. Nil
// pointers express undefined values (empty filtered set or no defined
// responses), never zero.
type QuestionDetail struct {
	FilteredScore     *float64 `json:"filtered_score"`
	OverallScore      *float64 `json:"overall_score"`
	Difference        *float64 `json:"difference"`
	OverallStdDev     *float64 `json:"overall_stddev,omitempty"`
	FilteredResponses int      `json:"filtered_responses"`
	TotalResponses    int      `json:"total_responses"`
}

// Comment is one qualifying free-text comment with respondent attribution.
type Comment struct {
	Text     string `json:"text"`
	Team     string `json:"team"`
	Location string `json:"location"`
}

// CategoryComments groups the comments collected for one category.
type CategoryComments struct {
	Comments []Comment `json:"comments"`
	Count    int       `json:"count"`
}

// Metadata describes the run that produced a bundle.
type Metadata struct {
	RunID             core.RunID     `json:"run_id"`
	SelectedTeam      string         `json:"selected_team"`
	SelectedLocation  string         `json:"selected_location"`
	FilteredResponses int            `json:"filtered_responses"`
	TotalResponses    int            `json:"total_responses"`
	GeneratedAt       core.Timestamp `json:"generated_at"`
}

// Bundle is the fully computed statistics object handed to report renderers.
// It is created once per run and never mutated afterwards. Top-level JSON
// keys are a stable contract with the renderers.
type Bundle struct {
	Metadata Metadata `json:"metadata"`

	// CategoryPerformance holds the filtered score per category. Categories
	// with no defined scores are absent, not present with a null.
	CategoryPerformance map[string]float64 `json:"category_performance"`

	// Comparisons covers every category that matched at least one column.
	Comparisons map[string]Comparison `json:"comparisons"`

	// QuestionDetails is keyed by category, then by normalized question
	// column name.
	QuestionDetails map[string]map[string]QuestionDetail `json:"question_details"`

	// Comments is keyed by category; categories with zero qualifying
	// comments are absent.
	Comments map[string]CategoryComments `json:"comments"`
}

// Selector reconstructs the group selector this bundle was computed for.
func (b *Bundle) Selector() Selector {
	return Selector{Team: b.Metadata.SelectedTeam, Location: b.Metadata.SelectedLocation}
}

// WorstCategory returns the comparison entry with the lowest filtered score,
// in deterministic order on ties (lexicographically smallest name wins).
func (b *Bundle) WorstCategory() (string, Comparison, bool) {
	worst := ""
	var worstCmp Comparison
	for name, cmp := range b.Comparisons {
		if worst == "" || cmp.FilteredScore < worstCmp.FilteredScore ||
			(cmp.FilteredScore == worstCmp.FilteredScore && name < worst) {
			worst = name
			worstCmp = cmp
		}
	}
	return worst, worstCmp, worst != ""
}
