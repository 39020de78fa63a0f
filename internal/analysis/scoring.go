package analysis

import (
	"math"

	"github.com/montanaflynn/stats"
	gonumstat "gonum.org/v1/gonum/stat"

	"surveyscope/domain/survey"
)

// definedValues extracts the non-NaN scores of a column over a row view.
func definedValues(column []float64, idx []int) []float64 {
	values := make([]float64, 0, len(idx))
	for _, i := range idx {
		if !math.IsNaN(column[i]) {
			values = append(values, column[i])
		}
	}
	return values
}

// questionMean returns the mean of defined scores for one question over a
// row view, plus the defined-response count. ok is false when no row has a
// defined score.
func questionMean(column []float64, idx []int) (mean float64, count int, ok bool) {
	values := definedValues(column, idx)
	if len(values) == 0 {
		return 0, 0, false
	}
	mean, err := stats.Mean(values)
	if err != nil {
		return 0, 0, false
	}
	return mean, len(values), true
}

// CategoryScore computes the mean of per-question means over a row view.
// Each question counts equally regardless of how many respondents answered
// it; questions with zero defined scores are discarded, not averaged in as
// zero. ok is false when the category has no column with any defined score,
// in which case the category is omitted from results entirely.
func CategoryScore(scores survey.ScoreSet, columns []string, idx []int) (float64, bool) {
	questionMeans := make([]float64, 0, len(columns))
	for _, col := range columns {
		column, ok := scores[col]
		if !ok {
			continue
		}
		if mean, _, ok := questionMean(column, idx); ok {
			questionMeans = append(questionMeans, mean)
		}
	}
	if len(questionMeans) == 0 {
		return 0, false
	}
	score, err := stats.Mean(questionMeans)
	if err != nil {
		return 0, false
	}
	return score, true
}

// Compare scores one category over the filtered view against the full
// dataset. Undefined scores fall back to 0 on either side so the
// comparison row always exists for categories with matched columns.
func Compare(scores survey.ScoreSet, columns []string, filteredIdx, allIdx []int, t survey.Thresholds) survey.Comparison {
	filtered, ok := CategoryScore(scores, columns, filteredIdx)
	if !ok {
		filtered = 0
	}
	overall, ok := CategoryScore(scores, columns, allIdx)
	if !ok {
		overall = 0
	}

	difference := filtered - overall
	return survey.Comparison{
		FilteredScore: filtered,
		OverallScore:  overall,
		Difference:    difference,
		Status:        survey.Classify(difference, t),
	}
}

// QuestionDetails breaks one category down per question: filtered and
// overall means, their difference and the defined-response counts. Nil
// fields express undefined values.
func QuestionDetails(scores survey.ScoreSet, columns []string, filteredIdx, allIdx []int) map[string]survey.QuestionDetail {
	details := make(map[string]survey.QuestionDetail, len(columns))
	for _, col := range columns {
		column, ok := scores[col]
		if !ok {
			continue
		}

		detail := survey.QuestionDetail{}

		if mean, count, ok := questionMean(column, filteredIdx); ok {
			detail.FilteredScore = ptr(mean)
			detail.FilteredResponses = count
		}
		if mean, count, ok := questionMean(column, allIdx); ok {
			detail.OverallScore = ptr(mean)
			detail.TotalResponses = count
			if values := definedValues(column, allIdx); len(values) > 1 {
				detail.OverallStdDev = ptr(gonumstat.StdDev(values, nil))
			}
		}
		if detail.FilteredScore != nil && detail.OverallScore != nil {
			detail.Difference = ptr(*detail.FilteredScore - *detail.OverallScore)
		}

		details[col] = detail
	}
	return details
}

func ptr(v float64) *float64 { return &v }
