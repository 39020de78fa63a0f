package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"surveyscope/domain/survey"
)

var nan = math.NaN()

func TestCategoryScore_QuestionsWeightedEqually(t *testing.T) {
	// Q1 answered by many, Q2 by one. Each question still contributes one
	// mean to the category aggregate.
	scores := survey.ScoreSet{
		"Q1": {2, 2, 2, 2},
		"Q2": {nan, 0, nan, nan},
	}
	idx := []int{0, 1, 2, 3}

	score, ok := CategoryScore(scores, []string{"Q1", "Q2"}, idx)
	require.True(t, ok)
	assert.Equal(t, 1.0, score) // (2 + 0) / 2
}

func TestCategoryScore_UndefinedQuestionDiscarded(t *testing.T) {
	scores := survey.ScoreSet{
		"Q1": {1, 1, nan},
		"Q2": {nan, nan, nan},
	}
	idx := []int{0, 1, 2}

	score, ok := CategoryScore(scores, []string{"Q1", "Q2"}, idx)
	require.True(t, ok)
	assert.Equal(t, 1.0, score)
}

func TestCategoryScore_AllUndefined(t *testing.T) {
	scores := survey.ScoreSet{"Q1": {nan, nan}}

	_, ok := CategoryScore(scores, []string{"Q1"}, []int{0, 1})
	assert.False(t, ok)

	_, ok = CategoryScore(scores, []string{"Q1"}, nil)
	assert.False(t, ok)
}

func TestCompare_EndToEndVector(t *testing.T) {
	// One question scored [1,-1,0,1]; teams [A,A,B,B]; selector team=A.
	scores := survey.ScoreSet{"Q1": {1, -1, 0, 1}}
	filtered := []int{0, 1}
	all := []int{0, 1, 2, 3}

	cmp := Compare(scores, []string{"Q1"}, filtered, all, survey.DefaultThresholds())
	assert.Equal(t, 0.0, cmp.FilteredScore)
	assert.Equal(t, 0.25, cmp.OverallScore)
	assert.Equal(t, -0.25, cmp.Difference)
	assert.Equal(t, survey.StatusSignificantlyBelow, cmp.Status)
}

func TestCompare_UndefinedFallsBackToZero(t *testing.T) {
	scores := survey.ScoreSet{"Q1": {nan, nan, 0.5, 0.5}}

	cmp := Compare(scores, []string{"Q1"}, []int{0, 1}, []int{0, 1, 2, 3}, survey.DefaultThresholds())
	assert.Equal(t, 0.0, cmp.FilteredScore)
	assert.Equal(t, 0.5, cmp.OverallScore)
	assert.Equal(t, -0.5, cmp.Difference)
	assert.Equal(t, survey.StatusSignificantlyBelow, cmp.Status)
}

func TestQuestionDetails(t *testing.T) {
	scores := survey.ScoreSet{
		"Q1": {1, -1, 0, 1},
		"Q2": {nan, nan, nan, nan},
	}
	filtered := []int{0, 1}
	all := []int{0, 1, 2, 3}

	details := QuestionDetails(scores, []string{"Q1", "Q2"}, filtered, all)
	require.Contains(t, details, "Q1")
	require.Contains(t, details, "Q2")

	q1 := details["Q1"]
	require.NotNil(t, q1.FilteredScore)
	require.NotNil(t, q1.OverallScore)
	require.NotNil(t, q1.Difference)
	assert.Equal(t, 0.0, *q1.FilteredScore)
	assert.Equal(t, 0.25, *q1.OverallScore)
	assert.Equal(t, -0.25, *q1.Difference)
	assert.Equal(t, 2, q1.FilteredResponses)
	assert.Equal(t, 4, q1.TotalResponses)
	require.NotNil(t, q1.OverallStdDev)
	assert.InDelta(t, 0.957, *q1.OverallStdDev, 0.001)

	q2 := details["Q2"]
	assert.Nil(t, q2.FilteredScore)
	assert.Nil(t, q2.OverallScore)
	assert.Nil(t, q2.Difference)
	assert.Nil(t, q2.OverallStdDev)
	assert.Equal(t, 0, q2.FilteredResponses)
	assert.Equal(t, 0, q2.TotalResponses)
}

func TestQuestionDetails_SingleValueHasNoStdDev(t *testing.T) {
	scores := survey.ScoreSet{"Q1": {1, nan}}

	details := QuestionDetails(scores, []string{"Q1"}, []int{0}, []int{0, 1})
	q1 := details["Q1"]
	require.NotNil(t, q1.OverallScore)
	assert.Nil(t, q1.OverallStdDev)
}
